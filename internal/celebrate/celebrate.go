package celebrate

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is how long after page paint the celebration starts.
const DefaultDelay = 800 * time.Millisecond

// MarkerName is the cookie and localStorage key recording the first visit.
const MarkerName = "n8n_install_welcomed"

// MarkerStore persists the one-shot "welcomed" marker.
type MarkerStore interface {
	Marked() (bool, error)
	Mark(at time.Time) error
}

// Effect plays the animation. A nil Effect is allowed.
type Effect func(ctx context.Context, plan []Burst) error

// Gate runs the celebration once per marker store.
type Gate struct {
	Store  MarkerStore
	Effect Effect
	// Now defaults to time.Now.
	Now func() time.Time
	// After defaults to time.AfterFunc.
	After func(d time.Duration, f func())
	// Delay defaults to DefaultDelay.
	Delay  time.Duration
	Logger *zap.Logger
}

// Run schedules the effect when the store has no marker and then writes the
// marker. It reports whether the effect was scheduled. Store errors are
// logged and suppress the celebration; effect errors are logged only.
func (g *Gate) Run(ctx context.Context) bool {
	logger := g.logger()
	if g.Store == nil {
		return false
	}
	marked, err := g.Store.Marked()
	if err != nil {
		logger.Warn("read welcome marker", zap.Error(err))
		return false
	}
	if marked {
		return false
	}

	effect := g.Effect
	g.after(g.delay(), func() {
		if effect == nil {
			return
		}
		if err := effect(ctx, Bursts()); err != nil {
			logger.Debug("celebration effect failed", zap.Error(err))
		}
	})

	if err := g.Store.Mark(g.now()); err != nil {
		logger.Warn("write welcome marker", zap.Error(err))
	}
	return true
}

func (g *Gate) delay() time.Duration {
	if g.Delay > 0 {
		return g.Delay
	}
	return DefaultDelay
}

func (g *Gate) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Gate) after(d time.Duration, f func()) {
	if g.After != nil {
		g.After(d, f)
		return
	}
	time.AfterFunc(d, f)
}

func (g *Gate) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
