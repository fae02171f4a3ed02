package clipboard

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ConfirmFor is how long a control stays in its confirmed state.
const ConfirmFor = 2000 * time.Millisecond

// Control is the visual target of a copy, typically a button whose icon swaps
// to a checkmark.
type Control interface {
	Confirm()
	Revert()
}

// Helper copies text and drives the confirmation of a Control.
type Helper struct {
	Writer Writer
	// After schedules f once d has elapsed. Nil uses time.AfterFunc.
	After  func(d time.Duration, f func())
	Logger *zap.Logger
}

// NewHelper returns a Helper writing to w.
func NewHelper(w Writer, logger *zap.Logger) *Helper {
	return &Helper{Writer: w, Logger: logger}
}

// Copy writes text and, once the write has returned successfully, confirms
// ctl and schedules its revert. Failures are logged and leave ctl untouched.
// ctl may be nil.
func (h *Helper) Copy(text string, ctl Control) bool {
	logger := h.logger()
	if h.Writer == nil {
		logger.Warn("clipboard copy failed", zap.Error(errNoWriter))
		return false
	}
	if err := h.Writer.WriteText(text); err != nil {
		logger.Warn("clipboard copy failed", zap.Error(err), zap.Int("length", len(text)))
		return false
	}
	if ctl == nil {
		return true
	}
	ctl.Confirm()
	h.schedule(ConfirmFor, ctl.Revert)
	return true
}

func (h *Helper) schedule(d time.Duration, f func()) {
	if h.After != nil {
		h.After(d, f)
		return
	}
	time.AfterFunc(d, f)
}

func (h *Helper) logger() *zap.Logger {
	if h == nil || h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

var errNoWriter = errors.New("no clipboard writer configured")

// Indicator is a Control that records whether it is confirmed. It is safe for
// use from timer goroutines.
type Indicator struct {
	mu        sync.Mutex
	confirmed bool
	onChange  func(bool)
}

// NewIndicator returns an Indicator that calls onChange after every
// transition. onChange may be nil.
func NewIndicator(onChange func(confirmed bool)) *Indicator {
	return &Indicator{onChange: onChange}
}

// Confirm implements Control.
func (i *Indicator) Confirm() { i.set(true) }

// Revert implements Control.
func (i *Indicator) Revert() { i.set(false) }

// Confirmed reports the current state.
func (i *Indicator) Confirmed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.confirmed
}

func (i *Indicator) set(v bool) {
	i.mu.Lock()
	i.confirmed = v
	cb := i.onChange
	i.mu.Unlock()
	if cb != nil {
		cb(v)
	}
}
