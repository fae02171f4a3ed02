package page

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/five82/welcome/internal/catalog"
	"github.com/five82/welcome/internal/manifest"
)

// State is the controller's render state.
type State int

const (
	Loading State = iota
	Rendered
	Error
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Result describes a finished load.
type Result struct {
	State      State
	Services   int
	QuickStart int
	Manifest   *manifest.Manifest
	Err        error
}

// Controller drives one page load: cheat-sheet first, then the manifest
// fetch, then either the rendered sections or the error panel.
type Controller struct {
	Source manifest.Source
	Logger *zap.Logger
}

var errNoSource = errors.New("no manifest source configured")

// Load renders into doc and returns the terminal state. It never fails; fetch
// errors are logged and turned into the Error state.
func (c *Controller) Load(ctx context.Context, doc *Document) Result {
	logger := c.logger()
	rc := NewRenderContext()

	InjectSectionIcons(doc.Root())
	RenderCommands(doc.ByID(CommandsContainerID), catalog.Commands())

	m, err := c.fetch(ctx)
	if err != nil {
		logger.Error("load manifest", zap.Error(err))
		RenderServicesError(doc.ByID(ServicesContainerID))
		steps := RenderQuickStart(doc.ByID(QuickStartContainerID), nil)
		ShowErrorToast(doc.ByID(ErrorToastID), doc.ByID(ErrorMessageID), ErrorToastMessage)
		return Result{State: Error, QuickStart: steps, Err: err}
	}

	SetBanner(doc.ByID(DomainInfoID), Banner(m))
	count := RenderServices(doc.ByID(ServicesContainerID), rc, m.Services)
	steps := RenderQuickStart(doc.ByID(QuickStartContainerID), m.QuickStart)
	logger.Debug("page rendered",
		zap.Int("services", count),
		zap.Int("quick_start", steps),
		zap.String("domain", m.Domain),
	)
	return Result{State: Rendered, Services: count, QuickStart: steps, Manifest: m}
}

func (c *Controller) fetch(ctx context.Context) (*manifest.Manifest, error) {
	if c.Source == nil {
		return nil, errNoSource
	}
	m, err := c.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("manifest source returned nothing")
	}
	return m, nil
}

func (c *Controller) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
