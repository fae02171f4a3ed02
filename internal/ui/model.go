package ui

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/welcome/internal/catalog"
	"github.com/five82/welcome/internal/celebrate"
	"github.com/five82/welcome/internal/clipboard"
	"github.com/five82/welcome/internal/manifest"
	"github.com/five82/welcome/internal/page"
	"github.com/five82/welcome/internal/prefs"
	"github.com/five82/welcome/internal/reveal"
)

// copyRedrawSlack lets the indicator revert before the redraw lands.
const copyRedrawSlack = 50 * time.Millisecond

var errNoSource = errors.New("no manifest source configured")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    manifest.Source
	Clipboard *clipboard.Helper
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
	// Celebrate plays the confetti once per Marker.
	Celebrate bool
	Marker    celebrate.MarkerStore
	Now       func() time.Time
	// Rand seeds the confetti; nil uses a time-based seed.
	Rand *rand.Rand
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	source    manifest.Source
	clip      *clipboard.Helper
	indicator *clipboard.Indicator
	logger    *zap.Logger
	prefsPath string
	celebrate bool
	marker    celebrate.MarkerStore
	now       func() time.Time
	rng       *rand.Rand

	theme    Theme
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	state    page.State
	manifest *manifest.Manifest
	cards    []page.Card
	steps    []catalog.Step
	commands []catalog.Command
	secrets  map[string]*reveal.Secret

	focus    int
	copiedID string
	confetti *confetti
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		clip:      opts.Clipboard,
		indicator: clipboard.NewIndicator(nil),
		logger:    logger,
		prefsPath: prefsPath,
		celebrate: opts.Celebrate,
		marker:    opts.Marker,
		now:       now,
		rng:       opts.Rand,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		state:     page.Loading,
		steps:     catalog.DefaultQuickStart(),
		commands:  catalog.Commands(),
		secrets:   make(map[string]*reveal.Secret),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadCmd(m.ctx, m.source)}
	if m.celebrate && m.marker != nil {
		cmds = append(cmds, celebrateCmd(m.ctx, m.marker, m.now, m.logger))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.bodyHeight()
		}
		if m.confetti != nil {
			m.confetti.resize(m.width, m.height)
		}
		m.refresh(true)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case manifestMsg:
		m.applyManifest(msg)
		return m, nil

	case copiedMsg:
		if !msg.ok {
			return m, nil
		}
		m.copiedID = msg.id
		m.refresh(false)
		return m, tea.Tick(clipboard.ConfirmFor+copyRedrawSlack, func(time.Time) tea.Msg {
			return copyExpiredMsg{id: msg.id}
		})

	case copyExpiredMsg:
		if m.copiedID == msg.id && !m.indicator.Confirmed() {
			m.copiedID = ""
		}
		m.refresh(false)
		return m, nil

	case celebrateMsg:
		plan := msg.plan
		return m, tea.Tick(msg.delay, func(time.Time) tea.Msg {
			return confettiStartMsg{plan: plan}
		})

	case confettiStartMsg:
		m.confetti = newConfetti(msg.plan, m.width, m.height, m.rng)
		return m, confettiFrameCmd()

	case confettiFrameMsg:
		if m.confetti == nil {
			return m, nil
		}
		m.confetti.advance()
		if m.confetti.done() {
			m.confetti = nil
			return m, nil
		}
		return m, confettiFrameCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.confetti.overlay(b.String())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveTheme()
		m.refresh(false)
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.state = page.Loading
		m.refresh(false)
		return m, loadCmd(m.ctx, m.source)

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyFocused()

	case key.Matches(msg, m.keys.Reveal):
		m.toggleFocused()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Top):
		m.focus = 0
		m.refresh(true)
	case key.Matches(msg, m.keys.Bottom):
		m.focus = len(m.layout().targets) - 1
		m.refresh(true)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	n := len(m.layout().targets)
	if n == 0 {
		return
	}
	m.focus += delta
	if m.focus < 0 {
		m.focus = 0
	}
	if m.focus >= n {
		m.focus = n - 1
	}
	m.refresh(true)
}

func (m *Model) focused() (target, bool) {
	targets := m.layout().targets
	if m.focus < 0 || m.focus >= len(targets) {
		return target{}, false
	}
	return targets[m.focus], true
}

func (m *Model) copyFocused() tea.Cmd {
	t, ok := m.focused()
	if !ok || m.clip == nil {
		return nil
	}
	return copyCmd(m.clip, m.indicator, t.id, t.value)
}

func (m *Model) toggleFocused() {
	t, ok := m.focused()
	if !ok || t.kind != targetSecret {
		return
	}
	if s := m.secrets[t.id]; s != nil {
		s.Toggle()
		m.refresh(false)
	}
}

func (m *Model) saveTheme() {
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		m.logger.Warn("load prefs", zap.Error(err))
	}
	p.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs", zap.Error(err))
	}
}

func (m *Model) applyManifest(msg manifestMsg) {
	m.manifest = nil
	m.cards = nil
	m.secrets = make(map[string]*reveal.Secret)
	m.copiedID = ""

	if msg.err != nil {
		m.logger.Error("load manifest", zap.Error(msg.err))
		m.state = page.Error
		m.steps = catalog.DefaultQuickStart()
		m.refresh(true)
		return
	}

	m.state = page.Rendered
	m.manifest = msg.manifest
	for _, k := range page.SortedKeys(msg.manifest.Services) {
		card := page.BuildCard(k, msg.manifest.Services[k])
		for _, row := range card.Rows {
			if row.Kind == page.RowSecret {
				m.secrets[rowID(card.Key, row.Key)] = reveal.New(row.Value)
			}
		}
		m.cards = append(m.cards, card)
	}
	m.steps = page.QuickStart(msg.manifest.QuickStart)
	if n := len(m.layout().targets); m.focus >= n {
		m.focus = max(n-1, 0)
	}
	m.logger.Debug("manifest loaded",
		zap.Int("services", len(m.cards)),
		zap.Int("quick_start", len(m.steps)),
	)
	m.refresh(true)
}

// refresh rebuilds the viewport content; follow scrolls the focused field
// into view.
func (m *Model) refresh(follow bool) {
	if !m.ready {
		return
	}
	l := m.layout()
	m.viewport.SetContent(strings.Join(l.lines, "\n"))
	if !follow || m.focus >= len(l.targetLines) {
		return
	}
	line := l.targetLines[m.focus]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-2, 1)
}

// Messages

type manifestMsg struct {
	manifest *manifest.Manifest
	err      error
}

type copiedMsg struct {
	id string
	ok bool
}

type copyExpiredMsg struct {
	id string
}

type celebrateMsg struct {
	plan  []celebrate.Burst
	delay time.Duration
}

type confettiStartMsg struct {
	plan []celebrate.Burst
}

type confettiFrameMsg struct{}

// Commands

func loadCmd(ctx context.Context, source manifest.Source) tea.Cmd {
	return func() tea.Msg {
		if source == nil {
			return manifestMsg{err: errNoSource}
		}
		m, err := source.Fetch(ctx)
		if err == nil && m == nil {
			err = errors.New("empty manifest")
		}
		return manifestMsg{manifest: m, err: err}
	}
}

func copyCmd(helper *clipboard.Helper, ctl clipboard.Control, id, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, ok: helper.Copy(text, ctl)}
	}
}

// celebrateCmd runs the first-run gate. The delay and burst plan are handed
// back to Update so the animation runs on the program's own ticks.
func celebrateCmd(ctx context.Context, store celebrate.MarkerStore, now func() time.Time, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		var (
			delay time.Duration
			plan  []celebrate.Burst
		)
		gate := &celebrate.Gate{
			Store:  store,
			Now:    now,
			Logger: logger,
			After: func(d time.Duration, f func()) {
				delay = d
				f()
			},
			Effect: func(_ context.Context, p []celebrate.Burst) error {
				plan = p
				return nil
			},
		}
		if !gate.Run(ctx) {
			return nil
		}
		return celebrateMsg{plan: plan, delay: delay}
	}
}

func confettiFrameCmd() tea.Cmd {
	return tea.Tick(confettiFrame, func(time.Time) tea.Msg {
		return confettiFrameMsg{}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
