package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/welcome/internal/celebrate"
	"github.com/five82/welcome/internal/clipboard"
	"github.com/five82/welcome/internal/config"
	"github.com/five82/welcome/internal/manifest"
	"github.com/five82/welcome/internal/page"
	"github.com/five82/welcome/internal/prefs"
	"github.com/five82/welcome/internal/server"
	"github.com/five82/welcome/internal/ui"
	"github.com/five82/welcome/internal/web"
)

// Options configure a welcome command. Empty fields keep the config file
// value.
type Options struct {
	ConfigPath string
	Manifest   string
	LogLevel   string
	// Listen is the serve address.
	Listen string
	// OutDir is where render writes index.html and static/.
	OutDir string
	// PrefsPath is the tui preferences file.
	PrefsPath string
	// NoCelebrate disables the first-visit confetti.
	NoCelebrate bool
	// Stderr receives serve and render logs. Nil uses os.Stderr.
	Stderr io.Writer
}

// DefaultOutDir is where render writes when no directory is given.
const DefaultOutDir = "./site"

// LoadConfig reads the config file and applies the command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.Manifest); v != "" {
		cfg.Manifest = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.Listen); v != "" {
		cfg.Listen = v
	}
	if opts.NoCelebrate {
		cfg.Celebrate = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Level(), true, stderr(opts))
	defer func() { _ = logger.Sync() }()

	source, err := manifest.NewSource(cfg.ManifestLocation())
	if err != nil {
		return fmt.Errorf("init manifest source: %w", err)
	}
	logger.Info("serving welcome page",
		zap.String("manifest", cfg.ManifestLocation()),
		zap.Bool("celebrate", cfg.Celebrate),
	)

	srv := server.New(server.Options{
		Source:    source,
		Logger:    logger,
		Celebrate: cfg.Celebrate,
	})
	return server.ListenAndServe(ctx, cfg.Listen, srv, logger)
}

// Render writes the page and its assets to a directory. A manifest that
// cannot be loaded still produces a page with the error panel.
func Render(ctx context.Context, opts Options) (page.Result, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return page.Result{}, err
	}
	logger := newLogger(cfg.Level(), false, stderr(opts))
	defer func() { _ = logger.Sync() }()

	source, err := manifest.NewSource(cfg.ManifestLocation())
	if err != nil {
		return page.Result{}, fmt.Errorf("init manifest source: %w", err)
	}

	doc, err := page.NewDocument(web.Index())
	if err != nil {
		return page.Result{}, fmt.Errorf("parse host page: %w", err)
	}
	ctrl := &page.Controller{Source: source, Logger: logger}
	res := ctrl.Load(ctx, doc)
	if cfg.Celebrate {
		doc.EnableCelebration(page.CelebrateLocal, celebrate.DefaultDelay)
	}

	dir := strings.TrimSpace(opts.OutDir)
	if dir == "" {
		dir = DefaultOutDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}
	body, err := doc.Bytes()
	if err != nil {
		return res, fmt.Errorf("render page: %w", err)
	}
	out := filepath.Join(dir, "index.html")
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return res, fmt.Errorf("write page: %w", err)
	}
	if err := web.WriteStatic(dir); err != nil {
		return res, err
	}

	logger.Info("rendered welcome page",
		zap.String("path", out),
		zap.Stringer("state", res.State),
		zap.Int("services", res.Services),
	)
	return res, nil
}

// RunTUI boots the terminal UI until the user quits or ctx is cancelled.
// Logs go to the configured log file so they do not corrupt the screen.
func RunTUI(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := newFileLogger(cfg.Level(), cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := manifest.NewSource(cfg.ManifestLocation())
	if err != nil {
		return fmt.Errorf("init manifest source: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs", zap.Error(err))
	}

	writer := clipboard.Chain{
		clipboard.System{},
		clipboard.OSC52{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""},
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Source:    source,
		Clipboard: clipboard.NewHelper(writer, logger),
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Celebrate: cfg.Celebrate,
		Marker:    prefs.Marker{Path: opts.PrefsPath},
	})
}

func stderr(opts Options) io.Writer {
	if opts.Stderr != nil {
		return opts.Stderr
	}
	return os.Stderr
}
