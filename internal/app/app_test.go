package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/five82/welcome/internal/page"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return Options{
		ConfigPath: filepath.Join(home, "missing.toml"),
		Stderr:     &bytes.Buffer{},
	}
}

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	opts := testOptions(t)
	opts.Manifest = "https://x.example.com/data.json"
	opts.LogLevel = "DEBUG"
	opts.Listen = ":9999"
	opts.NoCelebrate = true

	cfg, err := LoadConfig(opts)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Manifest != opts.Manifest || cfg.Listen != ":9999" || cfg.LogLevel != "debug" || cfg.Celebrate {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_RejectsBadLevel(t *testing.T) {
	opts := testOptions(t)
	opts.LogLevel = "loud"
	if _, err := LoadConfig(opts); err == nil {
		t.Fatalf("LoadConfig accepted an unknown log level")
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	opts := testOptions(t)
	opts.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(opts.ConfigPath, []byte("listen = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadConfig(opts)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("LoadConfig error = %v", err)
	}
}

func TestRender_WritesPageAndAssets(t *testing.T) {
	opts := testOptions(t)
	opts.Manifest = writeManifest(t, `{"domain":"example.com","services":{"n8n":{"hostname":"n8n.example.com"}}}`)
	opts.OutDir = filepath.Join(t.TempDir(), "site")

	res, err := Render(context.Background(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.State != page.Rendered || res.Services != 1 {
		t.Fatalf("result = %+v", res)
	}

	body, err := os.ReadFile(filepath.Join(opts.OutDir, "index.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{`href="https://n8n.example.com"`, `data-celebrate="local"`, "Domain: example.com"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("page lacks %q", want)
		}
	}
	for _, name := range []string{"app.js", "style.css"} {
		if _, err := os.Stat(filepath.Join(opts.OutDir, "static", name)); err != nil {
			t.Fatalf("static/%s: %v", name, err)
		}
	}
	if !strings.Contains(opts.Stderr.(*bytes.Buffer).String(), "rendered welcome page") {
		t.Fatalf("render summary not logged")
	}
}

func TestRender_MissingManifestStillWritesErrorPage(t *testing.T) {
	opts := testOptions(t)
	opts.Manifest = filepath.Join(t.TempDir(), "absent.json")
	opts.OutDir = t.TempDir()
	opts.NoCelebrate = true

	res, err := Render(context.Background(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.State != page.Error {
		t.Fatalf("state = %v, want error", res.State)
	}
	body, err := os.ReadFile(filepath.Join(opts.OutDir, "index.html"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(body), page.ErrorPanelTitle) {
		t.Fatalf("error panel missing")
	}
	if strings.Contains(string(body), "data-celebrate") {
		t.Fatalf("celebration enabled despite NoCelebrate")
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	opts := testOptions(t)
	opts.Manifest = writeManifest(t, `{"services":{}}`)
	opts.Listen = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, opts) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Serve did not stop")
	}
}

func TestServe_BadManifestURL(t *testing.T) {
	opts := testOptions(t)
	opts.Manifest = "http://"
	if err := Serve(context.Background(), opts); err == nil {
		t.Fatalf("Serve accepted a manifest URL without a host")
	}
}

func TestNewLogger_Encoders(t *testing.T) {
	var jsonOut, consoleOut bytes.Buffer
	newLogger(zapcore.InfoLevel, true, &jsonOut).Info("hello")
	newLogger(zapcore.WarnLevel, false, &consoleOut).Info("filtered")

	if !strings.HasPrefix(strings.TrimSpace(jsonOut.String()), "{") || !strings.Contains(jsonOut.String(), `"msg":"hello"`) {
		t.Fatalf("json output = %q", jsonOut.String())
	}
	if consoleOut.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", consoleOut.String())
	}
}

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "welcome.log")
	logger, closeLog, err := newFileLogger(zapcore.DebugLevel, path)
	if err != nil {
		t.Fatalf("newFileLogger: %v", err)
	}
	logger.Debug("written")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Fatalf("log file = %q", data)
	}
}
