package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings shared by the serve, render and tui commands.
type Config struct {
	Listen    string
	Manifest  string
	LogLevel  string
	LogFile   string
	Celebrate bool
}

const (
	defaultConfigPath = "~/.config/welcome/config.toml"
	defaultListen     = "127.0.0.1:8080"
	defaultManifest   = "./data.json"
	defaultLogLevel   = "info"
	defaultLogFile    = "~/.local/state/welcome/welcome.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Listen:    defaultListen,
		Manifest:  defaultManifest,
		LogLevel:  defaultLogLevel,
		LogFile:   mustExpand(defaultLogFile),
		Celebrate: true,
	}
}

// Load locates and parses the welcome config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Listen    string `toml:"listen"`
		Manifest  string `toml:"manifest"`
		LogLevel  string `toml:"log_level"`
		LogFile   string `toml:"log_file"`
		Celebrate *bool  `toml:"celebrate"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Listen); v != "" {
		cfg.Listen = v
	}
	if v := strings.TrimSpace(raw.Manifest); v != "" {
		cfg.Manifest = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if raw.Celebrate != nil {
		cfg.Celebrate = *raw.Celebrate
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if strings.TrimSpace(c.Listen) == "" {
		return errors.New("listen address is empty")
	}
	return nil
}

// ManifestLocation returns the manifest URL unchanged, or the manifest file
// path with the home directory expanded.
func (c Config) ManifestLocation() string {
	loc := strings.TrimSpace(c.Manifest)
	if loc == "" {
		loc = defaultManifest
	}
	lower := strings.ToLower(loc)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return loc
	}
	return mustExpand(loc)
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
