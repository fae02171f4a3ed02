// Package prefs handles welcome TUI preferences persistence.
// Preferences are stored in ~/.config/welcome/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for the terminal UI.
type Prefs struct {
	Theme string `toml:"theme"`
	// WelcomedAt records when the first-run celebration played (RFC 3339).
	WelcomedAt string `toml:"welcomed_at,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/welcome/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// DefaultTheme returns the theme used when none is saved.
func DefaultTheme() string {
	return defaultTheme
}

// Load reads preferences from path, or the default location when path is
// empty. A missing, unreadable or malformed file yields the defaults and a
// nil error so the UI always starts.
func Load(path string) (Prefs, error) {
	defaults := Prefs{Theme: defaultTheme}
	resolved, err := resolvePath(path)
	if err != nil {
		return defaults, nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return defaults, nil
	}
	p := defaults
	if err := toml.Unmarshal(data, &p); err != nil {
		return defaults, nil
	}
	return p.normalized(), nil
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.WelcomedAt = strings.TrimSpace(p.WelcomedAt)
	return p
}

// Save writes p to path, creating the parent directory.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Marker stores the first-run celebration marker in the prefs file. It
// satisfies celebrate.MarkerStore.
type Marker struct {
	Path string
}

// Marked reports whether welcomed_at is set.
func (m Marker) Marked() (bool, error) {
	p, err := Load(m.Path)
	if err != nil {
		return false, err
	}
	return p.WelcomedAt != "", nil
}

// Mark records at as welcomed_at, keeping the other preferences.
func (m Marker) Mark(at time.Time) error {
	p, err := Load(m.Path)
	if err != nil {
		return err
	}
	p.WelcomedAt = at.UTC().Format(time.RFC3339)
	if err := Save(m.Path, p); err != nil {
		return fmt.Errorf("save welcome marker: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
