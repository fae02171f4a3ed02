// Package web embeds the host page and the browser assets of the dashboard.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed assets/index.html
var indexHTML []byte

//go:embed assets/static/*
var staticFS embed.FS

// StaticPrefix is the directory, relative to the page, that holds the assets.
const StaticPrefix = "static"

// Index returns a copy of the host page.
func Index() []byte {
	out := make([]byte, len(indexHTML))
	copy(out, indexHTML)
	return out
}

// Static returns the asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "assets/static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded static tree missing: %v", err))
	}
	return sub
}

// WriteStatic copies every asset into dir/static so a rendered page can be
// opened straight from disk.
func WriteStatic(dir string) error {
	target := filepath.Join(dir, StaticPrefix)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create static dir: %w", err)
	}
	assets := Static()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", path, err)
		}
		if err := os.WriteFile(filepath.Join(target, filepath.FromSlash(path)), data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", path, err)
		}
		return nil
	})
}
