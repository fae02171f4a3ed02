package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source yields the manifest for one page load.
type Source interface {
	Fetch(ctx context.Context) (*Manifest, error)
}

// Ensure both sources implement Source at compile time.
var (
	_ Source = (*Client)(nil)
	_ Source = (*File)(nil)
)

// DefaultLocation is used when no manifest location is configured.
const DefaultLocation = "./data.json"

const (
	defaultUserAgent = "welcome/0.1"
	requestTimeout   = 5 * time.Second
)

// StatusError reports a non-2xx response from the manifest URL.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("manifest %s returned status %d", e.URL, e.Code)
}

// NewSource picks an HTTP client for http(s) URLs and a file reader for
// anything else. An empty location means DefaultLocation.
func NewSource(location string) (Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		trimmed = DefaultLocation
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewClient(trimmed)
	}
	return &File{Path: trimmed}, nil
}

// Client fetches data.json over HTTP.
type Client struct {
	url       *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given manifest URL.
func NewClient(rawURL string) (*Client, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("manifest url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse manifest url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("manifest url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("manifest url %q: missing host", rawURL)
	}
	u.Fragment = ""
	return &Client{
		url: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch retrieves and decodes the manifest.
func (c *Client) Fetch(ctx context.Context) (*Manifest, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: c.url.String(), Code: resp.StatusCode}
	}
	var payload Manifest
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// File reads data.json from disk.
type File struct {
	Path string
}

// Fetch reads and decodes the manifest file.
func (f *File) Fetch(ctx context.Context) (*Manifest, error) {
	if f == nil {
		return nil, fmt.Errorf("file source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}
