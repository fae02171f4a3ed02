package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/net/html"

	"github.com/five82/welcome/internal/celebrate"
)

// CelebrationMode tells the browser script how to gate the confetti.
type CelebrationMode string

const (
	// CelebrateNow plays the confetti; the server has already consumed the
	// marker.
	CelebrateNow CelebrationMode = "now"
	// CelebrateLocal lets the browser check and set the localStorage marker.
	CelebrateLocal CelebrationMode = "local"
)

// ErrEmptyDocument is returned when rendering a nil or unparsed Document.
var ErrEmptyDocument = errors.New("document is empty")

// Document is a parsed host page owned by a single render.
type Document struct {
	root *html.Node
}

// ParseDocument parses a host page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}
	return &Document{root: root}, nil
}

// NewDocument parses src. Each call returns an independent tree.
func NewDocument(src []byte) (*Document, error) {
	return ParseDocument(bytes.NewReader(src))
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *html.Node {
	if d == nil || d.root == nil {
		return nil
	}
	return findByID(d.root, id)
}

// Body returns the body element, or nil.
func (d *Document) Body() *html.Node {
	if d == nil || d.root == nil {
		return nil
	}
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return false
		}
		return true
	})
	return body
}

// EnableCelebration marks the body so the browser script plays the burst
// plan after delay.
func (d *Document) EnableCelebration(mode CelebrationMode, delay time.Duration) {
	body := d.Body()
	if body == nil {
		return
	}
	setAttr(body, "data-celebrate", string(mode))
	setAttr(body, "data-celebrate-delay", strconv.FormatInt(delay.Milliseconds(), 10))
	setAttr(body, "data-celebrate-key", celebrate.MarkerName)
	setAttr(body, "data-confetti", celebrate.PlanJSON())
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return ErrEmptyDocument
	}
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
