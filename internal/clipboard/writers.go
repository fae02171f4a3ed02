package clipboard

import (
	"errors"
	"fmt"
	"io"

	system "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteText implements Writer.
func (f WriterFunc) WriteText(text string) error { return f(text) }

// ErrUnsupported is returned by System when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// System writes to the OS clipboard (pbcopy, xclip, xsel, wl-copy or the
// Windows API).
type System struct{}

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if system.Unsupported {
		return ErrUnsupported
	}
	if err := system.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set its clipboard with an OSC 52 escape
// sequence. It works over SSH where System cannot.
type OSC52 struct {
	Out io.Writer
	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

// WriteText implements Writer.
func (o OSC52) WriteText(text string) error {
	if o.Out == nil {
		return fmt.Errorf("osc52: no output")
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Chain tries each writer in order and stops at the first success.
type Chain []Writer

// WriteText implements Writer.
func (c Chain) WriteText(text string) error {
	if len(c) == 0 {
		return errNoWriter
	}
	var errs []error
	for _, w := range c {
		if w == nil {
			continue
		}
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
