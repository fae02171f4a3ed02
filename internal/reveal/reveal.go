// Package reveal models the masked/revealed display of a secret value.
package reveal

import (
	"strings"
	"unicode/utf8"
)

// MaskRune is the character masked secrets are drawn with.
const MaskRune = '*'

// MaxMask caps the number of mask characters so the length of long secrets
// is not disclosed.
const MaxMask = 12

// State is the display state of a Secret.
type State int

const (
	Masked State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "masked"
}

// Secret is a single secret field. The zero value is a masked empty secret.
type Secret struct {
	value string
	state State
}

// New returns a masked Secret for value.
func New(value string) *Secret {
	return &Secret{value: value}
}

// Value returns the literal secret regardless of state.
func (s *Secret) Value() string {
	return s.value
}

// State returns the current display state.
func (s *Secret) State() State {
	return s.state
}

// Revealed reports whether the literal value is shown.
func (s *Secret) Revealed() bool {
	return s.state == Revealed
}

// Toggle flips between Masked and Revealed and returns the new state.
func (s *Secret) Toggle() State {
	if s.state == Revealed {
		s.state = Masked
	} else {
		s.state = Revealed
	}
	return s.state
}

// Reset returns the secret to Masked.
func (s *Secret) Reset() {
	s.state = Masked
}

// Display is the text to show for the current state.
func (s *Secret) Display() string {
	if s.state == Revealed {
		return s.value
	}
	return Mask(s.value)
}

// Mask returns MaskRune repeated min(rune count, MaxMask) times.
func Mask(value string) string {
	n := utf8.RuneCountInString(value)
	if n > MaxMask {
		n = MaxMask
	}
	return strings.Repeat(string(MaskRune), n)
}
