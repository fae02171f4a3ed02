package ui

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/five82/welcome/internal/celebrate"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestConfetti_LaunchesStaggeredBurstsFirst(t *testing.T) {
	c := newConfetti(celebrate.Bursts(), 80, 24, seeded())
	if len(c.pending) != 2 {
		t.Fatalf("pending = %d, want the two delayed cannons", len(c.pending))
	}
	if len(c.live) == 0 {
		t.Fatalf("no particles launched immediately")
	}

	for i := 0; i < 8; i++ {
		c.advance()
	}
	if len(c.pending) != 0 {
		t.Fatalf("cannons still pending after %v", c.elapsed)
	}
}

func TestConfetti_RunsToCompletion(t *testing.T) {
	c := newConfetti(celebrate.Bursts(), 80, 24, seeded())
	for i := 0; i < 500 && !c.done(); i++ {
		c.advance()
	}
	if !c.done() {
		t.Fatalf("confetti still running with %d particles", len(c.live))
	}
}

func TestConfetti_OverlayKeepsLineCount(t *testing.T) {
	screen := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	c := newConfetti(celebrate.Bursts(), 80, 24, seeded())
	c.advance()
	out := c.overlay(screen)
	if got := strings.Count(out, "\n"); got != 23 {
		t.Fatalf("overlay produced %d line breaks, want 23", got)
	}
	if out == screen {
		t.Fatalf("overlay drew nothing")
	}

	var none *confetti
	if none.overlay(screen) != screen {
		t.Fatalf("nil confetti changed the screen")
	}
}

func TestPlaceCell(t *testing.T) {
	if got := placeCell("abc", 1, "X"); got != "aXc" {
		t.Fatalf("placeCell inside = %q", got)
	}
	if got := placeCell("ab", 4, "X"); got != "ab  X" {
		t.Fatalf("placeCell past end = %q", got)
	}
}
