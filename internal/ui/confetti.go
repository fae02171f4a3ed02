package ui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/welcome/internal/celebrate"
)

// Terminal cells are treated as 8x16 pixel boxes so the browser burst plan
// keeps roughly the same proportions.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0

	confettiFrame     = 33 * time.Millisecond
	ticksPerFrame     = 2
	particleDivisor   = 4
	defaultSpread     = 45.0
	defaultVelocity   = 45.0
	defaultDecay      = 0.9
	defaultGravity    = 1.0
	defaultTicks      = 200
	defaultAngle      = 90.0
	defaultOriginAxis = 0.5
)

var confettiGlyphs = []string{"▪", "•", "◆", "*", "▴"}

type particle struct {
	x, y     float64
	angle    float64
	velocity float64
	decay    float64
	gravity  float64
	tick     int
	ticks    int
	glyph    string
	color    string
}

func (p *particle) step() {
	p.x += math.Cos(p.angle) * p.velocity
	p.y += math.Sin(p.angle)*p.velocity + p.gravity
	p.velocity *= p.decay
	p.tick++
}

func (p *particle) alive() bool {
	return p.tick < p.ticks
}

// confetti is a terminal rendition of the celebration burst plan.
type confetti struct {
	pending []celebrate.Burst
	live    []*particle
	elapsed time.Duration
	width   int
	height  int
	rng     *rand.Rand
}

func newConfetti(plan []celebrate.Burst, width, height int, rng *rand.Rand) *confetti {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	pending := make([]celebrate.Burst, len(plan))
	copy(pending, plan)
	c := &confetti{pending: pending, width: width, height: height, rng: rng}
	c.launchDue()
	return c
}

// advance moves the animation forward one frame.
func (c *confetti) advance() {
	c.elapsed += confettiFrame
	c.launchDue()
	alive := c.live[:0]
	for _, p := range c.live {
		for i := 0; i < ticksPerFrame && p.alive(); i++ {
			p.step()
		}
		if p.alive() && c.onScreen(p) {
			alive = append(alive, p)
		}
	}
	c.live = alive
}

func (c *confetti) done() bool {
	return len(c.pending) == 0 && len(c.live) == 0
}

func (c *confetti) resize(width, height int) {
	c.width, c.height = width, height
}

func (c *confetti) launchDue() {
	rest := c.pending[:0]
	for _, b := range c.pending {
		if time.Duration(b.DelayMS)*time.Millisecond > c.elapsed {
			rest = append(rest, b)
			continue
		}
		c.launch(b)
	}
	c.pending = rest
}

// launch spawns a burst using the same physics as canvas-confetti, scaled to
// the terminal.
func (c *confetti) launch(b celebrate.Burst) {
	count := b.ParticleCount / particleDivisor
	if count < 1 {
		count = 1
	}
	ox, oy := defaultOriginAxis, defaultOriginAxis
	if b.Origin != nil {
		ox = b.Origin.X
		if b.Origin.Y != 0 {
			oy = b.Origin.Y
		}
	}
	spread := orDefault(b.Spread, defaultSpread) * math.Pi / 180
	angle := orDefault(b.Angle, defaultAngle) * math.Pi / 180
	velocity := orDefault(b.StartVelocity, defaultVelocity)
	decay := orDefault(b.Decay, defaultDecay)
	gravity := orDefault(b.Gravity, defaultGravity) * 3
	ticks := b.Ticks
	if ticks <= 0 {
		ticks = defaultTicks
	}
	colors := b.Colors
	if len(colors) == 0 {
		colors = celebrate.Palette
	}

	for i := 0; i < count; i++ {
		c.live = append(c.live, &particle{
			x:        ox * float64(c.width) * cellWidthPx,
			y:        oy * float64(c.height) * cellHeightPx,
			angle:    -angle + (0.5*spread - c.rng.Float64()*spread),
			velocity: velocity*0.5 + c.rng.Float64()*velocity,
			decay:    decay,
			gravity:  gravity,
			ticks:    ticks,
			glyph:    confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
			color:    colors[c.rng.IntN(len(colors))],
		})
	}
}

func (c *confetti) onScreen(p *particle) bool {
	return p.y < float64(c.height)*cellHeightPx && p.x > -cellWidthPx && p.x < float64(c.width+1)*cellWidthPx
}

// cell returns the terminal cell of p.
func (c *confetti) cell(p *particle) (col, row int) {
	return int(p.x / cellWidthPx), int(p.y / cellHeightPx)
}

// overlay draws the live particles on top of a rendered screen.
func (c *confetti) overlay(screen string) string {
	if c == nil || len(c.live) == 0 {
		return screen
	}
	lines := strings.Split(screen, "\n")
	for _, p := range c.live {
		col, row := c.cell(p)
		if row < 0 || row >= len(lines) || col < 0 || col >= c.width {
			continue
		}
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Render(p.glyph)
		lines[row] = placeCell(lines[row], col, glyph)
	}
	return strings.Join(lines, "\n")
}

// placeCell replaces the cell at col of an ANSI-styled line with glyph.
func placeCell(line string, col int, glyph string) string {
	if w := ansi.StringWidth(line); w <= col {
		return line + strings.Repeat(" ", col-w) + glyph
	}
	return ansi.Truncate(line, col, "") + glyph + ansi.TruncateLeft(line, col+1, "")
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
