package celebrate

import (
	"encoding/json"
	"math"
)

// Palette is the brand palette every burst draws from.
var Palette = []string{"#3ECF8E", "#24B374", "#47DF97", "#ffffff", "#75E7B1"}

// Origin is the launch point in viewport fractions.
type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y,omitempty"`
}

// Burst is one call to the particle effect. Zero optional fields fall back to
// the effect's own defaults.
type Burst struct {
	ParticleCount int      `json:"particleCount"`
	Spread        float64  `json:"spread"`
	StartVelocity float64  `json:"startVelocity,omitempty"`
	Decay         float64  `json:"decay,omitempty"`
	Gravity       float64  `json:"gravity,omitempty"`
	Ticks         int      `json:"ticks,omitempty"`
	Scalar        float64  `json:"scalar,omitempty"`
	Angle         float64  `json:"angle,omitempty"`
	Origin        *Origin  `json:"origin,omitempty"`
	Colors        []string `json:"colors"`
	// DelayMS is the offset from the start of the celebration.
	DelayMS int `json:"delay,omitempty"`
}

const (
	totalParticles = 200
	cannonDelayMS  = 250
)

type burstOpts struct {
	ratio    float64
	spread   float64
	velocity float64
	decay    float64
	scalar   float64
}

var staggered = []burstOpts{
	{ratio: 0.25, spread: 26, velocity: 55},
	{ratio: 0.2, spread: 60},
	{ratio: 0.35, spread: 100, decay: 0.91, scalar: 0.8},
	{ratio: 0.1, spread: 120, velocity: 25, decay: 0.92, scalar: 1.2},
	{ratio: 0.1, spread: 120, velocity: 45},
}

// Bursts returns the full plan: five staggered bursts followed by two side
// cannons.
func Bursts() []Burst {
	plan := make([]Burst, 0, len(staggered)+2)
	for _, o := range staggered {
		b := Burst{
			ParticleCount: int(math.Floor(totalParticles * o.ratio)),
			Spread:        60,
			StartVelocity: 30,
			Decay:         0.94,
			Gravity:       1,
			Ticks:         100,
			Colors:        palette(),
		}
		if o.spread > 0 {
			b.Spread = o.spread
		}
		if o.velocity > 0 {
			b.StartVelocity = o.velocity
		}
		if o.decay > 0 {
			b.Decay = o.decay
		}
		if o.scalar > 0 {
			b.Scalar = o.scalar
		}
		plan = append(plan, b)
	}
	for _, side := range []struct{ angle, x float64 }{{60, 0}, {120, 1}} {
		plan = append(plan, Burst{
			ParticleCount: 50,
			Spread:        55,
			Angle:         side.angle,
			Origin:        &Origin{X: side.x},
			Colors:        palette(),
			DelayMS:       cannonDelayMS,
		})
	}
	return plan
}

// PlanJSON encodes Bursts for the browser.
func PlanJSON() string {
	data, err := json.Marshal(Bursts())
	if err != nil {
		return "[]"
	}
	return string(data)
}

func palette() []string {
	out := make([]string, len(Palette))
	copy(out, Palette)
	return out
}
