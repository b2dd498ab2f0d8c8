// Package palette maps a particle's color mix onto the cool-to-warm ramp.
package palette

import (
	"fmt"
	"math"

	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

// RGBA is a straight (non-premultiplied) color with a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Anchor is an RGB ramp stop with channels in [0, 255].
type Anchor struct{ R, G, B float64 }

func lerp(a, b Anchor, t float64) Anchor {
	return Anchor{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Anchors
var (
	Deep  = Anchor{15, 25, 80}
	Blue  = Anchor{70, 140, 255}
	Amber = Anchor{255, 170, 60}
	Gold  = Anchor{255, 215, 100} // not used by Mix
	White = Anchor{255, 255, 255}
)

const (
	breatheRate  = 0.3
	breatheShift = 0.15
	coreWhiten   = 0.4
)

// Mix returns the color of p at time t with the given alpha. The mix value
// is nudged warmer by a slow per-particle breathing term before being placed
// on the deep -> blue -> amber ramp; core particles are washed toward white.
func Mix(p *sphere.Particle, alpha, t float64) RGBA {
	breathe := 0.5 + 0.5*math.Sin(breatheRate*t+p.PulsePhase)
	m := math.Min(1, p.ColorMix+breatheShift*breathe)

	var c Anchor
	if m < 0.5 {
		c = lerp(Deep, Blue, m/0.5)
	} else {
		c = lerp(Blue, Amber, (m-0.5)/0.5)
	}
	if p.Kind == sphere.Core {
		c = lerp(c, White, coreWhiten)
	}
	return RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: alpha,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
