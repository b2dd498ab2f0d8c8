// Package render paints the projected sphere onto a Canvas.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/motion"
	"github.com/iburimskiy/breathing-sphere/internal/palette"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

var (
	fadeColor   = palette.RGBA{R: 3, G: 4, B: 12, A: config.FadeAlpha}
	warmEdge    = palette.RGBA{R: 230, G: 190, B: 80}
	coolEdge    = palette.RGBA{R: 140, G: 180, B: 255}
	ambientGlow = Gradient{
		{Offset: 0, Color: palette.RGBA{R: 60, G: 80, B: 170, A: 0.10}},
		{Offset: 0.45, Color: palette.RGBA{R: 30, G: 40, B: 110, A: 0.05}},
		{Offset: 1, Color: palette.RGBA{}},
	}
)

// Stats summarizes the last rendered frame.
type Stats struct {
	Visible int
	Halos   int
	Edges   int
}

// Renderer draws frames. It keeps no state between frames besides Stats.
type Renderer struct {
	BaseRadius float64
	Last       Stats
}

func NewRenderer() *Renderer {
	return &Renderer{BaseRadius: config.BaseRadius}
}

// RunFrame performs one tick: advance and project the simulation, then paint.
func RunFrame(sim *motion.Simulation, r *Renderer, c Canvas, dt float64) {
	sim.Step(dt)
	r.Render(c, sim)
}

// Render paints the current state of sim. Particles must already be
// projected and sorted.
func (r *Renderer) Render(c Canvas, sim *motion.Simulation) {
	var stats Stats
	w, h := c.Size()

	// Translucent fill instead of a clear leaves trails behind moving points.
	c.FillRect(0, 0, float64(w), float64(h), fadeColor)
	c.FillRadialGradient(sim.CenterX, sim.CenterY, config.GlowRadius*r.BaseRadius, ambientGlow)

	for i := range sim.Particles {
		p := &sim.Particles[i]
		alpha := r.Alpha(p, sim.Time)
		if alpha < config.MinParticleAlpha {
			continue
		}
		stats.Visible++
		c.FillCircle(p.ScreenX, p.ScreenY, p.ScreenSize, palette.Mix(p, alpha, sim.Time))

		var haloScale float64
		switch p.Kind {
		case sphere.Core:
			haloScale = config.CoreHaloScale
		case sphere.Inner:
			if alpha > config.InnerHaloAlpha {
				haloScale = config.InnerHaloScale
			}
		case sphere.Surface:
		}
		if haloScale > 0 {
			stats.Halos++
			c.FillRadialGradient(p.ScreenX, p.ScreenY, p.ScreenSize*haloScale, Gradient{
				{Offset: 0, Color: palette.Mix(p, alpha*config.HaloAlphaScale, sim.Time)},
				{Offset: 1, Color: palette.RGBA{}},
			})
		}
	}

	edges := Connections(sim.Particles, r.BaseRadius)
	for _, e := range edges {
		a, b := &sim.Particles[e.A], &sim.Particles[e.B]
		c.StrokeLine(a.ScreenX, a.ScreenY, b.ScreenX, b.ScreenY, config.EdgeWidth, edgeColor(e))
	}
	stats.Edges = len(edges)
	r.Last = stats
}

// Alpha is the particle opacity from its depth and its own pulse.
func (r *Renderer) Alpha(p *sphere.Particle, t float64) float64 {
	span := 2 * r.BaseRadius
	depthAlpha := 0.15 + 0.85*clamp01((p.Depth+span)/(2*span))
	pulse := 0.4 + 0.6*(0.5+0.5*math.Sin(p.PulseSpeed*t+p.PulsePhase))
	return depthAlpha * pulse
}

func edgeColor(e Edge) color.Color {
	if e.Warm {
		return warmEdge.WithAlpha(e.Alpha)
	}
	return coolEdge.WithAlpha(e.Alpha)
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
