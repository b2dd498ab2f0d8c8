package game

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/motion"
	"github.com/iburimskiy/breathing-sphere/internal/render"
)

// Meter reports an external level for the status log.
type Meter interface {
	Level() float64
}

// Game drives the sphere from ebiten's tick loop. Each Update runs one full
// frame onto an off-screen buffer that persists between ticks so the fade
// leaves trails; Draw only copies it to the screen.
type Game struct {
	sim      *motion.Simulation
	renderer *render.Renderer
	meter    Meter

	buffer *ebiten.Image
	canvas *screenCanvas

	// size reported by Layout, applied on the next Update
	width, height int

	ticks   int
	started time.Time
}

func New(sim *motion.Simulation, meter Meter) *Game {
	return &Game{
		sim:      sim,
		renderer: render.NewRenderer(),
		meter:    meter,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		started:  time.Now(),
	}
}

func (g *Game) Update() error {
	g.applySize()
	render.RunFrame(g.sim, g.renderer, g.canvas, config.TimeStep)

	g.ticks++
	if g.ticks%config.StatusInterval == 0 {
		g.logStatus()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.buffer == nil {
		screen.Fill(color.Black)
		return
	}
	screen.DrawImage(g.buffer, nil)
}

// Layout follows the window size so a resize moves the sphere's center.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) applySize() {
	if g.buffer != nil {
		if !needsResize(g.buffer.Bounds(), g.width, g.height) {
			return
		}
		g.buffer.Deallocate()
	}
	g.buffer = ebiten.NewImage(g.width, g.height)
	g.buffer.Fill(color.Black)
	if g.canvas == nil {
		g.canvas = newScreenCanvas(g.buffer)
	} else {
		g.canvas.dst = g.buffer
	}
	g.sim.Resize(g.width, g.height)
	slog.Debug("viewport resized", "width", g.width, "height", g.height)
}

func (g *Game) logStatus() {
	level := 0.0
	if g.meter != nil {
		level = g.meter.Level()
	}
	st := g.renderer.Last
	slog.Info("sphere status",
		"time", g.sim.Time,
		"uptime", formatDuration(time.Since(g.started)),
		"visible", st.Visible,
		"halos", st.Halos,
		"edges", st.Edges,
		"tps", ebiten.ActualTPS(),
		"hum_level", level,
	)
}

// needsResize reports whether a trail buffer with bounds b must be
// reallocated for a w x h viewport.
func needsResize(b image.Rectangle, w, h int) bool {
	return b.Dx() != w || b.Dy() != h
}
