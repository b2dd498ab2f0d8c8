package main

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log/slog"
	"math/rand"
	"os"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/motion"
	"github.com/iburimskiy/breathing-sphere/internal/raster"
	"github.com/iburimskiy/breathing-sphere/internal/render"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	out := "sphere.gif"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := run(out); err != nil {
		slog.Error("preview failed", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	particles := sphere.Generate(config.ParticleCount, rand.New(rand.NewSource(1)))
	sim := motion.New(particles, config.GIFWidth, config.GIFHeight)
	canvas := raster.New(config.GIFWidth, config.GIFHeight)
	anim := captureFrames(sim, render.NewRenderer(), canvas, config.GIFFrames, config.GIFStride)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	slog.Info("preview written", "path", path, "frames", len(anim.Image))
	return nil
}

// captureFrames renders frames*stride ticks and keeps every stride-th frame.
func captureFrames(sim *motion.Simulation, r *render.Renderer, c *raster.Canvas, frames, stride int) *gif.GIF {
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}
	for i := 0; i < frames; i++ {
		for s := 0; s < stride; s++ {
			render.RunFrame(sim, r, c, config.TimeStep)
		}
		if i%max(1, frames/10) == 0 {
			slog.Info("capturing", "frame", i+1, "of", frames, "edges", r.Last.Edges)
		}
		pimg := image.NewPaletted(c.Img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), c.Img, image.Point{})
		anim.Image = append(anim.Image, pimg)
		anim.Delay = append(anim.Delay, config.GIFDelay)
	}
	return anim
}
