package main

import (
	"math/rand"
	"testing"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/motion"
	"github.com/iburimskiy/breathing-sphere/internal/raster"
	"github.com/iburimskiy/breathing-sphere/internal/render"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

func TestCaptureFrames(t *testing.T) {
	sim := motion.New(sphere.Generate(300, rand.New(rand.NewSource(2))), 64, 64)
	anim := captureFrames(sim, render.NewRenderer(), raster.New(64, 64), 4, 3)

	if len(anim.Image) != 4 || len(anim.Delay) != 4 {
		t.Fatalf("got %d frames, %d delays", len(anim.Image), len(anim.Delay))
	}
	if want := 12 * config.TimeStep; sim.Time < want-1e-9 || sim.Time > want+1e-9 {
		t.Fatalf("time = %f, want %f", sim.Time, want)
	}
	if anim.Delay[0] != config.GIFDelay {
		t.Fatalf("delay = %d", anim.Delay[0])
	}
}
