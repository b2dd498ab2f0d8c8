package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/game"
	"github.com/iburimskiy/breathing-sphere/internal/hum"
	"github.com/iburimskiy/breathing-sphere/internal/motion"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	particles := sphere.Generate(config.ParticleCount, rand.New(rand.NewSource(time.Now().UnixNano())))
	sim := motion.New(particles, config.WindowWidth, config.WindowHeight)
	slog.Info("sphere generated", "particles", len(particles), "radius", config.BaseRadius)

	var player *hum.Player
	if config.HumEnabled {
		var err error
		player, err = hum.Start(config.HumFrequency, beep.SampleRate(config.HumSampleRate),
			config.TimeStep*config.TPS, config.HumVolume, config.HumTapSize)
		if err != nil {
			slog.Warn("ambient hum disabled", "error", err)
		}
	}
	defer player.Stop()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Breathing Sphere")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := game.New(sim, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("render loop failed", "error", err)
		_ = zenity.Error(err.Error(), zenity.Title("Breathing Sphere"), zenity.ErrorIcon)
		player.Stop()
		os.Exit(1)
	}
}
