package hum

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Player owns the speaker output for the drone.
type Player struct {
	ctrl *beep.Ctrl
	tap  *levelTap
}

// Start initializes the speaker and begins playing the drone. volume is a
// log2 gain.
func Start(freq float64, rate beep.SampleRate, simRate, volume float64, tapSize int) (*Player, error) {
	tap := newLevelTap(NewDrone(freq, rate, simRate), tapSize)
	vol := &effects.Volume{Streamer: tap, Base: 2, Volume: volume}
	ctrl := &beep.Ctrl{Streamer: vol}

	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(ctrl)
	return &Player{ctrl: ctrl, tap: tap}, nil
}

// Level is the recent drone RMS before the volume stage, in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return math.Min(1, p.tap.rms())
}

// Stop silences the drone.
func (p *Player) Stop() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
}
