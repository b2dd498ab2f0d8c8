// Package hum plays a low drone whose loudness follows the sphere's
// breathing.
package hum

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/breathing-sphere/internal/motion"
)

// Drone is an endless streamer: a fundamental plus a soft octave, amplitude
// modulated by motion.BreathScale on its own sample clock.
type Drone struct {
	freq      float64
	rate      beep.SampleRate
	pos       int
	timeScale float64 // simulation time per sample
}

// NewDrone builds a drone at freq Hz. simRate is how much simulation time
// passes per second of wall time.
func NewDrone(freq float64, rate beep.SampleRate, simRate float64) *Drone {
	return &Drone{
		freq:      freq,
		rate:      rate,
		timeScale: simRate / float64(rate),
	}
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		secs := float64(d.pos) / float64(d.rate)
		env := Envelope(float64(d.pos) * d.timeScale)
		tone := math.Sin(2*math.Pi*d.freq*secs) + 0.3*math.Sin(4*math.Pi*d.freq*secs)
		v := env * tone / 1.3
		samples[i][0] = v
		samples[i][1] = v
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// Envelope maps the breathing scale at simulation time t into [0.2, 1].
func Envelope(t float64) float64 {
	// BreathScale swings at most 0.09 either side of 1.
	n := (motion.BreathScale(t) - 1) / 0.09
	return 0.6 + 0.4*n
}
