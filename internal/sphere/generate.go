package sphere

import (
	"math"

	"github.com/iburimskiy/breathing-sphere/internal/config"
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type tier struct {
	sizeMin, sizeMax   float64
	mixMin, mixMax     float64
	shellMin, shellMax float64
}

var tiers = [...]tier{
	Core:    {2, 4.5, 0.8, 1.0, 0.3, 0.6},
	Inner:   {1, 2.8, 0.4, 0.8, 0.5, 0.9},
	Surface: {0.5, 1.9, 0, 0.3, 0.85, 1.0},
}

var goldenAngle = math.Pi * (1 + math.Sqrt(5))

// KindForLayer partitions a uniform layer draw into the three tiers.
func KindForLayer(layer float64) Kind {
	switch {
	case layer < config.CoreThreshold:
		return Core
	case layer < config.InnerThreshold:
		return Inner
	default:
		return Surface
	}
}

// Generate builds n particles spread over the sphere by golden-angle
// increments. Directions depend only on the index; everything else is drawn
// from src.
func Generate(n int, src Source) []Particle {
	if n <= 0 {
		return nil
	}
	between := func(lo, hi float64) float64 {
		return lo + src.Float64()*(hi-lo)
	}

	particles := make([]Particle, n)
	for i := range particles {
		p := &particles[i]
		p.BaseInclination = math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
		p.BaseAzimuth = float64(i) * goldenAngle

		p.Kind = KindForLayer(src.Float64())
		t := tiers[p.Kind]
		p.Size = between(t.sizeMin, t.sizeMax)
		p.ColorMix = between(t.mixMin, t.mixMax)
		p.Radius = config.BaseRadius * between(t.shellMin, t.shellMax)

		p.Phase = between(0, 2*math.Pi)
		p.Speed = between(0.2, 0.7)
		p.Drift = between(-0.02, 0.02)
		p.PulsePhase = between(0, 2*math.Pi)
		p.PulseSpeed = between(0.5, 2.0)

		p.Inclination = p.BaseInclination
		p.Azimuth = p.BaseAzimuth
	}
	return particles
}
