// Package sphere holds the particle records and the golden-angle generator
// that lays them out over a set of concentric shells.
package sphere

// Kind selects a particle's rendering tier.
type Kind int

const (
	Core Kind = iota
	Inner
	Surface
)

func (k Kind) String() string {
	switch k {
	case Core:
		return "core"
	case Inner:
		return "inner"
	case Surface:
		return "surface"
	}
	return "unknown"
}

// Particle is one point of the sphere. The first block is fixed at
// generation time, the second is rewritten by every projection pass.
type Particle struct {
	BaseInclination float64
	BaseAzimuth     float64
	Radius          float64
	Size            float64
	Kind            Kind
	ColorMix        float64 // 0 cool, 1 warm
	Phase           float64
	Speed           float64
	Drift           float64
	PulsePhase      float64
	PulseSpeed      float64

	Inclination float64
	Azimuth     float64
	X, Y, Z     float64
	ScreenX     float64
	ScreenY     float64
	ScreenSize  float64
	Depth       float64
	Scale       float64
}

// Linked reports whether the particle takes part in the connection network.
func (p *Particle) Linked() bool {
	return p.Kind == Core || p.Kind == Inner
}
