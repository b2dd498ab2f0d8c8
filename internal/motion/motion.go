// Package motion advances the animation clock and projects every particle
// into screen space.
package motion

import (
	"math"
	"sort"

	"github.com/iburimskiy/breathing-sphere/internal/config"
	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

// Simulation is the whole mutable state of the sphere.
type Simulation struct {
	Time      float64
	Particles []sphere.Particle
	CenterX   float64
	CenterY   float64
}

// New wraps particles in a simulation centered on a w x h viewport and runs
// an initial projection so the first frame has valid screen attributes.
func New(particles []sphere.Particle, w, h int) *Simulation {
	s := &Simulation{Particles: particles}
	s.Resize(w, h)
	s.Project()
	return s
}

// Resize moves the projection center. Particle geometry is untouched.
func (s *Simulation) Resize(w, h int) {
	s.CenterX = float64(w) / 2
	s.CenterY = float64(h) / 2
}

// Step advances the clock by dt and re-projects.
func (s *Simulation) Step(dt float64) {
	s.Time += dt
	s.Project()
}

// BreathScale is the global radius multiplier at time t.
func BreathScale(t float64) float64 {
	return 1 + 0.06*math.Sin(0.4*t) + 0.03*math.Sin(0.17*t)
}

// Rotation returns the spin about the vertical axis and the tilt about the
// horizontal axis at time t.
func Rotation(t float64) (rotY, rotX float64) {
	return 0.05 * t, 0.15 * math.Sin(0.03*t)
}

// Project recomputes every dynamic field from the static ones and the
// current time, then sorts back to front by depth.
func (s *Simulation) Project() {
	t := s.Time
	breath := BreathScale(t)
	rotY, rotX := Rotation(t)
	cosY, sinY := math.Cos(rotY), math.Sin(rotY)
	cosX, sinX := math.Cos(rotX), math.Sin(rotX)

	for i := range s.Particles {
		p := &s.Particles[i]

		p.Inclination = p.BaseInclination + config.WanderInclination*math.Sin(t*p.Speed+p.Phase)
		p.Azimuth = p.BaseAzimuth + config.WanderAzimuth*math.Cos(0.8*t*p.Speed+p.Phase) + t*p.Drift
		wave := 1 + config.WaveAmplitude*math.Sin(3*p.BaseInclination+0.7*t)*math.Cos(2*p.BaseAzimuth+0.5*t)
		r := p.Radius * breath * wave

		sinI := math.Sin(p.Inclination)
		p.X = r * sinI * math.Cos(p.Azimuth)
		p.Y = r * math.Cos(p.Inclination)
		p.Z = r * sinI * math.Sin(p.Azimuth)

		// yaw, then pitch
		x := p.X*cosY - p.Z*sinY
		z := p.X*sinY + p.Z*cosY
		y := p.Y*cosX - z*sinX
		z = p.Y*sinX + z*cosX

		p.Scale = config.Perspective / (config.Perspective + z + 2*config.BaseRadius)
		p.ScreenX = s.CenterX + x*p.Scale
		p.ScreenY = s.CenterY + y*p.Scale
		p.ScreenSize = p.Size * p.Scale
		p.Depth = z
	}

	sort.SliceStable(s.Particles, func(i, j int) bool {
		return s.Particles[i].Depth < s.Particles[j].Depth
	})
}
