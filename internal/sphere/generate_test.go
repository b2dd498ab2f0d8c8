package sphere

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/breathing-sphere/internal/config"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestGenerateCount(t *testing.T) {
	for _, n := range []int{1, 10, 777, config.ParticleCount} {
		ps := Generate(n, rand.New(rand.NewSource(1)))
		if len(ps) != n {
			t.Fatalf("Generate(%d) returned %d particles", n, len(ps))
		}
	}
	if ps := Generate(0, constSource(0)); len(ps) != 0 {
		t.Fatalf("Generate(0) returned %d particles", len(ps))
	}
}

func TestGenerateInclinationMonotone(t *testing.T) {
	ps := Generate(2000, rand.New(rand.NewSource(7)))
	prev := -1.0
	for i, p := range ps {
		if p.BaseInclination < 0 || p.BaseInclination > math.Pi {
			t.Fatalf("particle %d inclination %f outside [0, pi]", i, p.BaseInclination)
		}
		if p.BaseInclination < prev {
			t.Fatalf("inclination decreased at %d: %f < %f", i, p.BaseInclination, prev)
		}
		prev = p.BaseInclination
	}
}

func TestGenerateGoldenAzimuth(t *testing.T) {
	ps := Generate(5, constSource(0.5))
	step := math.Pi * (1 + math.Sqrt(5))
	for i, p := range ps {
		if want := float64(i) * step; p.BaseAzimuth != want {
			t.Errorf("particle %d azimuth %f, want %f", i, p.BaseAzimuth, want)
		}
	}
}

func TestKindForLayer(t *testing.T) {
	cases := map[float64]Kind{
		0:      Core,
		0.0399: Core,
		0.04:   Inner,
		0.2499: Inner,
		0.25:   Surface,
		0.999:  Surface,
	}
	for layer, want := range cases {
		if got := KindForLayer(layer); got != want {
			t.Errorf("KindForLayer(%v) = %v, want %v", layer, got, want)
		}
	}
}

func TestGenerateStubbedCore(t *testing.T) {
	ps := Generate(10, constSource(0))
	for i, p := range ps {
		if p.Kind != Core {
			t.Fatalf("particle %d kind %v, want core", i, p.Kind)
		}
		if p.Size != 2 || p.ColorMix != 0.8 || math.Abs(p.Radius-config.BaseRadius*0.3) > 1e-9 {
			t.Fatalf("particle %d got size=%f mix=%f radius=%f", i, p.Size, p.ColorMix, p.Radius)
		}
		if p.Drift != -0.02 {
			t.Fatalf("particle %d drift %f", i, p.Drift)
		}
	}
}

func TestGenerateTierRanges(t *testing.T) {
	ps := Generate(config.ParticleCount, rand.New(rand.NewSource(42)))
	for i, p := range ps {
		tr := tiers[p.Kind]
		if p.Size < tr.sizeMin || p.Size >= tr.sizeMax {
			t.Fatalf("particle %d (%v) size %f out of range", i, p.Kind, p.Size)
		}
		if p.ColorMix < tr.mixMin || p.ColorMix >= tr.mixMax {
			t.Fatalf("particle %d (%v) mix %f out of range", i, p.Kind, p.ColorMix)
		}
		shell := p.Radius / config.BaseRadius
		if shell < tr.shellMin-1e-12 || shell > tr.shellMax+1e-12 {
			t.Fatalf("particle %d (%v) shell %f out of range", i, p.Kind, shell)
		}
	}
}

func TestGenerateProportions(t *testing.T) {
	const n = 200000
	ps := Generate(n, rand.New(rand.NewSource(3)))
	var counts [3]int
	for _, p := range ps {
		counts[p.Kind]++
	}
	want := [3]float64{0.04, 0.21, 0.75}
	for k, c := range counts {
		frac := float64(c) / n
		if math.Abs(frac-want[k]) > 0.01 {
			t.Errorf("%v fraction %.4f, want ~%.2f", Kind(k), frac, want[k])
		}
	}
}

func TestKindString(t *testing.T) {
	if Core.String() != "core" || Inner.String() != "inner" || Surface.String() != "surface" {
		t.Fatal("unexpected kind names")
	}
	if !(&Particle{Kind: Inner}).Linked() || (&Particle{Kind: Surface}).Linked() {
		t.Fatal("Linked mismatch")
	}
}
