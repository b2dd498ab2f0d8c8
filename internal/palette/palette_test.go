package palette

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/breathing-sphere/internal/sphere"
)

func TestMixSurfaceAtZero(t *testing.T) {
	p := &sphere.Particle{Kind: sphere.Surface}
	got := Mix(p, 1, 0)

	// breathe = 0.5 at t=0 with zero phase, so the mix shifts to 0.075.
	f := 0.075 / 0.5
	want := RGBA{
		R: uint8(math.Round(Deep.R + (Blue.R-Deep.R)*f)),
		G: uint8(math.Round(Deep.G + (Blue.G-Deep.G)*f)),
		B: uint8(math.Round(Deep.B + (Blue.B-Deep.B)*f)),
		A: 1,
	}
	if got != want {
		t.Fatalf("Mix = %v, want %v", got, want)
	}
	if got.R != 23 || got.G != 42 || got.B != 106 {
		t.Fatalf("Mix = %v, want rgba(23, 42, 106, 1)", got)
	}
}

func TestMixCoreWhitened(t *testing.T) {
	// phase -pi/2 makes breathe 0 so the mix is used as is.
	p := &sphere.Particle{Kind: sphere.Core, ColorMix: 1, PulsePhase: -math.Pi / 2}
	got := Mix(p, 0.5, 0)
	want := RGBA{
		R: 255,
		G: uint8(math.Round(Amber.G + (White.G-Amber.G)*0.4)),
		B: uint8(math.Round(Amber.B + (White.B-Amber.B)*0.4)),
		A: 0.5,
	}
	if got != want {
		t.Fatalf("Mix = %v, want %v", got, want)
	}
}

func TestMixUpperSegment(t *testing.T) {
	p := &sphere.Particle{Kind: sphere.Inner, ColorMix: 0.6, PulsePhase: -math.Pi / 2}
	got := Mix(p, 1, 0)
	f := (0.6 - 0.5) / 0.5
	if want := uint8(math.Round(Blue.R + (Amber.R-Blue.R)*f)); got.R != want {
		t.Fatalf("R = %d, want %d", got.R, want)
	}
}

func TestMixChannelRange(t *testing.T) {
	lo := Anchor{R: 255, G: 255, B: 255}
	var hi Anchor
	for _, a := range []Anchor{Deep, Blue, Amber, White} {
		lo = Anchor{math.Min(lo.R, a.R), math.Min(lo.G, a.G), math.Min(lo.B, a.B)}
		hi = Anchor{math.Max(hi.R, a.R), math.Max(hi.G, a.G), math.Max(hi.B, a.B)}
	}
	in := func(v uint8, lo, hi float64) bool {
		return float64(v) >= math.Round(lo) && float64(v) <= math.Round(hi)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20000; i++ {
		p := &sphere.Particle{
			Kind:       sphere.Kind(rng.Intn(3)),
			ColorMix:   rng.Float64(),
			PulsePhase: rng.Float64() * 2 * math.Pi,
		}
		tm := rng.Float64() * 1e4
		c := Mix(p, 1, tm)
		if !in(c.R, lo.R, hi.R) || !in(c.G, lo.G, hi.G) || !in(c.B, lo.B, hi.B) {
			t.Fatalf("Mix(%+v, %f) = %v outside the anchor hull", p, tm, c)
		}
	}
}

func TestRGBAColor(t *testing.T) {
	var c color.Color = RGBA{R: 255, G: 0, B: 0, A: 0.5}
	r, g, b, a := c.RGBA()
	if a != 0x8000 || g != 0 || b != 0 || r != 0x8000 {
		t.Fatalf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	if s := (RGBA{R: 1, G: 2, B: 3, A: 0.25}).String(); s != "rgba(1, 2, 3, 0.25)" {
		t.Fatalf("String() = %q", s)
	}
}
