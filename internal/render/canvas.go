package render

import (
	"image/color"
	"math"
)

// Canvas is the drawing surface the renderer paints on. Coordinates are in
// pixels with the origin at the top left.
type Canvas interface {
	Size() (w, h int)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillRadialGradient(cx, cy, r float64, g Gradient)
}

// Stop is one color stop of a radial gradient, Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.Color
}

// Gradient is an ordered list of stops running from the center outwards.
type Gradient []Stop

// At returns the premultiplied color at normalized radius t. Colors are
// interpolated in premultiplied space so that fading to a transparent stop
// does not darken.
func (g Gradient) At(t float64) color.RGBA64 {
	if len(g) == 0 {
		return color.RGBA64{}
	}
	if t <= g[0].Offset {
		return rgba64(g[0].Color)
	}
	for i := 1; i < len(g); i++ {
		if t <= g[i].Offset {
			a, b := g[i-1], g[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return rgba64(b.Color)
			}
			return blend(rgba64(a.Color), rgba64(b.Color), (t-a.Offset)/span)
		}
	}
	return rgba64(g[len(g)-1].Color)
}

// Fading reports whether g is a single color fading out to transparent,
// which canvases can draw from one shared falloff sprite.
func (g Gradient) Fading() bool {
	if len(g) != 2 || g[0].Offset != 0 || g[1].Offset != 1 {
		return false
	}
	_, _, _, a := g[1].Color.RGBA()
	return a == 0
}

func rgba64(c color.Color) color.RGBA64 {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func blend(a, b color.RGBA64, t float64) color.RGBA64 {
	mix := func(x, y uint16) uint16 {
		return uint16(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA64{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
