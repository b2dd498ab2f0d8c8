// Package raster implements render.Canvas in software on an *image.RGBA,
// for headless frame capture.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/breathing-sphere/internal/render"
)

// Canvas draws with antialiased coverage from the x/image rasterizer and
// composites with draw.Over. Each shape is rasterized inside its own
// clipped bounding box.
type Canvas struct {
	Img *image.RGBA

	z    vector.Rasterizer
	clip image.Rectangle
}

func New(w, h int) *Canvas {
	c := &Canvas{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.Img.Bounds()
	return b.Dx(), b.Dy()
}

// begin prepares the rasterizer for a shape inside [x0,x1]x[y0,y1] and
// reports false when nothing of it is on the image.
func (c *Canvas) begin(x0, y0, x1, y1 float64) bool {
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(c.Img.Bounds())
	if r.Empty() {
		return false
	}
	c.clip = r
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Over
	return true
}

// local maps a point into the clip box. Clamping onto the box edges keeps
// the accumulated coverage exact for the pixels inside it.
func (c *Canvas) local(x, y float64) (float32, float32) {
	lx := math.Min(math.Max(x-float64(c.clip.Min.X), 0), float64(c.clip.Dx()))
	ly := math.Min(math.Max(y-float64(c.clip.Min.Y), 0), float64(c.clip.Dy()))
	return float32(lx), float32(ly)
}

func (c *Canvas) moveTo(x, y float64) { c.z.MoveTo(c.local(x, y)) }
func (c *Canvas) lineTo(x, y float64) { c.z.LineTo(c.local(x, y)) }

func (c *Canvas) paint(src image.Image) {
	c.z.Draw(c.Img, c.clip, src, c.clip.Min)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if !c.begin(x, y, x+w, y+h) {
		return
	}
	c.moveTo(x, y)
	c.lineTo(x+w, y)
	c.lineTo(x+w, y+h)
	c.lineTo(x, y+h)
	c.z.ClosePath()
	c.paint(image.NewUniform(clr))
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 || !c.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	c.circle(cx, cy, r, false)
	c.paint(image.NewUniform(clr))
}

// StrokeCircle fills the ring between the two offset circles, relying on
// the nonzero winding of opposite directions.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	outer := r + width/2
	if outer <= 0 || !c.begin(cx-outer, cy-outer, cx+outer, cy+outer) {
		return
	}
	c.circle(cx, cy, outer, false)
	if inner := r - width/2; inner > 0 {
		c.circle(cx, cy, inner, true)
	}
	c.paint(image.NewUniform(clr))
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	pad := width / 2
	if !c.begin(math.Min(x0, x1)-pad, math.Min(y0, y1)-pad, math.Max(x0, x1)+pad, math.Max(y0, y1)+pad) {
		return
	}
	c.moveTo(x0+nx, y0+ny)
	c.lineTo(x1+nx, y1+ny)
	c.lineTo(x1-nx, y1-ny)
	c.lineTo(x0-nx, y0-ny)
	c.z.ClosePath()
	c.paint(image.NewUniform(clr))
}

func (c *Canvas) FillRadialGradient(cx, cy, r float64, g render.Gradient) {
	if r <= 0 || !c.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	c.circle(cx, cy, r, false)
	c.paint(&radial{cx: cx, cy: cy, r: r, g: g, bounds: c.Img.Bounds()})
}

func (c *Canvas) circle(cx, cy, r float64, reverse bool) {
	n := segments(r)
	step := 2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	c.moveTo(cx+r, cy)
	for i := 1; i < n; i++ {
		a := float64(i) * step
		c.lineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	c.z.ClosePath()
}

func segments(r float64) int {
	n := int(math.Ceil(r * 1.5))
	if n < 8 {
		return 8
	}
	if n > 128 {
		return 128
	}
	return n
}

// radial is an image source that evaluates a gradient by distance from a
// center. It is only sampled inside the rasterized disc.
type radial struct {
	cx, cy, r float64
	g         render.Gradient
	bounds    image.Rectangle
}

func (s *radial) ColorModel() color.Model { return color.RGBA64Model }
func (s *radial) Bounds() image.Rectangle { return s.bounds }

func (s *radial) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-s.cx, float64(y)+0.5-s.cy)
	return s.g.At(d / s.r)
}
