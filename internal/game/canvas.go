package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/breathing-sphere/internal/render"
)

const spriteSize = 128

// screenCanvas adapts an ebiten image to render.Canvas. Radial gradients are
// drawn as pre-rendered sprites scaled to the requested radius.
type screenCanvas struct {
	dst     *ebiten.Image
	falloff *ebiten.Image
	sprites map[string]*ebiten.Image
}

func newScreenCanvas(dst *ebiten.Image) *screenCanvas {
	return &screenCanvas{
		dst: dst,
		falloff: gradientSprite(render.Gradient{
			{Offset: 0, Color: color.White},
			{Offset: 1, Color: color.Transparent},
		}),
		sprites: map[string]*ebiten.Image{},
	}
}

func (c *screenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *screenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillRadialGradient tints the shared white falloff sprite for single-color
// fades, and caches a dedicated sprite for anything else.
func (c *screenCanvas) FillRadialGradient(cx, cy, r float64, g render.Gradient) {
	if r <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteSize/2, -spriteSize/2)
	op.GeoM.Scale(2*r/spriteSize, 2*r/spriteSize)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear

	if g.Fading() {
		op.ColorScale.ScaleWithColor(g[0].Color)
		c.dst.DrawImage(c.falloff, op)
		return
	}
	key := fmt.Sprint(g)
	sprite, ok := c.sprites[key]
	if !ok {
		sprite = gradientSprite(g)
		c.sprites[key] = sprite
	}
	c.dst.DrawImage(sprite, op)
}

func gradientSprite(g render.Gradient) *ebiten.Image {
	img := image.NewRGBA64(image.Rect(0, 0, spriteSize, spriteSize))
	half := float64(spriteSize) / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if d > 1 {
				continue
			}
			img.SetRGBA64(x, y, g.At(clamp01(d)))
		}
	}
	return ebiten.NewImageFromImage(img)
}
