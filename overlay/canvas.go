package overlay

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
)

// Canvas receives the draw commands of one frame.
type Canvas interface {
	DrawLine(from, to mgl64.Vec2, c Color, width float32)
}

// DrawCommand is one line issued to a canvas.
type DrawCommand struct {
	From  mgl64.Vec2
	To    mgl64.Vec2
	Color Color
	Width float32
}

// Recorder is a Canvas that keeps every command it receives.
type Recorder struct {
	Commands []DrawCommand
}

func (r *Recorder) DrawLine(from, to mgl64.Vec2, c Color, width float32) {
	r.Commands = append(r.Commands, DrawCommand{From: from, To: to, Color: c, Width: width})
}

// Reset drops recorded commands but keeps the backing array.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// RasterCanvas draws onto a CPU image. Each line is filled as a quad of the
// requested width.
type RasterCanvas struct {
	Dst *image.RGBA

	rast *vector.Rasterizer
}

func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		Dst:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

func (c *RasterCanvas) DrawLine(from, to mgl64.Vec2, col Color, width float32) {
	if c == nil || c.Dst == nil {
		return
	}
	d := to.Sub(from)
	length := d.Len()
	half := float64(width) / 2
	// Unit normal scaled to half width; degenerate lines become a dot.
	var n, t mgl64.Vec2
	if length > 0 {
		n = mgl64.Vec2{-d.Y(), d.X()}.Mul(half / length)
	} else {
		n = mgl64.Vec2{0, half}
		t = mgl64.Vec2{half, 0}
	}
	a := from.Sub(t).Add(n)
	b := to.Add(t).Add(n)
	e := to.Add(t).Sub(n)
	f := from.Sub(t).Sub(n)

	b0 := c.Dst.Bounds()
	c.rast.Reset(b0.Dx(), b0.Dy())
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(float32(a.X()), float32(a.Y()))
	c.rast.LineTo(float32(b.X()), float32(b.Y()))
	c.rast.LineTo(float32(e.X()), float32(e.Y()))
	c.rast.LineTo(float32(f.X()), float32(f.Y()))
	c.rast.ClosePath()
	c.rast.Draw(c.Dst, b0, image.NewUniform(col), image.Point{})
}

// Clear resets every pixel to transparent.
func (c *RasterCanvas) Clear() {
	if c == nil || c.Dst == nil {
		return
	}
	draw.Draw(c.Dst, c.Dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func finite(v mgl64.Vec2) bool {
	return !math.IsNaN(v.X()) && !math.IsNaN(v.Y()) && !math.IsInf(v.X(), 0) && !math.IsInf(v.Y(), 0)
}
