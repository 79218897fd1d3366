package overlay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRasterCanvasDrawLine(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawLine(mgl64.Vec2{2, 10}, mgl64.Vec2{18, 10}, MeleeColor, 2)

	on := c.Dst.RGBAAt(10, 10)
	if on.R == 0 || on.A == 0 {
		t.Fatalf("expected red pixel on the line, got %+v", on)
	}
	off := c.Dst.RGBAAt(10, 2)
	if off.A != 0 {
		t.Fatalf("expected transparent pixel off the line, got %+v", off)
	}

	c.Clear()
	if got := c.Dst.RGBAAt(10, 10); got.A != 0 {
		t.Fatalf("expected cleared pixel, got %+v", got)
	}
}

func TestRasterCanvasDegenerateLine(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	c.DrawLine(mgl64.Vec2{5, 5}, mgl64.Vec2{5, 5}, HealerColor, 2)
	if got := c.Dst.RGBAAt(5, 5); got.G == 0 {
		t.Fatalf("expected a dot for a zero-length line, got %+v", got)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := &Recorder{}
	rec.DrawLine(mgl64.Vec2{}, mgl64.Vec2{1, 1}, TankColor, 1)
	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Fatalf("expected empty recorder, got %d", len(rec.Commands))
	}
}
