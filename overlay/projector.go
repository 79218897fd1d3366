package overlay

import "github.com/go-gl/mathgl/mgl64"

// Projector converts a world-space point to canvas coordinates. ok is false
// when the point is behind the camera or outside the view frustum.
type Projector interface {
	Project(world mgl64.Vec3) (screen mgl64.Vec2, ok bool)
}

// ProjectorFunc adapts a plain function to Projector.
type ProjectorFunc func(world mgl64.Vec3) (mgl64.Vec2, bool)

func (f ProjectorFunc) Project(world mgl64.Vec3) (mgl64.Vec2, bool) {
	return f(world)
}

// CameraProjector projects through a view and perspective matrix onto a
// Width x Height canvas with y pointing down.
type CameraProjector struct {
	View   mgl64.Mat4
	Proj   mgl64.Mat4
	Width  float64
	Height float64
}

func NewCameraProjector(view, proj mgl64.Mat4, width, height float64) *CameraProjector {
	return &CameraProjector{
		View:   view,
		Proj:   proj,
		Width:  width,
		Height: height,
	}
}

func (p *CameraProjector) Project(world mgl64.Vec3) (mgl64.Vec2, bool) {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return mgl64.Vec2{}, false
	}
	clip := p.Proj.Mul4(p.View).Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return mgl64.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	for _, v := range ndc {
		if v < -1 || v > 1 {
			return mgl64.Vec2{}, false
		}
	}
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * p.Width,
		(1 - ndc.Y()) / 2 * p.Height,
	}, true
}
