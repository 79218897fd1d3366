package overlay

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera looking from Eye towards Target.
type Camera struct {
	Eye        mgl64.Vec3
	Target     mgl64.Vec3
	Up         mgl64.Vec3
	FovDegrees float64
	Near       float64
	Far        float64
}

// ChaseCamera places the camera behind and above the viewer, looking at it.
// Behind means towards -Z.
func ChaseCamera(viewer mgl64.Vec3, distance, height, fovDegrees, near, far float64) Camera {
	return Camera{
		Eye:        viewer.Add(mgl64.Vec3{0, height, -distance}),
		Target:     viewer,
		Up:         mgl64.Vec3{0, 1, 0},
		FovDegrees: fovDegrees,
		Near:       near,
		Far:        far,
	}
}

// Projector builds a CameraProjector for a canvas of the given size.
func (c Camera) Projector(width, height float64) *CameraProjector {
	up := c.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	view := mgl64.LookAtV(c.Eye, c.Target, up)
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovDegrees), aspect, c.Near, c.Far)
	return NewCameraProjector(view, proj, width, height)
}
