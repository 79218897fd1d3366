package overlay

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testCamera() *CameraProjector {
	cam := Camera{
		Eye:        mgl64.Vec3{0, 0, -10},
		Target:     mgl64.Vec3{0, 0, 0},
		Up:         mgl64.Vec3{0, 1, 0},
		FovDegrees: 90,
		Near:       0.1,
		Far:        100,
	}
	return cam.Projector(100, 100)
}

func TestCameraProjectorCenter(t *testing.T) {
	p := testCamera()
	got, ok := p.Project(mgl64.Vec3{0, 0, 0})
	if !ok {
		t.Fatalf("target should be on screen")
	}
	if !got.ApproxEqualThreshold(mgl64.Vec2{50, 50}, 1e-6) {
		t.Fatalf("target projected to %v, want center", got)
	}

	above, ok := p.Project(mgl64.Vec3{0, 1, 0})
	if !ok {
		t.Fatalf("point above target should be on screen")
	}
	if above.Y() >= got.Y() {
		t.Fatalf("point above target should have a smaller screen y: %v vs %v", above, got)
	}
}

func TestCameraProjectorRejects(t *testing.T) {
	p := testCamera()
	cases := []struct {
		name  string
		point mgl64.Vec3
	}{
		{"behind", mgl64.Vec3{0, 0, -20}},
		{"outside_left_right", mgl64.Vec3{100, 0, 0}},
		{"outside_top_bottom", mgl64.Vec3{0, -100, 0}},
		{"beyond_far", mgl64.Vec3{0, 0, 500}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got, ok := p.Project(c.point); ok {
				t.Fatalf("expected %v to be off-screen, got %v", c.point, got)
			}
		})
	}
}

func TestCameraProjectorZeroSize(t *testing.T) {
	cam := Camera{Eye: mgl64.Vec3{0, 0, -10}, FovDegrees: 60, Near: 0.1, Far: 100}
	if _, ok := cam.Projector(0, 0).Project(mgl64.Vec3{}); ok {
		t.Fatalf("zero-size canvas should not project")
	}
	var nilProj *CameraProjector
	if _, ok := nilProj.Project(mgl64.Vec3{}); ok {
		t.Fatalf("nil projector should not project")
	}
}

func TestChaseCamera(t *testing.T) {
	viewer := mgl64.Vec3{10, 0, 10}
	cam := ChaseCamera(viewer, 12, 6, 70, 0.1, 500)
	if cam.Eye != (mgl64.Vec3{10, 6, -2}) {
		t.Fatalf("unexpected eye %v", cam.Eye)
	}
	p := cam.Projector(1280, 720)
	got, ok := p.Project(viewer)
	if !ok || math.Abs(got.X()-640) > 1e-6 || math.Abs(got.Y()-360) > 1e-6 {
		t.Fatalf("viewer projected to %v ok=%v, want screen center", got, ok)
	}
}

func TestRenderFrameWithCameraDropsBehind(t *testing.T) {
	r := NewMarkerRenderer(DefaultOptions(), testCamera())
	rec := &Recorder{}
	viewer := &Viewer{ID: 1, Position: mgl64.Vec3{0, 0, -10}}
	entities := []Entity{
		{ID: 2, Position: mgl64.Vec3{0, 0, 0}},
		{ID: 3, Position: mgl64.Vec3{0, 0, -30}},
	}
	r.RenderFrame(entities, viewer, rec)
	if len(rec.Commands) != 6 {
		t.Fatalf("expected only the visible member's 6 segments, got %d", len(rec.Commands))
	}
}
