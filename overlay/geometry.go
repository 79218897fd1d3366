package overlay

import "github.com/go-gl/mathgl/mgl64"

// Segment is a world-space line between two points.
type Segment struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// MarkerGeometry holds the world-space segments of one entity's marker for a
// single frame.
type MarkerGeometry struct {
	Cross  [2]Segment
	Square [4]Segment
}

// CrossHalfLength grows with distance so the cross keeps a readable size on
// screen.
func CrossHalfLength(distance, crossScale float64) float64 {
	return (distance / 2) * crossScale
}

// SquareHalfLength does not depend on distance. The cross does, and the two
// are kept inconsistent on purpose to match existing overlays.
func SquareHalfLength(squareScale float64) float64 {
	return squareScale
}

// BuildCross returns the vertical (Y) and horizontal (X) arms centered on
// center. Z stays at the center's value.
func BuildCross(center mgl64.Vec3, half float64) [2]Segment {
	x, y, z := center.Elem()
	return [2]Segment{
		{Start: mgl64.Vec3{x, y + half, z}, End: mgl64.Vec3{x, y - half, z}},
		{Start: mgl64.Vec3{x - half, y, z}, End: mgl64.Vec3{x + half, y, z}},
	}
}

// BuildSquare returns the four edges of a square lying in the ground (X/Z)
// plane at the center's height.
func BuildSquare(center mgl64.Vec3, half float64) [4]Segment {
	x, y, z := center.Elem()
	corners := [4]mgl64.Vec3{
		{x - half, y, z - half},
		{x + half, y, z - half},
		{x + half, y, z + half},
		{x - half, y, z + half},
	}
	var edges [4]Segment
	for i := range corners {
		edges[i] = Segment{Start: corners[i], End: corners[(i+1)%len(corners)]}
	}
	return edges
}

// BuildMarker computes the full marker for an entity at distance from the
// viewer.
func BuildMarker(center mgl64.Vec3, distance float64, opts Options) MarkerGeometry {
	return MarkerGeometry{
		Cross:  BuildCross(center, CrossHalfLength(distance, opts.CrossScale)),
		Square: BuildSquare(center, SquareHalfLength(opts.SquareScale)),
	}
}
