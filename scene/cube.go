package scene

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/robosense/lrfsim/spatialmath"
)

// Face ordinals of a cube group, in fusion order.
const (
	CubeFaceFront  = iota // +x
	CubeFaceBack          // -x
	CubeFaceLeft          // +y
	CubeFaceRight         // -y
	CubeFaceTop           // +z
	CubeFaceBottom        // -z
)

// NewCube builds the six faces of a cube centered at the given pose with
// the given side length, as a PolygonGroup with the ordinals above.
func NewCube(pose spatialmath.Pose, side float64) (*PolygonGroup, error) {
	if side <= 0 {
		return nil, errors.Errorf("cube side must be positive, got %g", side)
	}
	h := side / 2
	corners := pose.TransformPoints([]r3.Vector{
		{X: h, Y: h, Z: h},    // 0
		{X: h, Y: -h, Z: h},   // 1
		{X: h, Y: -h, Z: -h},  // 2
		{X: h, Y: h, Z: -h},   // 3
		{X: -h, Y: h, Z: h},   // 4
		{X: -h, Y: -h, Z: h},  // 5
		{X: -h, Y: -h, Z: -h}, // 6
		{X: -h, Y: h, Z: -h},  // 7
	})
	faces := [][4]int{
		{0, 1, 2, 3}, // front
		{4, 7, 6, 5}, // back
		{0, 3, 7, 4}, // left
		{1, 5, 6, 2}, // right
		{0, 4, 5, 1}, // top
		{3, 2, 6, 7}, // bottom
	}
	return NewPolygonGroup(corners, faces)
}
