package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Polygon is a planar quadrilateral, stored as four ordered vertices in the
// 2D frame of its supporting plane.
type Polygon struct {
	pose     Pose
	vertices [4]r2.Point
}

// NewPolygon builds a polygon from a plane frame pose and four ordered
// vertices in that frame.
func NewPolygon(pose Pose, vertices [4]r2.Point) Polygon {
	return Polygon{pose: pose, vertices: vertices}
}

// NewPolygonFromPoints builds a polygon from four ordered coplanar world
// points, deriving the local frame: origin at the first point, x axis toward
// the second, z axis normal to the triangle of the first three, y completing
// a right-handed frame. A fourth point off the plane is a NotCoplanarError.
func NewPolygonFromPoints(pts [4]r3.Vector) (Polygon, error) {
	edge := pts[1].Sub(pts[0])
	if edge.Norm() <= floatEpsilon {
		return Polygon{}, newInvalidPoseError("first two polygon points are coincident")
	}
	normal := edge.Cross(pts[2].Sub(pts[0]))
	if normal.Norm() <= floatEpsilon {
		return Polygon{}, newInvalidPoseError("first three polygon points are collinear")
	}
	xAxis := edge.Normalize()
	zAxis := normal.Normalize()
	yAxis := zAxis.Cross(xAxis)
	rot := mat.NewDense(3, 3, []float64{
		xAxis.X, yAxis.X, zAxis.X,
		xAxis.Y, yAxis.Y, zAxis.Y,
		xAxis.Z, yAxis.Z, zAxis.Z,
	})
	pose, err := NewPose(rot, pts[0])
	if err != nil {
		return Polygon{}, err
	}
	local, err := NewPlane(pose).WorldToLocal(pts[:])
	if err != nil {
		return Polygon{}, err
	}
	var vertices [4]r2.Point
	copy(vertices[:], local)
	return Polygon{pose: pose, vertices: vertices}, nil
}

// Pose returns the polygon's plane frame pose.
func (p Polygon) Pose() Pose {
	return p.pose
}

// Plane returns the polygon's supporting plane.
func (p Polygon) Plane() Plane {
	return NewPlane(p.pose)
}

// Vertices returns the four vertices in the plane's 2D frame.
func (p Polygon) Vertices() [4]r2.Point {
	return p.vertices
}

// Vertices3D reconstructs the vertices in world coordinates.
func (p Polygon) Vertices3D() [4]r3.Vector {
	var out [4]r3.Vector
	copy(out[:], p.Plane().LocalToWorld(p.vertices[:]))
	return out
}

// Centroid returns the mean of the world-space vertices.
func (p Polygon) Centroid() r3.Vector {
	var sum r3.Vector
	for _, v := range p.Vertices3D() {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / 4.0)
}

// Contains reports, for each query point in the plane's 2D frame, whether it
// lies inside the polygon. Points exactly on an edge count as inside. Output
// order matches input order.
func (p Polygon) Contains(points []r2.Point) []bool {
	out := make([]bool, len(points))
	for i, pt := range points {
		out[i] = p.contains(pt)
	}
	return out
}

// contains is an even-odd crossing test with an inclusive edge check.
func (p Polygon) contains(pt r2.Point) bool {
	inside := false
	for i := 0; i < 4; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%4]
		if onSegment(a, b, pt) {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, pt r2.Point) bool {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	if math.Abs(ab.Cross(ap)) > floatEpsilon {
		return false
	}
	dot := ap.Dot(ab)
	return dot >= -floatEpsilon && dot <= ab.Dot(ab)+floatEpsilon
}
