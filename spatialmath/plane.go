package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Plane is the z=0 plane of a pose's local frame lifted into the world. The
// pose's third rotation column is the plane normal and its first two columns
// span the plane, giving every plane an attached 2D coordinate frame.
type Plane struct {
	pose Pose
}

// NewPlane derives a plane from the given pose.
func NewPlane(pose Pose) Plane {
	return Plane{pose: pose}
}

// Pose returns the pose whose z=0 plane this is.
func (pl Plane) Pose() Pose {
	return pl.pose
}

// Normal returns the unit plane normal, the third column of the pose rotation.
func (pl Plane) Normal() r3.Vector {
	r := pl.pose.rot()
	return r3.Vector{X: r.At(0, 2), Y: r.At(1, 2), Z: r.At(2, 2)}
}

// Offset returns the signed term d of the plane equation n·x + d = 0.
func (pl Plane) Offset() float64 {
	return -pl.Normal().Dot(pl.pose.translation)
}

// Vector returns the homogeneous plane coordinates [n; d].
func (pl Plane) Vector() *mat.VecDense {
	n := pl.Normal()
	return mat.NewVecDense(4, []float64{n.X, n.Y, n.Z, pl.Offset()})
}

// DistanceTo returns the signed distance from a point to the plane.
func (pl Plane) DistanceTo(pt r3.Vector) float64 {
	return pl.Normal().Dot(pt.Sub(pl.pose.translation))
}

// TransformTo re-expresses the plane in the local coordinates of the given
// frame. Plane coordinates are dual to point coordinates: where points map
// out of a frame by its matrix, planes map into it by the matrix transpose.
func (pl Plane) TransformTo(frame Pose) *mat.VecDense {
	var v mat.VecDense
	v.MulVec(frame.Matrix().T(), pl.Vector())
	return &v
}

// ParamMatrix returns the 4x3 map from homogeneous in-plane coordinates
// [u v 1] to homogeneous world coordinates: the first two rotation columns
// and the translation of the plane's pose.
func (pl Plane) ParamMatrix() *mat.Dense {
	r := pl.pose.rot()
	t := pl.pose.translation
	return mat.NewDense(4, 3, []float64{
		r.At(0, 0), r.At(0, 1), t.X,
		r.At(1, 0), r.At(1, 1), t.Y,
		r.At(2, 0), r.At(2, 1), t.Z,
		0, 0, 1,
	})
}

// WorldToLocal projects world points into the plane's 2D frame. Every point
// must actually lie in the plane; a point further than the membership
// tolerance returns a NotCoplanarError rather than being clamped.
func (pl Plane) WorldToLocal(pts []r3.Vector) ([]r2.Point, error) {
	r := pl.pose.rot()
	ax := r3.Vector{X: r.At(0, 0), Y: r.At(1, 0), Z: r.At(2, 0)}
	ay := r3.Vector{X: r.At(0, 1), Y: r.At(1, 1), Z: r.At(2, 1)}
	out := make([]r2.Point, len(pts))
	for i, pt := range pts {
		if d := math.Abs(pl.DistanceTo(pt)); d > floatEpsilon {
			return nil, &NotCoplanarError{Distance: d, Tolerance: floatEpsilon}
		}
		rel := pt.Sub(pl.pose.translation)
		out[i] = r2.Point{X: ax.Dot(rel), Y: ay.Dot(rel)}
	}
	return out, nil
}

// LocalToWorld lifts in-plane 2D points back to world 3D via the
// parameterization matrix.
func (pl Plane) LocalToWorld(pts []r2.Point) []r3.Vector {
	if len(pts) == 0 {
		return nil
	}
	h := mat.NewDense(3, len(pts), nil)
	for i, pt := range pts {
		h.Set(0, i, pt.X)
		h.Set(1, i, pt.Y)
		h.Set(2, i, 1)
	}
	var out mat.Dense
	out.Mul(pl.ParamMatrix(), h)
	res := make([]r3.Vector, len(pts))
	for i := range res {
		w := out.At(3, i)
		res[i] = r3.Vector{X: out.At(0, i) / w, Y: out.At(1, i) / w, Z: out.At(2, i) / w}
	}
	return res
}
