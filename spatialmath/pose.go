// Package spatialmath defines the rigid transforms, planes and planar
// polygons used by the range finder simulation.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Tolerance used for pose orthonormality checks and plane membership.
const floatEpsilon = 1e-6

// Pose is a rigid transform in 3D: an orthonormal rotation followed by a
// translation. Pose values are immutable; every operation returns a new Pose.
// The zero value behaves as the identity transform, but NewZeroPose should be
// preferred for clarity.
type Pose struct {
	rotation    *mat.Dense // 3x3 orthonormal
	translation r3.Vector
}

// NewZeroPose returns the identity transform.
func NewZeroPose() Pose {
	return Pose{rotation: eye3()}
}

// NewPose builds a pose from a 3x3 rotation matrix and a translation vector.
// The rotation must be orthonormal with determinant 1 within tolerance.
func NewPose(rotation mat.Matrix, translation r3.Vector) (Pose, error) {
	rows, cols := rotation.Dims()
	if rows != 3 || cols != 3 {
		return Pose{}, newInvalidPoseError("rotation must be 3x3, got %dx%d", rows, cols)
	}
	rot := mat.DenseCopyOf(rotation)
	if err := checkOrthonormal(rot); err != nil {
		return Pose{}, err
	}
	return Pose{rotation: rot, translation: translation}, nil
}

// NewPoseFromMatrix builds a pose from a homogeneous transform given as a
// 4x4 matrix with bottom row [0 0 0 1], or as a 3x4 matrix with the bottom
// row omitted. The top-left 3x3 block must be orthonormal.
func NewPoseFromMatrix(m mat.Matrix) (Pose, error) {
	rows, cols := m.Dims()
	if cols != 4 || (rows != 3 && rows != 4) {
		return Pose{}, newInvalidPoseError("transform must be 3x4 or 4x4, got %dx%d", rows, cols)
	}
	if rows == 4 {
		for j, want := range []float64{0, 0, 0, 1} {
			if math.Abs(m.At(3, j)-want) > floatEpsilon {
				return Pose{}, newInvalidPoseError("bottom row must be [0 0 0 1], got %g in column %d", m.At(3, j), j)
			}
		}
	}
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, m.At(i, j))
		}
	}
	return NewPose(rot, r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)})
}

// NewPoseFromAxisAngle builds a pose whose rotation is theta radians about
// the given axis. A zero axis yields the identity rotation.
func NewPoseFromAxisAngle(axis r3.Vector, theta float64, translation r3.Vector) Pose {
	if axis.Norm() == 0 {
		return Pose{rotation: eye3(), translation: translation}
	}
	a := axis.Normalize()
	m := mgl64.HomogRotate3D(theta, mgl64.Vec3{a.X, a.Y, a.Z})
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, m.At(i, j))
		}
	}
	return Pose{rotation: rot, translation: translation}
}

// Clone returns a deep copy of the pose.
func (p Pose) Clone() Pose {
	return Pose{rotation: mat.DenseCopyOf(p.rot()), translation: p.translation}
}

// Rotation returns a copy of the 3x3 rotation matrix.
func (p Pose) Rotation() *mat.Dense {
	return mat.DenseCopyOf(p.rot())
}

// Translation returns the translation vector.
func (p Pose) Translation() r3.Vector {
	return p.translation
}

// Matrix returns the pose as a 4x4 homogeneous transform.
func (p Pose) Matrix() *mat.Dense {
	rot := p.rot()
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, rot.At(i, j))
		}
	}
	m.Set(0, 3, p.translation.X)
	m.Set(1, 3, p.translation.Y)
	m.Set(2, 3, p.translation.Z)
	m.Set(3, 3, 1)
	return m
}

// Invert returns the inverse transform [R^T | -R^T t].
func (p Pose) Invert() Pose {
	rt := mat.NewDense(3, 3, nil)
	rt.Copy(p.rot().T())
	return Pose{rotation: rt, translation: rotateVec(rt, p.translation).Mul(-1)}
}

// TransformPoint applies the pose to a single point.
func (p Pose) TransformPoint(pt r3.Vector) r3.Vector {
	return rotateVec(p.rot(), pt).Add(p.translation)
}

// TransformPoints applies the pose to a batch of points by lifting them to
// homogeneous coordinates, multiplying by the 4x4 transform and
// dehomogenizing the result.
func (p Pose) TransformPoints(pts []r3.Vector) []r3.Vector {
	if len(pts) == 0 {
		return nil
	}
	h := mat.NewDense(4, len(pts), nil)
	for i, pt := range pts {
		h.Set(0, i, pt.X)
		h.Set(1, i, pt.Y)
		h.Set(2, i, pt.Z)
		h.Set(3, i, 1)
	}
	var out mat.Dense
	out.Mul(p.Matrix(), h)
	res := make([]r3.Vector, len(pts))
	for i := range res {
		w := out.At(3, i)
		res[i] = r3.Vector{X: out.At(0, i) / w, Y: out.At(1, i) / w, Z: out.At(2, i) / w}
	}
	return res
}

// TransformDirection rotates a direction vector into the pose's frame,
// ignoring the translation.
func (p Pose) TransformDirection(v r3.Vector) r3.Vector {
	return rotateVec(p.rot(), v)
}

// Compose returns the pose equivalent to applying b and then a.
func Compose(a, b Pose) Pose {
	var m mat.Dense
	m.Mul(a.Matrix(), b.Matrix())
	return poseFromHomog(&m)
}

// PoseBetween returns the pose of b relative to a, i.e. a^-1 * b.
func PoseBetween(a, b Pose) Pose {
	return Compose(a.Invert(), b)
}

// PoseBetweenInverse returns a * b^-1, the transform that takes b to a.
func PoseBetweenInverse(a, b Pose) Pose {
	return Compose(a, b.Invert())
}

// PoseAlmostEqual reports whether two poses agree element-wise within tol.
func PoseAlmostEqual(a, b Pose, tol float64) bool {
	return mat.EqualApprox(a.Matrix(), b.Matrix(), tol)
}

// poseFromHomog extracts a pose from a 4x4 transform without revalidating.
// Callers must pass a rigid transform.
func poseFromHomog(m mat.Matrix) Pose {
	rot := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot.Set(i, j, m.At(i, j))
		}
	}
	return Pose{rotation: rot, translation: r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)}}
}

// rot tolerates the zero-value Pose by substituting the identity rotation.
func (p Pose) rot() *mat.Dense {
	if p.rotation == nil {
		return eye3()
	}
	return p.rotation
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func rotateVec(r *mat.Dense, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: r.At(0, 0)*v.X + r.At(0, 1)*v.Y + r.At(0, 2)*v.Z,
		Y: r.At(1, 0)*v.X + r.At(1, 1)*v.Y + r.At(1, 2)*v.Z,
		Z: r.At(2, 0)*v.X + r.At(2, 1)*v.Y + r.At(2, 2)*v.Z,
	}
}

func checkOrthonormal(r *mat.Dense) error {
	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(rtr.At(i, j)-want) > floatEpsilon {
				return newInvalidPoseError("rotation is not orthonormal, R^T R deviates by %g at (%d,%d)",
					math.Abs(rtr.At(i, j)-want), i, j)
			}
		}
	}
	if det := mat.Det(r); math.Abs(det-1) > floatEpsilon {
		return newInvalidPoseError("rotation determinant is %g, want 1", det)
	}
	return nil
}
