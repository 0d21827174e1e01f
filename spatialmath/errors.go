package spatialmath

import "fmt"

// InvalidPoseError is returned when a rotation matrix or homogeneous
// transform fails validation.
type InvalidPoseError struct {
	Reason string
}

func (e *InvalidPoseError) Error() string {
	return "invalid pose: " + e.Reason
}

func newInvalidPoseError(format string, args ...interface{}) error {
	return &InvalidPoseError{Reason: fmt.Sprintf(format, args...)}
}

// NotCoplanarError is returned when a point claimed to lie in a plane misses
// it by more than the membership tolerance.
type NotCoplanarError struct {
	Distance  float64
	Tolerance float64
}

func (e *NotCoplanarError) Error() string {
	return fmt.Sprintf("point is %g away from the plane, tolerance is %g", e.Distance, e.Tolerance)
}
