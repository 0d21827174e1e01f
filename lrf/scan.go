package lrf

import (
	"math"

	"github.com/golang/geo/r2"
)

// RaySamples is a sparse scan result: hit points paired with the indices of
// the rays that produced them, in ascending ray order.
type RaySamples struct {
	Indices []int
	Points  []r2.Point
}

// Len returns the number of samples.
func (rs RaySamples) Len() int {
	return len(rs.Indices)
}

// Scan is a dense fused scan with one slot per ray. Invalid rays hold NaN
// points and object id -1.
type Scan struct {
	Points    []r2.Point
	ObjectIDs []int
}

// NewEmptyScan returns an all-invalid scan for a sensor with n rays.
func NewEmptyScan(n int) *Scan {
	pts := make([]r2.Point, n)
	ids := make([]int, n)
	for i := range pts {
		pts[i] = r2.Point{X: math.NaN(), Y: math.NaN()}
		ids[i] = -1
	}
	return &Scan{Points: pts, ObjectIDs: ids}
}

// Merge writes a sparse result into the scan under the given object
// ordinal. Rays already claimed by an earlier merge are overwritten, so the
// polygon merged last wins an overlap.
func (sc *Scan) Merge(samples RaySamples, objectID int) {
	for k, i := range samples.Indices {
		sc.Points[i] = samples.Points[k]
		sc.ObjectIDs[i] = objectID
	}
}

// IsValid reports whether ray i produced a measurement.
func (sc *Scan) IsValid(i int) bool {
	return sc.ObjectIDs[i] >= 0
}

// ValidCount returns the number of rays that produced a measurement.
func (sc *Scan) ValidCount() int {
	n := 0
	for i := range sc.ObjectIDs {
		if sc.IsValid(i) {
			n++
		}
	}
	return n
}

// Sparse returns the valid samples with their ray indices.
func (sc *Scan) Sparse() RaySamples {
	var out RaySamples
	for i := range sc.ObjectIDs {
		if !sc.IsValid(i) {
			continue
		}
		out.Indices = append(out.Indices, i)
		out.Points = append(out.Points, sc.Points[i])
	}
	return out
}

// OutputFormat selects the shape of a scan result.
type OutputFormat int

const (
	// FormatDense is one slot per ray with NaN gaps.
	FormatDense OutputFormat = iota
	// FormatSparse drops invalid rays and keeps the ray indices alongside.
	FormatSparse
)

// Output converts the scan into the requested result format: the *Scan
// itself for FormatDense, RaySamples for FormatSparse.
func (sc *Scan) Output(format OutputFormat) (interface{}, error) {
	switch format {
	case FormatDense:
		return sc, nil
	case FormatSparse:
		return sc.Sparse(), nil
	default:
		return nil, &UnsupportedOutputFormatError{Format: format}
	}
}
