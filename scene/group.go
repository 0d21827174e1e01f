// Package scene provides scannable scene objects built from planar polygons.
package scene

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/robosense/lrfsim/lrf"
	"github.com/robosense/lrfsim/spatialmath"
)

// PolygonGroup is a scannable scene object: an ordered set of planar
// quadrilaterals built from a shared point set. Polygons are never shared
// across groups.
type PolygonGroup struct {
	polygons []spatialmath.Polygon
}

// NewPolygonGroup builds one polygon per face, where each face lists four
// ordered indices into points.
func NewPolygonGroup(points []r3.Vector, faces [][4]int) (*PolygonGroup, error) {
	polygons := make([]spatialmath.Polygon, 0, len(faces))
	for fi, face := range faces {
		var corners [4]r3.Vector
		for k, idx := range face {
			if idx < 0 || idx >= len(points) {
				return nil, errors.Errorf("face %d references point %d, have %d points", fi, idx, len(points))
			}
			corners[k] = points[idx]
		}
		poly, err := spatialmath.NewPolygonFromPoints(corners)
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", fi)
		}
		polygons = append(polygons, poly)
	}
	return &PolygonGroup{polygons: polygons}, nil
}

// NewPolygonGroupFromPolygons wraps already-built polygons in a group.
func NewPolygonGroupFromPolygons(polygons []spatialmath.Polygon) *PolygonGroup {
	return &PolygonGroup{polygons: polygons}
}

// Polygons returns the owned polygons in declaration order.
func (g *PolygonGroup) Polygons() []spatialmath.Polygon {
	return g.polygons
}

// GetScanBy implements lrf.Scannable. Every polygon is scanned
// independently and the sparse results are fused in declaration order, each
// stamped with its polygon's ordinal; on an overlapping ray the later
// polygon wins.
func (g *PolygonGroup) GetScanBy(sensor *lrf.Sensor) (*lrf.Scan, error) {
	scan := lrf.NewEmptyScan(sensor.Config().RayCount)
	for id, poly := range g.polygons {
		samples, err := sensor.ScanPolygon(poly)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", id)
		}
		scan.Merge(samples, id)
	}
	return scan, nil
}
