package scene

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/robosense/lrfsim/lrf"
	"github.com/robosense/lrfsim/spatialmath"
)

func testLogger(t *testing.T) golog.Logger {
	t.Helper()
	return golog.NewTestLogger(t)
}

// squareFacingX returns a square of the given half-width in the plane x=d,
// centered on the world x axis.
func squareFacingX(t *testing.T, d, half float64) spatialmath.Polygon {
	t.Helper()
	poly, err := spatialmath.NewPolygonFromPoints([4]r3.Vector{
		{X: d, Y: -half, Z: -half},
		{X: d, Y: half, Z: -half},
		{X: d, Y: half, Z: half},
		{X: d, Y: -half, Z: half},
	})
	test.That(t, err, test.ShouldBeNil)
	return poly
}

func TestNewPolygonGroup(t *testing.T) {
	points := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 5}, // off the z=0 plane
	}

	group, err := NewPolygonGroup(points, [][4]int{{0, 1, 2, 3}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, group.Polygons(), test.ShouldHaveLength, 1)

	// out-of-range vertex index
	_, err = NewPolygonGroup(points, [][4]int{{0, 1, 2, 9}})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "face 0")

	// non-coplanar face
	_, err = NewPolygonGroup(points, [][4]int{{0, 1, 2, 4}})
	test.That(t, err, test.ShouldNotBeNil)
	var nce *spatialmath.NotCoplanarError
	test.That(t, errors.As(err, &nce), test.ShouldBeTrue)
}

// The scenario from the simulator's acceptance checklist: a unit cube with
// corners at the origin and (1,1,1), watched from 2m in front of its x=0
// face by a 5-ray, 90 degree sensor. Only the central ray lands on the
// face; its range is 2 up to noise.
func TestScanUnitCube(t *testing.T) {
	cube, err := NewCube(
		spatialmath.NewPoseFromAxisAngle(r3.Vector{}, 0, r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}), 1)
	test.That(t, err, test.ShouldBeNil)

	cfg := lrf.Config{RayCount: 5, FOVDegrees: 90, MinRange: 0.1, MaxRange: 30, NoiseStdDev: 0.03}
	sensorPose := spatialmath.NewPoseFromAxisAngle(r3.Vector{}, 0, r3.Vector{X: -2, Y: 0.5, Z: 0.5})
	sensor, err := lrf.NewSeededSensor(sensorPose, cfg, 1)
	test.That(t, err, test.ShouldBeNil)

	scan, err := sensor.Scan(cube)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scan.Points, test.ShouldHaveLength, 5)
	test.That(t, scan.ValidCount(), test.ShouldEqual, 1)

	for i := range scan.Points {
		if i == 2 {
			continue
		}
		test.That(t, scan.IsValid(i), test.ShouldBeFalse)
		test.That(t, math.IsNaN(scan.Points[i].X), test.ShouldBeTrue)
	}

	// the forward ray reports the x=0 face at distance 2, within 5 sigma
	test.That(t, scan.IsValid(2), test.ShouldBeTrue)
	test.That(t, scan.ObjectIDs[2], test.ShouldEqual, CubeFaceBack)
	test.That(t, math.Abs(scan.Points[2].X-2), test.ShouldBeLessThan, 5*cfg.NoiseStdDev)
	test.That(t, scan.Points[2].Y, test.ShouldAlmostEqual, 0, 1e-9)
}

func TestOverlapLastPolygonWins(t *testing.T) {
	near := squareFacingX(t, 2, 10)
	far := squareFacingX(t, 3, 10)
	group := NewPolygonGroupFromPolygons([]spatialmath.Polygon{near, far})

	cfg := lrf.Config{RayCount: 5, FOVDegrees: 90, MinRange: 0.1, MaxRange: 30, NoiseStdDev: 0.03}
	sensor, err := lrf.NewSeededSensor(spatialmath.NewZeroPose(), cfg, 3)
	test.That(t, err, test.ShouldBeNil)

	first, err := group.GetScanBy(sensor)
	test.That(t, err, test.ShouldBeNil)
	second, err := group.GetScanBy(sensor)
	test.That(t, err, test.ShouldBeNil)

	// every ray hits both squares; the later polygon claims them all, and
	// it does so identically on every scan regardless of noise
	for i := range first.ObjectIDs {
		test.That(t, first.ObjectIDs[i], test.ShouldEqual, 1)
	}
	test.That(t, second.ObjectIDs, test.ShouldResemble, first.ObjectIDs)

	// the winner is the far square, so the forward ray reads about 3
	test.That(t, math.Abs(first.Points[2].X-3), test.ShouldBeLessThan, 5*cfg.NoiseStdDev)
}

func TestGroupScanThroughDevice(t *testing.T) {
	wall := NewPolygonGroupFromPolygons([]spatialmath.Polygon{squareFacingX(t, 4, 10)})

	cfg := lrf.Config{RayCount: 3, FOVDegrees: 90, MinRange: 0.1, MaxRange: 30}
	forward, err := lrf.NewSensor(spatialmath.NewZeroPose(), cfg)
	test.That(t, err, test.ShouldBeNil)
	backward, err := lrf.NewSensor(
		spatialmath.NewPoseFromAxisAngle(r3.Vector{Z: 1}, math.Pi, r3.Vector{}), cfg)
	test.That(t, err, test.ShouldBeNil)

	devicePose := spatialmath.NewPoseFromAxisAngle(r3.Vector{}, 0, r3.Vector{X: 1})
	device := lrf.NewDevice(devicePose, []*lrf.Sensor{forward, backward}, testLogger(t))

	scans, err := device.Scan(wall)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scans, test.ShouldHaveLength, 2)

	// the forward sensor sees the wall 3m ahead, the reversed one sees nothing
	test.That(t, scans[0].IsValid(1), test.ShouldBeTrue)
	test.That(t, scans[0].Points[1].X, test.ShouldAlmostEqual, 3, 1e-9)
	test.That(t, scans[1].ValidCount(), test.ShouldEqual, 0)
}
