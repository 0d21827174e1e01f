package lrf

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/robosense/lrfsim/spatialmath"
)

// Denominator magnitude below which a ray is treated as parallel to the
// target plane.
const parallelEps = 1e-12

// Sensor simulates a single planar laser range finder at a pose in the
// world. The scan plane is the z=0 plane of the sensor's local frame, with
// rays fanned about the local +x axis.
type Sensor struct {
	pose  spatialmath.Pose
	cfg   Config
	noise distuv.Normal
}

// NewSensor builds a sensor from a world pose and a config, drawing noise
// from an unseeded source.
func NewSensor(pose spatialmath.Pose, cfg Config) (*Sensor, error) {
	return newSensor(pose, cfg, nil)
}

// NewSeededSensor builds a sensor whose Gaussian noise stream is
// reproducible from the given seed.
func NewSeededSensor(pose spatialmath.Pose, cfg Config, seed uint64) (*Sensor, error) {
	return newSensor(pose, cfg, rand.NewSource(seed))
}

func newSensor(pose spatialmath.Pose, cfg Config, src rand.Source) (*Sensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sensor{
		pose:  pose,
		cfg:   cfg,
		noise: distuv.Normal{Mu: 0, Sigma: cfg.NoiseStdDev, Src: src},
	}, nil
}

// Pose returns the sensor's pose.
func (s *Sensor) Pose() spatialmath.Pose {
	return s.pose
}

// Config returns the sensor's configuration.
func (s *Sensor) Config() Config {
	return s.cfg
}

// RebasedTo returns a copy of the sensor whose pose is re-expressed under
// the given parent frame. The receiver is unchanged; the copy shares the
// receiver's noise stream.
func (s *Sensor) RebasedTo(parent spatialmath.Pose) *Sensor {
	return &Sensor{pose: spatialmath.Compose(parent, s.pose), cfg: s.cfg, noise: s.noise}
}

// RayDirections returns the unit direction of each ray in the sensor's
// local scan plane.
func (s *Sensor) RayDirections() []r2.Point {
	angles := s.cfg.RayAngles()
	dirs := make([]r2.Point, len(angles))
	for i, a := range angles {
		dirs[i] = r2.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	return dirs
}

// RayLines returns each ray as a homogeneous 2D line through the sensor
// origin: [-sin a, cos a, 0] for a ray at angle a.
func (s *Sensor) RayLines() []*mat.VecDense {
	angles := s.cfg.RayAngles()
	lines := make([]*mat.VecDense, len(angles))
	for i, a := range angles {
		lines[i] = mat.NewVecDense(3, []float64{-math.Sin(a), math.Cos(a), 0})
	}
	return lines
}

// WorldRayDirections returns the ray directions rotated into the world frame.
func (s *Sensor) WorldRayDirections() []r3.Vector {
	dirs := s.RayDirections()
	out := make([]r3.Vector, len(dirs))
	for i, d := range dirs {
		out[i] = s.pose.TransformDirection(r3.Vector{X: d.X, Y: d.Y})
	}
	return out
}

// ScanPlane intersects every ray with the given world plane and returns the
// noise-free range per ray. A ray parametrized as rho*v meets the plane
// n·x + d = 0 at rho = -d / (n·v); the z component of v is zero because the
// scan plane is the sensor's local z=0 plane. Rays parallel to the plane,
// intersecting behind the sensor, or landing outside the range window come
// back as NaN, never as an error.
func (s *Sensor) ScanPlane(pl spatialmath.Plane) []float64 {
	local := pl.TransformTo(s.pose)
	nx, ny, d := local.AtVec(0), local.AtVec(1), local.AtVec(3)
	dirs := s.RayDirections()
	ranges := make([]float64, len(dirs))
	for i, v := range dirs {
		den := nx*v.X + ny*v.Y
		if math.Abs(den) < parallelEps {
			ranges[i] = math.NaN()
			continue
		}
		rho := -d / den
		if rho <= 0 || rho < s.cfg.MinRange || rho > s.cfg.MaxRange {
			rho = math.NaN()
		}
		ranges[i] = rho
	}
	return ranges
}

// ScanPolygon casts the sensor's rays at the polygon and returns the noisy
// hits, sparse over ray indices. Containment against the polygon is decided
// on the noise-free geometry, so noise perturbs the reported range without
// changing which surface point was struck.
func (s *Sensor) ScanPolygon(poly spatialmath.Polygon) (RaySamples, error) {
	pl := poly.Plane()
	raw := s.ScanPlane(pl)
	dirs := s.RayDirections()

	// gather the gated rays and their exact hit points
	candidates := make([]int, 0, len(raw))
	localHits := make([]r3.Vector, 0, len(raw))
	for i, rho := range raw {
		if math.IsNaN(rho) {
			continue
		}
		candidates = append(candidates, i)
		localHits = append(localHits, r3.Vector{X: rho * dirs[i].X, Y: rho * dirs[i].Y})
	}
	if len(candidates) == 0 {
		return RaySamples{}, nil
	}

	inPlane, err := pl.WorldToLocal(s.pose.TransformPoints(localHits))
	if err != nil {
		return RaySamples{}, err
	}
	mask := poly.Contains(inPlane)

	noisy := s.perturb(raw)
	var out RaySamples
	for k, i := range candidates {
		if !mask[k] {
			continue
		}
		rho := noisy[i]
		out.Indices = append(out.Indices, i)
		out.Points = append(out.Points, r2.Point{X: rho * dirs[i].X, Y: rho * dirs[i].Y})
	}
	return out, nil
}

// Scan scans a scene object with this sensor. The target must implement
// Scannable; anything else is a capability error.
func (s *Sensor) Scan(target interface{}) (*Scan, error) {
	sc, ok := target.(Scannable)
	if !ok {
		return nil, &ScanTargetCapabilityError{Target: target}
	}
	return sc.GetScanBy(s)
}

// perturb adds the sensor's Gaussian range noise to each valid sample.
func (s *Sensor) perturb(ranges []float64) []float64 {
	out := make([]float64, len(ranges))
	copy(out, ranges)
	if s.cfg.NoiseStdDev == 0 {
		return out
	}
	for i, rho := range out {
		if math.IsNaN(rho) {
			continue
		}
		out[i] = rho + s.noise.Rand()
	}
	return out
}
