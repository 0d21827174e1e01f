// Package lrf simulates 2D laser range finders scanning polygonal scenes.
package lrf

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/robosense/lrfsim/utils"
)

// Config holds the intrinsic ray geometry of a simulated laser range finder.
// Configs are plain values; derive a validated one through NewConfig or pass
// one to NewSensor, which validates on construction.
type Config struct {
	// RayCount is the number of angular samples per scan.
	RayCount int
	// FOVDegrees is the total field of view, centered on the forward axis.
	FOVDegrees float64
	// MinRange and MaxRange bound the reportable distance window.
	MinRange float64
	MaxRange float64
	// NoiseStdDev is the standard deviation of the additive Gaussian range
	// noise, in the same unit as the ranges.
	NoiseStdDev float64
}

// DefaultConfig mirrors a common commodity scanner: 1081 rays over 270.2
// degrees, 3cm noise, and a 0.1 to 30 meter window.
func DefaultConfig() Config {
	return Config{
		RayCount:    1081,
		FOVDegrees:  270.2,
		MinRange:    0.1,
		MaxRange:    30,
		NoiseStdDev: 0.03,
	}
}

// NewConfig builds and validates a config from explicit parameters.
func NewConfig(rayCount int, fovDegrees, noiseStdDev, minRange, maxRange float64) (Config, error) {
	cfg := Config{
		RayCount:    rayCount,
		FOVDegrees:  fovDegrees,
		MinRange:    minRange,
		MaxRange:    maxRange,
		NoiseStdDev: noiseStdDev,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports all violations together.
func (c Config) Validate() error {
	var err error
	if c.RayCount <= 0 {
		err = multierr.Append(err, errors.Errorf("ray count must be positive, got %d", c.RayCount))
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees > 360 {
		err = multierr.Append(err, errors.Errorf("field of view must be in (0, 360] degrees, got %g", c.FOVDegrees))
	}
	if c.NoiseStdDev < 0 {
		err = multierr.Append(err, errors.Errorf("noise standard deviation must be non-negative, got %g", c.NoiseStdDev))
	}
	if c.MinRange < 0 || c.MinRange >= c.MaxRange {
		err = multierr.Append(err, errors.Errorf("range interval [%g, %g] must satisfy 0 <= min < max", c.MinRange, c.MaxRange))
	}
	if err != nil {
		return &InvalidConfigurationError{Err: err}
	}
	return nil
}

// FOVRadians returns the field of view in radians.
func (c Config) FOVRadians() float64 {
	return utils.DegToRad(c.FOVDegrees)
}

// AngularResolution returns the angle between adjacent rays in degrees.
// A single-ray config has no angular step.
func (c Config) AngularResolution() float64 {
	if c.RayCount < 2 {
		return 0
	}
	return c.FOVDegrees / float64(c.RayCount-1)
}

// RayAngles returns the ray angles in radians, evenly spaced across the
// field of view and centered on the sensor's forward axis. A single ray
// looks straight ahead.
func (c Config) RayAngles() []float64 {
	if c.RayCount == 1 {
		return []float64{0}
	}
	half := c.FOVRadians() / 2
	return utils.Linspace(-half, half, c.RayCount)
}
