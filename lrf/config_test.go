package lrf

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	test.That(t, cfg.Validate(), test.ShouldBeNil)
	test.That(t, cfg.RayCount, test.ShouldEqual, 1081)
	test.That(t, cfg.FOVDegrees, test.ShouldAlmostEqual, 270.2)
	test.That(t, cfg.MinRange, test.ShouldAlmostEqual, 0.1)
	test.That(t, cfg.MaxRange, test.ShouldAlmostEqual, 30)
	test.That(t, cfg.NoiseStdDev, test.ShouldAlmostEqual, 0.03)
	test.That(t, cfg.AngularResolution(), test.ShouldAlmostEqual, 270.2/1080)
}

func TestConfigValidate(t *testing.T) {
	var ice *InvalidConfigurationError

	_, err := NewConfig(0, 90, 0.01, 0.1, 30)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)

	_, err = NewConfig(5, 361, 0.01, 0.1, 30)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)

	_, err = NewConfig(5, 90, -0.01, 0.1, 30)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)

	_, err = NewConfig(5, 90, 0.01, 30, 0.1)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)

	_, err = NewConfig(5, 90, 0.01, -1, 30)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)

	// all violations are reported together
	_, err = NewConfig(-1, 0, -1, 5, 1)
	test.That(t, errors.As(err, &ice), test.ShouldBeTrue)
	test.That(t, multierr.Errors(ice.Unwrap()), test.ShouldHaveLength, 4)

	cfg, err := NewConfig(5, 90, 0.01, 0.1, 30)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.RayCount, test.ShouldEqual, 5)
}

func TestConfigRayAngles(t *testing.T) {
	cfg := Config{RayCount: 3, FOVDegrees: 90, MinRange: 0.1, MaxRange: 30}
	angles := cfg.RayAngles()
	test.That(t, angles, test.ShouldHaveLength, 3)
	test.That(t, angles[0], test.ShouldAlmostEqual, -math.Pi/4)
	test.That(t, angles[1], test.ShouldAlmostEqual, 0)
	test.That(t, angles[2], test.ShouldAlmostEqual, math.Pi/4)
	test.That(t, cfg.AngularResolution(), test.ShouldAlmostEqual, 45)
	test.That(t, cfg.FOVRadians(), test.ShouldAlmostEqual, math.Pi/2)

	// a single ray looks straight ahead
	single := Config{RayCount: 1, FOVDegrees: 90, MinRange: 0.1, MaxRange: 30}
	test.That(t, single.RayAngles(), test.ShouldResemble, []float64{0})
	test.That(t, single.AngularResolution(), test.ShouldAlmostEqual, 0)
}
