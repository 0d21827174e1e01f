package lrf

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/robosense/lrfsim/spatialmath"
)

// Device is a rig of laser range finders sharing one mounting pose. Each
// contained sensor's pose is relative to the device.
type Device struct {
	pose    spatialmath.Pose
	sensors []*Sensor
	logger  golog.Logger
}

// NewDevice builds a device from its world pose and its mounted sensors.
func NewDevice(pose spatialmath.Pose, sensors []*Sensor, logger golog.Logger) *Device {
	return &Device{pose: pose, sensors: sensors, logger: logger}
}

// Pose returns the device's world pose.
func (d *Device) Pose() spatialmath.Pose {
	return d.pose
}

// Sensors returns the mounted sensors in declaration order.
func (d *Device) Sensors() []*Sensor {
	return d.sensors
}

// Scan scans the target with every sensor in declaration order and returns
// one scan per sensor. Each sensor is re-based to the world through the
// device pose for its scan; the mounted sensors themselves are never
// modified, so an error on any path leaves nothing to restore.
func (d *Device) Scan(target interface{}) ([]*Scan, error) {
	scans := make([]*Scan, 0, len(d.sensors))
	for i, s := range d.sensors {
		scan, err := s.RebasedTo(d.pose).Scan(target)
		if err != nil {
			return nil, errors.Wrapf(err, "sensor %d", i)
		}
		d.logger.Debugf("sensor %d: %d/%d rays valid", i, scan.ValidCount(), len(scan.Points))
		scans = append(scans, scan)
	}
	return scans, nil
}
