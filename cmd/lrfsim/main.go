// Command lrfsim scans a demo cube scene with a two-sensor device and
// prints a summary of the result.
package main

import (
	"flag"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/robosense/lrfsim/lrf"
	"github.com/robosense/lrfsim/render"
	"github.com/robosense/lrfsim/scene"
	"github.com/robosense/lrfsim/spatialmath"
)

var logger = golog.NewDevelopmentLogger("lrfsim")

func main() {
	seed := flag.Uint64("seed", 42, "noise seed")
	side := flag.Float64("side", 1, "cube side length in meters")
	out := flag.String("out", "", "optional PNG path for the first sensor's scan")
	flag.Parse()

	if err := runScan(*seed, *side, *out, logger); err != nil {
		logger.Fatal(err)
	}
}

func runScan(seed uint64, side float64, out string, logger golog.Logger) error {
	cube, err := scene.NewCube(spatialmath.NewZeroPose(), side)
	if err != nil {
		return err
	}

	cfg := lrf.DefaultConfig()
	straight, err := lrf.NewSeededSensor(spatialmath.NewZeroPose(), cfg, seed)
	if err != nil {
		return err
	}
	tilted, err := lrf.NewSeededSensor(
		spatialmath.NewPoseFromAxisAngle(r3.Vector{Z: 1}, 0.2, r3.Vector{Y: 0.1}), cfg, seed+1)
	if err != nil {
		return err
	}

	devicePose := spatialmath.NewPoseFromAxisAngle(r3.Vector{}, 0, r3.Vector{X: -2 - side/2})
	device := lrf.NewDevice(devicePose, []*lrf.Sensor{straight, tilted}, logger)

	scans, err := device.Scan(cube)
	if err != nil {
		return err
	}
	for i, scan := range scans {
		logger.Infow("scan complete", "sensor", i, "valid", scan.ValidCount(), "rays", len(scan.Points))
	}

	if out != "" {
		if err := render.SaveScanPNG(scans[0], out); err != nil {
			return err
		}
		logger.Infow("wrote scan plot", "path", out)
	}
	return nil
}
