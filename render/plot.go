// Package render draws scan results with gonum/plot. It is a consumer of
// the simulation output, not part of the geometry engine.
package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/robosense/lrfsim/lrf"
)

// ScanPlot builds a scatter plot of the valid points of a scan, with the
// sensor at the origin.
func ScanPlot(scan *lrf.Scan) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "lrf scan"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	samples := scan.Sparse()
	xys := make(plotter.XYs, samples.Len())
	for i, pt := range samples.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 196, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(1.5)

	origin, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}})
	if err != nil {
		return nil, err
	}
	origin.GlyphStyle.Color = color.RGBA{B: 196, A: 255}
	origin.GlyphStyle.Radius = vg.Points(3)

	p.Add(plotter.NewGrid(), scatter, origin)
	return p, nil
}

// SaveScanPNG renders the scan scatter to a PNG on disk, 6x6 inches.
func SaveScanPNG(scan *lrf.Scan, path string) error {
	p, err := ScanPlot(scan)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
