package scene

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotResiduals saves a bar chart of each frame's distance from the triangulated point.
//
// labels and residuals must be the same length.
func PlotResiduals(filename string, labels []string, residuals []float64) error {
	if len(labels) != len(residuals) {
		return fmt.Errorf("%d labels for %d residuals", len(labels), len(residuals))
	}
	p := plot.New()
	p.Title.Text = "Triangulation residuals"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Distance to ray (m)"

	bars, err := plotter.NewBarChart(plotter.Values(residuals), vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
