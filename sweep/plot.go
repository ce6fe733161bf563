// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotEnergies renders energy against sweep index and saves it to path.
// The image format follows the file extension (.png, .svg, .pdf, ...).
// Returns ErrNoPoints when points is empty.
func PlotEnergies(points []SweepEnergy, path string) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Sweep)
		xys[i].Y = p.Energy
	}

	p := plot.New()
	p.Title.Text = "Energy per sweep"
	p.X.Label.Text = "sweep"
	p.Y.Label.Text = "energy"
	p.Add(plotter.NewGrid())

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("sweep: plot: %w", err)
	}
	p.Add(line, scatter)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("sweep: plot: %w", err)
	}

	return nil
}
