// SPDX-License-Identifier: MIT

package export

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/airfoil"
	"github.com/katalvlaran/bladegen/curve"
	"github.com/katalvlaran/bladegen/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default image size for PlotSection.
const (
	PlotWidth  = 12 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// SectionPlot samples the upper and lower boundaries of s at samples evenly
// spaced arguments on [0, 1] and returns a plot holding both as line-point
// series. The axes share one scale, so the section is not distorted.
//
// Errors:
//   - ErrTooFewSamples if samples < 2.
//   - Any error from plotutil.AddLinePoints.
func SectionPlot(s *airfoil.Section, samples int, title string) (*plot.Plot, error) {
	if samples < 2 {
		return nil, errors.Wrapf(ErrTooFewSamples, "samples=%d", samples)
	}

	ts := interp.Linspace(0, 1, samples)
	upper := sampleXYs(s.UpperCurve(), ts)
	lower := sampleXYs(s.LowerCurve(), ts)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "u"
	p.Y.Label.Text = "w"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p,
		LabelUpper, upper,
		LabelLower, lower,
	); err != nil {
		return nil, errors.Wrap(err, "adding section series")
	}
	equalAxes(p)

	return p, nil
}

// sampleXYs evaluates c at every argument in ts.
func sampleXYs(c curve.Curve, ts []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ts))
	for i, t := range ts {
		xys[i].X, xys[i].Y = c.At(t)
	}

	return xys
}

// PlotSection renders s with SectionPlot and saves it to path at
// PlotWidth × PlotHeight. The image format follows the path extension.
func PlotSection(s *airfoil.Section, samples int, path, title string) error {
	p, err := SectionPlot(s, samples, title)
	if err != nil {
		return err
	}
	if err = p.Save(PlotWidth, PlotHeight, path); err != nil {
		return errors.Wrapf(err, "saving section plot %s", path)
	}

	return nil
}

// equalAxes widens the narrower axis range so that one unit spans the same
// length on both axes of a PlotWidth × PlotHeight canvas.
func equalAxes(p *plot.Plot) {
	aspect := float64(PlotWidth / PlotHeight)
	dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	if dx <= 0 || dy <= 0 {
		return
	}
	if dx/dy > aspect {
		mid, half := (p.Y.Max+p.Y.Min)/2, dx/aspect/2
		p.Y.Min, p.Y.Max = mid-half, mid+half
	} else {
		mid, half := (p.X.Max+p.X.Min)/2, dy*aspect/2
		p.X.Min, p.X.Max = mid-half, mid+half
	}
}
