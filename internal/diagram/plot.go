// Package diagram renders shear force and bending moment diagrams, as
// PNG images for the web and PDF paths and as ASCII charts for the CLI.
package diagram

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"Girder/internal/statics"
)

// Kind selects which quantity of a force profile is drawn.
type Kind int

const (
	Shear Kind = iota
	Moment
)

func (k Kind) String() string {
	if k == Moment {
		return "Bending Moment Diagram"
	}
	return "Shear Force Diagram"
}

// style bundles the per-kind plot appearance: blue for shear, red for
// moment, each with a light fill of the same hue down to the zero axis.
func (k Kind) style() (yLabel string, line, fill color.Color) {
	if k == Moment {
		return "Moment (kNm)", color.RGBA{R: 239, G: 68, B: 68, A: 255}, color.RGBA{R: 239, G: 68, B: 68, A: 30}
	}
	return "Shear (kN)", color.RGBA{R: 59, G: 130, B: 246, A: 255}, color.RGBA{R: 59, G: 130, B: 246, A: 30}
}

func (k Kind) values(profile statics.ForceProfile) []float64 {
	if k == Moment {
		return profile.Moment
	}
	return profile.Shear
}

// RenderProfile draws one diagram from a sampled profile and returns the
// encoded PNG.
func RenderProfile(profile statics.ForceProfile, kind Kind) ([]byte, error) {
	p, err := buildPlot(profile, kind)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// SaveProfile draws one diagram straight to a file; the format follows
// the file extension.
func SaveProfile(profile statics.ForceProfile, kind Kind, filename string) error {
	p, err := buildPlot(profile, kind)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 5*vg.Inch, filename)
}

func buildPlot(profile statics.ForceProfile, kind Kind) (*plot.Plot, error) {
	if len(profile.Positions) == 0 {
		return nil, fmt.Errorf("%w: empty force profile", statics.ErrInvalidModel)
	}

	yLabel, lineColor, fillColor := kind.style()
	values := kind.values(profile)

	p := plot.New()
	p.Title.Text = kind.String()
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	// Filled area between the curve and the zero axis.
	area := make(plotter.XYs, 0, len(values)+2)
	area = append(area, plotter.XY{X: profile.Positions[0], Y: 0})
	for i, x := range profile.Positions {
		area = append(area, plotter.XY{X: x, Y: values[i]})
	}
	area = append(area, plotter.XY{X: profile.Positions[len(profile.Positions)-1], Y: 0})

	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	fill.Color = fillColor
	fill.LineStyle.Width = 0
	p.Add(fill)

	pts := make(plotter.XYs, len(values))
	for i, x := range profile.Positions {
		pts[i] = plotter.XY{X: x, Y: values[i]}
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = lineColor
	p.Add(curve)

	// Zero axis reference line.
	axis, err := plotter.NewLine(plotter.XYs{
		{X: profile.Positions[0], Y: 0},
		{X: profile.Positions[len(profile.Positions)-1], Y: 0},
	})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Color = color.Gray{Y: 96}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(axis)

	return p, nil
}
