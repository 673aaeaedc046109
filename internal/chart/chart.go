// Package chart renders the thickness comparison charts that accompany a
// report: a number line placing the effective thickness against its limits
// and a bar chart of the computed minimums.
package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"Pipecheck/internal/analysis"
)

var (
	redish   = color.RGBA{R: 200, A: 255}
	amberish = color.RGBA{R: 230, G: 160, A: 255}
	greenish = color.RGBA{G: 140, A: 255}
	steel    = color.RGBA{R: 70, G: 90, B: 120, A: 255}
)

// Comparison writes a bar chart of the pressure minimum, structural
// minimum, governing thickness and effective thickness.
func Comparison(path string, res *analysis.Result) error {
	p := plot.New()
	p.Title.Text = "Thickness Comparison"
	p.Y.Label.Text = "Thickness (in)"

	values := plotter.Values{res.PressureMin, res.StructuralMin, res.Governing, res.EffectiveThickness}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = steel
	p.Add(bars)
	p.NominalX("Pressure min", "Structural min", "Governing", "Effective")

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// NumberLine writes a one-axis plot locating the effective thickness
// relative to the pressure, structural and governing limits.
func NumberLine(path string, res *analysis.Result) error {
	p := plot.New()
	p.Title.Text = "Thickness Number Line"
	p.X.Label.Text = "Thickness (in)"
	p.HideY()
	p.Y.Min, p.Y.Max = -1, 1

	type mark struct {
		value float64
		label string
		col   color.RGBA
	}
	marks := []mark{
		{res.PressureMin, "pressure min", redish},
		{res.StructuralMin, "structural min", amberish},
		{res.Governing, "governing", redish},
		{res.EffectiveThickness, "effective", greenish},
	}

	xys := make(plotter.XYs, len(marks))
	labels := make([]string, len(marks))
	for i, m := range marks {
		xys[i] = plotter.XY{X: m.value, Y: 0}
		labels[i] = m.label
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Color = steel

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: offsetLabels(xys), Labels: labels})
	if err != nil {
		return err
	}

	p.Add(scatter, lbls)
	return p.Save(7*vg.Inch, 2.5*vg.Inch, path)
}

// offsetLabels staggers the label rows so close-together limits stay legible.
func offsetLabels(xys plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, len(xys))
	for i, xy := range xys {
		out[i] = plotter.XY{X: xy.X, Y: 0.15 + 0.2*float64(i%2)}
	}
	return out
}
