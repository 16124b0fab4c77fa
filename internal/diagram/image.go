package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
)

// ExportStressPlot plots stress/strength of every failure mode against load
// and marks the first failure load of each mode.
func ExportStressPlot(e failure.Evaluator, rec *failure.Record, maxLoad float64, filename string) error {
	if maxLoad <= 0 {
		return fmt.Errorf("plot range must be positive, got %.0f lbf", maxLoad)
	}

	p := plot.New()
	p.Title.Text = "Utilization vs Applied Load"
	p.X.Label.Text = "Load (lbf)"
	p.Y.Label.Text = "Stress / Strength (%)"
	p.Legend.Top = true
	p.Legend.Left = true

	const points = 200
	series := Utilization(e, maxLoad, points)
	for i, m := range failure.Modes {
		pts := make(plotter.XYs, points)
		for j := range pts {
			pts[j].X = maxLoad * float64(j) / float64(points-1)
			pts[j].Y = series[i][j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(m.String(), line)
	}

	// 100% utilization is failure
	limit, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 100}, {X: maxLoad, Y: 100}})
	if err != nil {
		return err
	}
	limit.LineStyle.Width = vg.Points(1)
	limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limit)

	var marks plotter.XYs
	var labels []string
	for _, o := range rec.Reached() {
		if float64(o.Load) > maxLoad {
			continue
		}
		marks = append(marks, plotter.XY{X: float64(o.Load), Y: 100})
		labels = append(labels, fmt.Sprintf("%d", o.Load))
	}
	if len(marks) > 0 {
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.Black
		scatter.GlyphStyle.Radius = vg.Points(3)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		l, err := plotter.NewLabels(plotter.XYLabels{XYs: marks, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSectionDiagram draws the I-section outline with the glue lines.
func ExportSectionDiagram(s beam.Spec, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Section"
	p.X.Label.Text = "Width (in)"
	p.Y.Label.Text = "Height (in)"

	h := s.Height()
	bf := s.FlangeWidth
	tf := s.FlangeThickness
	x0 := (bf - s.WebThickness) / 2
	x1 := x0 + s.WebThickness

	outline := plotter.XYs{
		{X: 0, Y: 0}, {X: bf, Y: 0}, {X: bf, Y: tf}, {X: x1, Y: tf},
		{X: x1, Y: h - tf}, {X: bf, Y: h - tf}, {X: bf, Y: h}, {X: 0, Y: h},
		{X: 0, Y: h - tf}, {X: x0, Y: h - tf}, {X: x0, Y: tf}, {X: 0, Y: tf},
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	poly.Color = color.RGBA{R: 222, G: 184, B: 135, A: 200}
	poly.LineStyle.Width = vg.Points(2)
	poly.LineStyle.Color = color.Black
	p.Add(poly)

	for _, y := range []float64{tf, h - tf} {
		glue, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
		if err != nil {
			return err
		}
		glue.LineStyle.Width = vg.Points(1.5)
		glue.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		glue.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(glue)
	}

	na, err := plotter.NewLine(plotter.XYs{{X: -0.25, Y: h / 2}, {X: bf + 0.25, Y: h / 2}})
	if err != nil {
		return err
	}
	na.LineStyle.Color = color.Gray{Y: 128}
	na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(na)

	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: bf + 0.3, Y: h / 2}, {X: bf + 0.3, Y: h - tf/2}, {X: x1 + 0.05, Y: h / 4}},
		Labels: []string{
			"N.A.",
			fmt.Sprintf("%s %.3fx%.3f", s.FlangeMaterial, bf, tf),
			fmt.Sprintf("%s %.3fx%.3f", s.WebMaterial, s.WebThickness, s.WebHeight),
		},
	})
	if err != nil {
		return err
	}
	p.Add(l)

	p.X.Min, p.X.Max = -0.5, bf+1.5
	p.Y.Min, p.Y.Max = -0.25, h+0.25

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot, choosing the format from the file extension
// (png, svg or pdf); anything else is saved as png.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
