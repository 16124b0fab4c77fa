package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a pipeline result as a one-page A4 report.
func WritePDF(out io.Writer, res *Result, title string) error {
	if title == "" {
		title = "Wooden I-Beam Failure Analysis"
	}
	s := res.Spec

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	heading("Input")
	row("Web height", fmt.Sprintf("%.4f in", s.WebHeight))
	row("Web thickness", fmt.Sprintf("%.4f in", s.WebThickness))
	row("Flange width", fmt.Sprintf("%.4f in", s.FlangeWidth))
	row("Flange thickness", fmt.Sprintf("%.4f in", s.FlangeThickness))
	row("Web / flange material", fmt.Sprintf("%s / %s", s.WebMaterial, s.FlangeMaterial))
	pdf.Ln(4)

	heading("Parameter check")
	if !res.Passed() {
		pdf.MultiCell(0, 6, "FAILED: "+res.Validation.Message, "", "L", false)
		return pdf.Output(out)
	}
	pdf.MultiCell(0, 6, "Beam is within competition parameters.", "", "L", false)
	pdf.Ln(4)

	r := res.Report
	heading("Section properties")
	row("Reference modulus", fmt.Sprintf("%.0f psi", r.Section.ReferenceModulus))
	row("Moment of inertia", fmt.Sprintf("%.6f in^4", r.Section.MomentOfInertia))
	row("Q at centroid / glue joint", fmt.Sprintf("%.6f / %.6f in^3", r.Section.CentroidalFirstMoment, r.Section.JointFirstMoment))
	pdf.Ln(4)

	heading("Failure loads")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Mode", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Load (lbf)", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, o := range r.Failures.Sorted() {
		load := "not reached"
		if o.Reached {
			load = fmt.Sprintf("%d", o.Load)
		}
		pdf.CellFormat(90, 7, o.Mode.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, load, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	heading("Result")
	if r.NoFailure {
		row("Dominant failure mode", fmt.Sprintf("none below %d lbf", r.Failures.LoadMax))
		row("Beam mass", fmt.Sprintf("%.2f lb", r.Mass))
		return pdf.Output(out)
	}
	row("Dominant failure mode", r.DominantMode.String())
	row("Failure load", fmt.Sprintf("%d lbf", r.DominantLoad))
	row("Largest failure delta", fmt.Sprintf("%.2f %%", r.FailureDeltaPercent))
	row("Beam mass", fmt.Sprintf("%.2f lb", r.Mass))
	row("Strength to weight ratio", fmt.Sprintf("%.2f", r.StrengthToWeight))
	row("Max deflection", fmt.Sprintf("%.3f in", r.MaxDeflection))
	if r.DeltaWarning {
		pdf.Ln(4)
		pdf.SetTextColor(200, 0, 0)
		pdf.MultiCell(0, 6, "Failure delta exceeds 20%: outside design range requirements.", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	return pdf.Output(out)
}

// ExportPDF writes the PDF report to a file, creating its directory.
func ExportPDF(res *Result, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WritePDF(f, res, ""); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
