package batch

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/report"
)

// Item is one beam of a batch: the source row, the parsed spec and the
// pipeline outcome. Err is set when the row could not be parsed or run.
type Item struct {
	Row    int
	Name   string
	Spec   beam.Spec
	Result *report.Result
	Err    error
}

// ReadWorkbook reads beam definitions from the first sheet of an .xlsx file.
// Row 1 is a header. Columns: name, web height, web thickness, flange width,
// flange thickness, web material, flange material.
func ReadWorkbook(path string) ([]Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no beam rows below the header", path)
	}

	var items []Item
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		item := Item{Row: i + 1}
		if len(row) < 7 {
			item.Err = fmt.Errorf("expected 7 columns, got %d", len(row))
			items = append(items, item)
			continue
		}
		item.Name = strings.TrimSpace(row[0])
		item.Spec, item.Err = beam.ParseSpec(row[1:7])
		items = append(items, item)
	}
	return items, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Evaluate runs the pipeline on every parsed item.
func Evaluate(items []Item, opts failure.Options) {
	for i := range items {
		if items[i].Err != nil {
			continue
		}
		items[i].Result, items[i].Err = report.Run(items[i].Spec, opts)
	}
}

var header = []interface{}{
	"Row", "Name", "Web Height (in)", "Web Thickness (in)", "Flange Width (in)", "Flange Thickness (in)",
	"Web Material", "Flange Material", "Status",
	"Web Bending (lbf)", "Flange Bending (lbf)", "Web Shear (lbf)", "Flange Shear (lbf)", "Glue Shear (lbf)",
	"Dominant Mode", "Dominant Load (lbf)", "Delta (%)", "Mass (lb)", "Strength/Weight", "Max Deflection (in)",
}

// WriteWorkbook writes one result row per item to a new .xlsx file.
func WriteWorkbook(path string, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}
	warn, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFE699"}}})
	if err != nil {
		return err
	}

	for i, item := range items {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		values := resultRow(item)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		if item.Result != nil && item.Result.Report != nil && item.Result.Report.DeltaWarning {
			end, _ := excelize.CoordinatesToCellName(len(header), rowNum)
			if err := f.SetCellStyle(sheet, cell, end, warn); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func resultRow(item Item) []interface{} {
	s := item.Spec
	row := []interface{}{item.Row, item.Name}
	if item.Err != nil {
		return append(row, "", "", "", "", "", "", "error: "+item.Err.Error())
	}
	row = append(row, s.WebHeight, s.WebThickness, s.FlangeWidth, s.FlangeThickness,
		s.WebMaterial.String(), s.FlangeMaterial.String())

	res := item.Result
	if !res.Passed() {
		return append(row, "rejected: "+res.Validation.Message)
	}
	r := res.Report
	row = append(row, "pass")
	for _, m := range failure.Modes {
		o := r.Failures.Get(m)
		if o.Reached {
			row = append(row, o.Load)
		} else {
			row = append(row, "not reached")
		}
	}
	if r.NoFailure {
		return append(row, "none", "", "", r.Mass)
	}
	return append(row, r.DominantMode.String(), r.DominantLoad, r.FailureDeltaPercent,
		r.Mass, r.StrengthToWeight, r.MaxDeflection)
}
