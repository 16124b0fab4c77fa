package batch

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/material"
)

func writeInput(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save input: %v", err)
	}
}

func TestBatchRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "beams.xlsx")
	writeInput(t, in, [][]interface{}{
		{"name", "web height", "web thickness", "flange width", "flange thickness", "web mat", "flange mat"},
		{"example", 1.375, 0.25, 1.0625, 0.3125, 0, 1},
		{"too thin", 1.375, 0.1, 1.0625, 0.3125, "oak", "oak"},
		{},
		{"bad material", 1.375, 0.25, 1.0625, 0.3125, 0, 5},
		{"short row", 1.375},
	})

	items, err := ReadWorkbook(in)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items (blank row skipped), got %d", len(items))
	}
	if items[0].Spec.FlangeMaterial != material.Pine || items[0].Name != "example" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[2].Err == nil || items[3].Err == nil {
		t.Errorf("expected parse errors for rows %d and %d", items[2].Row, items[3].Row)
	}

	Evaluate(items, failure.DefaultOptions())
	if items[0].Err != nil || !items[0].Result.Passed() {
		t.Fatalf("example failed: %v", items[0].Err)
	}
	if items[1].Result == nil || items[1].Result.Passed() {
		t.Fatalf("expected thin web to be rejected")
	}

	out := filepath.Join(dir, "results.xlsx")
	if err := WriteWorkbook(out, items); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open results: %v", err)
	}
	defer f.Close()

	status, _ := f.GetCellValue("Results", "I2")
	if status != "pass" {
		t.Errorf("row 2 status: got %q", status)
	}
	mode, _ := f.GetCellValue("Results", "O2")
	if mode != "Web Shear Failure" {
		t.Errorf("row 2 dominant mode: got %q", mode)
	}
	rejected, _ := f.GetCellValue("Results", "I3")
	if !strings.HasPrefix(rejected, "rejected:") {
		t.Errorf("row 3 status: got %q", rejected)
	}
	bad, _ := f.GetCellValue("Results", "I4")
	if !strings.HasPrefix(bad, "error:") {
		t.Errorf("row 4 status: got %q", bad)
	}
}

func TestReadWorkbook_Empty(t *testing.T) {
	in := filepath.Join(t.TempDir(), "empty.xlsx")
	writeInput(t, in, [][]interface{}{{"name"}})
	if _, err := ReadWorkbook(in); err == nil {
		t.Error("expected error for header-only workbook")
	}
}
