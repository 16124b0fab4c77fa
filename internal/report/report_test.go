package report

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/loading"
	"github.com/alexiusacademia/gowib/internal/material"
)

var example = beam.Spec{
	WebHeight:       1.375,
	WebThickness:    0.25,
	FlangeWidth:     1.0625,
	FlangeThickness: 0.3125,
	WebMaterial:     material.Oak,
	FlangeMaterial:  material.Pine,
}

func runExample(t *testing.T) *Result {
	t.Helper()
	res, err := Run(example, failure.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Passed() {
		t.Fatalf("example rejected: %v", res.Validation)
	}
	return res
}

func TestRun_Example(t *testing.T) {
	r := runExample(t).Report

	if r.NoFailure {
		t.Fatal("expected failure within range")
	}
	if r.DominantMode != failure.WebShear {
		t.Errorf("dominant mode: got %v, want %v", r.DominantMode, failure.WebShear)
	}
	for _, o := range r.Failures.Outcomes {
		if !o.Reached {
			t.Errorf("%v not reached", o.Mode)
		}
		if o.Load < r.DominantLoad || o.Load > r.HighestLoad {
			t.Errorf("%v load %d outside [%d, %d]", o.Mode, o.Load, r.DominantLoad, r.HighestLoad)
		}
	}

	if r.Mass != 0.35 {
		t.Errorf("mass: got %v, want 0.35", r.Mass)
	}
	wantSW := math.Round(float64(r.DominantLoad)/r.Section.Mass*100) / 100
	if r.StrengthToWeight != wantSW {
		t.Errorf("strength to weight: got %v, want %v", r.StrengthToWeight, wantSW)
	}

	a, b := float64(r.DominantLoad), float64(r.HighestLoad)
	wantDelta := math.Round(100*math.Abs(a-b)/((a+b)/2)*100) / 100
	if r.FailureDeltaPercent != wantDelta {
		t.Errorf("delta: got %v, want %v", r.FailureDeltaPercent, wantDelta)
	}
	if !r.DeltaWarning {
		t.Errorf("expected delta warning for %.2f%%", r.FailureDeltaPercent)
	}
	if r.MaxDeflection >= 0 {
		t.Errorf("expected downward deflection, got %v", r.MaxDeflection)
	}
}

func TestRun_ExampleFigures(t *testing.T) {
	r := runExample(t).Report

	if r.DominantLoad != 1598 || r.HighestLoad != 23051 {
		t.Errorf("loads: got dominant %d highest %d, want 1598 and 23051", r.DominantLoad, r.HighestLoad)
	}
	if r.HighestMode != failure.FlangeShear {
		t.Errorf("highest mode: got %v, want %v", r.HighestMode, failure.FlangeShear)
	}
	if r.FailureDeltaPercent != 174.07 {
		t.Errorf("delta: got %v, want 174.07", r.FailureDeltaPercent)
	}
	if r.StrengthToWeight != 4553.52 {
		t.Errorf("strength to weight: got %v, want 4553.52", r.StrengthToWeight)
	}
	if r.MaxDeflection != -0.301 {
		t.Errorf("deflection: got %v, want -0.301", r.MaxDeflection)
	}
}

func TestRun_Deterministic(t *testing.T) {
	first := runExample(t)
	second := runExample(t)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input produced different results")
	}
}

func TestRun_Rejected(t *testing.T) {
	s := example
	s.WebThickness = 0.1
	res, err := Run(s, failure.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Passed() || res.Report != nil {
		t.Fatalf("expected rejection without report, got %+v", res)
	}
	if res.Validation.Rule != beam.RuleMinimumStock {
		t.Errorf("expected minimum stock rule, got %s", res.Validation.Rule)
	}
}

func TestRun_InvalidMaterial(t *testing.T) {
	s := example
	s.WebMaterial = 4
	_, err := Run(s, failure.DefaultOptions())
	var invalid *material.InvalidMaterialError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidMaterialError, got %v", err)
	}
}

func section(t *testing.T) *beam.SectionProperties {
	t.Helper()
	p, err := beam.Analyze(example)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return p
}

func record(loads map[failure.Mode]int) *failure.Record {
	rec := &failure.Record{Outcomes: make([]failure.Outcome, len(failure.Modes)), LoadMax: failure.DefaultLoadMax}
	for _, m := range failure.Modes {
		rec.Outcomes[m].Mode = m
		if load, ok := loads[m]; ok {
			rec.Outcomes[m].Load = load
			rec.Outcomes[m].Reached = true
		}
	}
	return rec
}

func TestGenerate_WithinDesignRange(t *testing.T) {
	rec := record(map[failure.Mode]int{
		failure.WebBending:    1050,
		failure.FlangeBending: 1000,
		failure.WebShear:      1100,
		failure.FlangeShear:   1190,
		failure.GlueShear:     1150,
	})
	r := Generate(example, section(t), rec, loading.StandardRig)

	if r.DominantMode != failure.FlangeBending || r.DominantLoad != 1000 {
		t.Errorf("dominant: got %v at %d", r.DominantMode, r.DominantLoad)
	}
	if r.HighestMode != failure.FlangeShear || r.HighestLoad != 1190 {
		t.Errorf("highest: got %v at %d", r.HighestMode, r.HighestLoad)
	}
	if r.FailureDeltaPercent != 17.35 {
		t.Errorf("delta: got %v, want 17.35", r.FailureDeltaPercent)
	}
	if r.DeltaWarning {
		t.Error("unexpected delta warning")
	}
}

func TestGenerate_ExcludesUnreachedModes(t *testing.T) {
	rec := record(map[failure.Mode]int{
		failure.WebShear:   2000,
		failure.WebBending: 2100,
	})
	r := Generate(example, section(t), rec, loading.StandardRig)

	if r.DominantMode != failure.WebShear || r.DominantLoad != 2000 {
		t.Errorf("dominant: got %v at %d", r.DominantMode, r.DominantLoad)
	}
	if r.HighestLoad != 2100 {
		t.Errorf("highest load: got %d, want 2100", r.HighestLoad)
	}
	if r.FailureDeltaPercent != 4.88 {
		t.Errorf("delta: got %v, want 4.88", r.FailureDeltaPercent)
	}
	if r.StrengthToWeight <= 0 {
		t.Errorf("strength to weight should use the real failure load, got %v", r.StrengthToWeight)
	}
}

func TestGenerate_NoFailure(t *testing.T) {
	r := Generate(example, section(t), record(nil), loading.StandardRig)
	if !r.NoFailure {
		t.Fatal("expected NoFailure")
	}
	if r.FailureDeltaPercent != 0 || r.StrengthToWeight != 0 || r.MaxDeflection != 0 || r.DeltaWarning {
		t.Errorf("expected zero figures, got %+v", r)
	}
	if r.Mass != 0.35 {
		t.Errorf("mass should still be reported, got %v", r.Mass)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, runExample(t))
	out := buf.String()
	for _, want := range []string{
		"Beam is within competition parameters!",
		"Flange fails first at",
		"Glue fails in shear at",
		"Dominant failure mode:",
		"Web Shear Failure",
		"outside design range requirements",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteText_Rejected(t *testing.T) {
	s := example
	s.FlangeWidth = 2.5
	res, err := Run(s, failure.DefaultOptions())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var buf bytes.Buffer
	WriteText(&buf, res)
	out := buf.String()
	if !strings.Contains(out, "Beam width exceeds 2 in maximum.") {
		t.Errorf("missing rejection reason:\n%s", out)
	}
	if strings.Contains(out, "RESULT:") {
		t.Error("rejected beam should not print results")
	}
}

func TestExportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "beam.pdf")
	if err := ExportPDF(runExample(t), path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}
}
