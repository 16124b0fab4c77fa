package report

import (
	"math"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
	"github.com/alexiusacademia/gowib/internal/loading"
)

// DeltaLimit is the largest allowed spread (%) between the lowest and highest
// failure loads for a balanced design.
const DeltaLimit = 20.0

// Report holds the post-processed results of one beam
type Report struct {
	Spec     beam.Spec               `json:"spec"`
	Section  *beam.SectionProperties `json:"section"`
	Failures *failure.Record         `json:"failures"`

	// Governing failure. NoFailure is set when no mode fails within the
	// search range; the remaining figures are then zero.
	NoFailure    bool         `json:"no_failure"`
	DominantMode failure.Mode `json:"dominant_mode"`
	DominantLoad int          `json:"dominant_load"` // lbf
	HighestMode  failure.Mode `json:"highest_mode"`
	HighestLoad  int          `json:"highest_load"` // lbf

	FailureDeltaPercent float64 `json:"failure_delta_percent"`
	DeltaWarning        bool    `json:"delta_warning"`

	Mass             float64 `json:"mass"`               // lb
	StrengthToWeight float64 `json:"strength_to_weight"` // lbf / lb
	MaxDeflection    float64 `json:"max_deflection"`     // in, negative is downward
}

// Generate derives the dominant failure mode, failure delta, strength to
// weight ratio and deflection from a completed failure search.
func Generate(spec beam.Spec, section *beam.SectionProperties, rec *failure.Record, rig loading.Rig) *Report {
	r := &Report{
		Spec:     spec,
		Section:  section,
		Failures: rec,
		Mass:     round(section.Mass, 2),
	}

	reached := rec.Reached()
	if len(reached) == 0 {
		r.NoFailure = true
		return r
	}

	lowest := reached[0]
	highest := reached[len(reached)-1]
	r.DominantMode, r.DominantLoad = lowest.Mode, lowest.Load
	r.HighestMode, r.HighestLoad = highest.Mode, highest.Load

	a := float64(lowest.Load)
	b := float64(highest.Load)
	r.FailureDeltaPercent = round(100*math.Abs(a-b)/((a+b)/2), 2)
	r.DeltaWarning = r.FailureDeltaPercent > DeltaLimit

	r.StrengthToWeight = round(a/section.Mass, 2)
	r.MaxDeflection = round(rig.Deflection(a, section.ReferenceModulus, section.MomentOfInertia), 3)
	return r
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
