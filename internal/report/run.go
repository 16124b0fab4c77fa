package report

import (
	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/failure"
)

// Result is the outcome of one pipeline run. Exactly one of Validation and
// Report is set.
type Result struct {
	Spec       beam.Spec             `json:"spec"`
	Validation *beam.ValidationError `json:"validation,omitempty"`
	Report     *Report               `json:"report,omitempty"`
}

// Passed reports whether the beam met the geometric constraints.
func (r *Result) Passed() bool {
	return r.Validation == nil
}

// Run validates the beam and, when it passes, analyzes the section, searches
// for failure loads and builds the report. An unknown material is an error;
// a rejected geometry is a result.
func Run(spec beam.Spec, opts failure.Options) (*Result, error) {
	if err := spec.CheckMaterials(); err != nil {
		return nil, err
	}

	res := &Result{Spec: spec}
	if v := spec.Validate(); v != nil {
		res.Validation = v
		return res, nil
	}

	section, err := beam.Analyze(spec)
	if err != nil {
		return nil, err
	}
	if opts.Rig.Span == 0 {
		opts.Rig = failure.DefaultOptions().Rig
	}
	rec, err := failure.Search(spec, section, opts)
	if err != nil {
		return nil, err
	}

	res.Report = Generate(spec, section, rec, opts.Rig)
	return res, nil
}
