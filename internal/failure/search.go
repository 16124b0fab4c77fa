package failure

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/loading"
)

// DefaultLoadMax is the exclusive upper bound of the load search (lbf).
const DefaultLoadMax = 5000000

// Method selects how the first failing load is located.
type Method string

const (
	// MethodSweep steps through every integer load from 0 to LoadMax-1.
	MethodSweep Method = "sweep"
	// MethodBisect binary-searches the same integer range. Because every
	// stress is non-decreasing in load it finds the same first load.
	MethodBisect Method = "bisect"
)

// ParseMethod converts a flag value into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSweep, MethodBisect:
		return Method(s), nil
	case "":
		return MethodBisect, nil
	}
	return "", fmt.Errorf("unknown search method %q (use sweep or bisect)", s)
}

// Options controls the failure search.
type Options struct {
	LoadMax    int
	Method     Method
	Concurrent bool // run the bending and shear searches in parallel
	Rig        loading.Rig
}

// DefaultOptions returns the competition search settings.
func DefaultOptions() Options {
	return Options{
		LoadMax: DefaultLoadMax,
		Method:  MethodBisect,
		Rig:     loading.StandardRig,
	}
}

// Outcome is the first load (lbf) at which a mode's stress exceeds its
// strength. Reached is false when the whole search range passed without
// failure; Load is then meaningless.
type Outcome struct {
	Mode    Mode `json:"mode"`
	Load    int  `json:"load"`
	Reached bool `json:"reached"`
}

// Record holds the outcome of every failure mode for one beam.
type Record struct {
	Outcomes []Outcome `json:"outcomes"` // indexed by Mode
	LoadMax  int       `json:"load_max"`
	Method   Method    `json:"method"`
}

// Get returns the outcome for a mode.
func (r *Record) Get(m Mode) Outcome {
	return r.Outcomes[m]
}

// Reached returns the modes that fail within the search range, sorted by
// failure load. Equal loads keep mode order.
func (r *Record) Reached() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Reached {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Load < out[j].Load })
	return out
}

// Sorted returns every outcome: reached modes by ascending load, followed by
// the modes that were not reached.
func (r *Record) Sorted() []Outcome {
	out := r.Reached()
	for _, o := range r.Outcomes {
		if !o.Reached {
			out = append(out, o)
		}
	}
	return out
}

// Search finds the failure load of every mode.
func Search(spec beam.Spec, section *beam.SectionProperties, opts Options) (*Record, error) {
	if opts.LoadMax <= 0 {
		return nil, fmt.Errorf("load range must be positive, got %d", opts.LoadMax)
	}
	if opts.Rig.Span == 0 {
		opts.Rig = loading.StandardRig
	}
	method, err := ParseMethod(string(opts.Method))
	if err != nil {
		return nil, err
	}

	e := Evaluator{Section: section, Spec: spec, Rig: opts.Rig}
	find := bisect
	if method == MethodSweep {
		find = sweep
	}

	var bending, shear []Outcome
	if opts.Concurrent {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			bending = find(e.bendingCriteria(), opts.LoadMax)
		}()
		go func() {
			defer wg.Done()
			shear = find(e.shearCriteria(), opts.LoadMax)
		}()
		wg.Wait()
	} else {
		bending = find(e.bendingCriteria(), opts.LoadMax)
		shear = find(e.shearCriteria(), opts.LoadMax)
	}

	rec := &Record{
		Outcomes: make([]Outcome, len(Modes)),
		LoadMax:  opts.LoadMax,
		Method:   method,
	}
	for _, o := range append(bending, shear...) {
		rec.Outcomes[o.Mode] = o
	}
	return rec, nil
}

// sweep scans every load once, latching each criterion at its first
// exceedance.
func sweep(criteria []criterion, loadMax int) []Outcome {
	out := make([]Outcome, len(criteria))
	for i, c := range criteria {
		out[i].Mode = c.mode
	}
	pending := len(criteria)
	for x := 0; x < loadMax && pending > 0; x++ {
		for i, c := range criteria {
			if !out[i].Reached && c.exceeded(x) {
				out[i].Load = x
				out[i].Reached = true
				pending--
			}
		}
	}
	return out
}

// bisect finds the smallest failing load of each criterion by binary search.
func bisect(criteria []criterion, loadMax int) []Outcome {
	out := make([]Outcome, len(criteria))
	for i, c := range criteria {
		x := sort.Search(loadMax, c.exceeded)
		out[i] = Outcome{Mode: c.mode, Load: x, Reached: x < loadMax}
		if !out[i].Reached {
			out[i].Load = 0
		}
	}
	return out
}
