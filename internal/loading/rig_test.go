package loading

import (
	"math"
	"testing"
)

func TestStandardRigFactors(t *testing.T) {
	r := StandardRig
	if r.LoadFromRight() != 8 {
		t.Fatalf("expected b = 8, got %v", r.LoadFromRight())
	}
	if r.LeftReactionFactor() != 0.4 {
		t.Errorf("left reaction factor: got %v, want 0.4", r.LeftReactionFactor())
	}
	if r.RightReactionFactor() != 0.6 {
		t.Errorf("right reaction factor: got %v, want 0.6", r.RightReactionFactor())
	}
}

func TestMaxMomentAndShear(t *testing.T) {
	r := StandardRig
	for _, p := range []float64{0, 1, 250, 1234567} {
		if got, want := r.MaxMoment(p), 0.4*p*12; got != want {
			t.Errorf("MaxMoment(%v) = %v, want %v", p, got, want)
		}
		if got, want := r.MaxShear(p), -(0.6 * p); got != want {
			t.Errorf("MaxShear(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestDeflection(t *testing.T) {
	r := StandardRig
	e, i := 1800000.0, 0.5
	p := 1000.0
	want := ((-p * 8 * 12) / (6 * e * i * 20)) * 192
	got := r.Deflection(p, e, i)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Deflection = %v, want %v", got, want)
	}
	if got >= 0 {
		t.Errorf("expected downward (negative) deflection, got %v", got)
	}
}

func TestDeflection_StandardGeometryTerm(t *testing.T) {
	r := StandardRig
	// With e*i*span*6 / (a*b) == 1 the result is the negated geometry term.
	a, b := r.LoadFromLeft, r.LoadFromRight()
	e := a * b / (6 * r.Span)
	got := r.Deflection(1, e, 1)
	if math.Abs(got+192) > 1e-9 {
		t.Errorf("geometry term = %v, want 192", -got)
	}
}
