package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gowib/internal/failure"
)

const rule = "───────────────────────────────────────────────────────────────"

// WriteText renders a pipeline result as the human-readable design report.
func WriteText(out io.Writer, res *Result) {
	s := res.Spec

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          WOODEN I-BEAM FAILURE ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Web Height:\t%.4f in\n", s.WebHeight)
	fmt.Fprintf(w, "  Web Thickness:\t%.4f in\n", s.WebThickness)
	fmt.Fprintf(w, "  Flange Width:\t%.4f in\n", s.FlangeWidth)
	fmt.Fprintf(w, "  Flange Thickness:\t%.4f in\n", s.FlangeThickness)
	fmt.Fprintf(w, "  Web Material:\t%s\n", s.WebMaterial)
	fmt.Fprintf(w, "  Flange Material:\t%s\n", s.FlangeMaterial)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PARAMETER CHECK:")
	fmt.Fprintln(out, rule)
	if !res.Passed() {
		fmt.Fprintf(out, "  ✗ %s\n", res.Validation.Message)
		fmt.Fprintln(out)
		return
	}
	fmt.Fprintln(out, "  ✓ Beam is within competition parameters!")
	fmt.Fprintln(out)

	r := res.Report
	writeSection(out, r)
	writeBending(out, r.Failures)
	writeShear(out, r.Failures)
	writeSummary(out, r)
}

func writeSection(out io.Writer, r *Report) {
	p := r.Section
	fmt.Fprintln(out, "SECTION PROPERTIES:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reference modulus (E):\t%.0f psi\n", p.ReferenceModulus)
	fmt.Fprintf(w, "  n_web / n_flange:\t%.4f / %.4f\n", p.WebScaleFactor, p.FlangeScaleFactor)
	fmt.Fprintf(w, "  Transformed flange width:\t%.4f in\n", p.TransformedFlangeWidth)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6f in⁴\n", p.MomentOfInertia)
	fmt.Fprintf(w, "  Q at centroid:\t%.6f in³\n", p.CentroidalFirstMoment)
	fmt.Fprintf(w, "  Q at glue joint:\t%.6f in³\n", p.JointFirstMoment)
	fmt.Fprintf(w, "  Glue shear strength:\t%.0f psi\n", p.GlueShearStrength)
	w.Flush()
	fmt.Fprintln(out)
}

func writeBending(out io.Writer, rec *failure.Record) {
	fmt.Fprintln(out, "BENDING FAILURE:")
	fmt.Fprintln(out, rule)
	web := rec.Get(failure.WebBending)
	flange := rec.Get(failure.FlangeBending)
	switch {
	case !web.Reached && !flange.Reached:
		fmt.Fprintln(out, "  Bending failure does not occur within load range.")
	case web.Reached && (!flange.Reached || web.Load <= flange.Load):
		fmt.Fprintf(out, "  Web fails first at %d lbf.\n", web.Load)
		if flange.Reached {
			fmt.Fprintf(out, "  Flange also fails at %d lbf.\n", flange.Load)
		}
	default:
		fmt.Fprintf(out, "  Flange fails first at %d lbf.\n", flange.Load)
		if web.Reached {
			fmt.Fprintf(out, "  Web also fails at %d lbf.\n", web.Load)
		}
	}
	fmt.Fprintln(out)
}

func writeShear(out io.Writer, rec *failure.Record) {
	fmt.Fprintln(out, "SHEAR FAILURE:")
	fmt.Fprintln(out, rule)
	for _, m := range []struct {
		mode  failure.Mode
		label string
	}{
		{failure.WebShear, "Web"},
		{failure.FlangeShear, "Flange"},
		{failure.GlueShear, "Glue"},
	} {
		o := rec.Get(m.mode)
		if o.Reached {
			fmt.Fprintf(out, "  %s fails in shear at %d lbf.\n", m.label, o.Load)
		} else {
			fmt.Fprintf(out, "  %s does not fail in shear within test range.\n", m.label)
		}
	}
	fmt.Fprintln(out)
}

func writeSummary(out io.Writer, r *Report) {
	fmt.Fprintln(out, "FAILURE MODES (ascending load):")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tMode\tLoad (lbf)\n")
	fmt.Fprintf(w, "  ─\t────\t──────────\n")
	for i, o := range r.Failures.Sorted() {
		load := "not reached"
		if o.Reached {
			load = fmt.Sprintf("%d", o.Load)
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\n", i+1, o.Mode, load)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, rule)
	if r.NoFailure {
		fmt.Fprintf(out, "  No failure mode occurs below %d lbf.\n", r.Failures.LoadMax)
		fmt.Fprintf(out, "  Beam Mass is: %.2f lbs.\n", r.Mass)
		fmt.Fprintln(out)
		return
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dominant failure mode:\t%s\n", r.DominantMode)
	fmt.Fprintf(w, "  Failure load:\t%d lbf\n", r.DominantLoad)
	fmt.Fprintf(w, "  Largest failure delta:\t%.2f%%\n", r.FailureDeltaPercent)
	fmt.Fprintf(w, "  Beam mass:\t%.2f lb\n", r.Mass)
	fmt.Fprintf(w, "  Strength to weight ratio:\t%.2f\n", r.StrengthToWeight)
	fmt.Fprintf(w, "  Max deflection:\t%.3f in\n", r.MaxDeflection)
	w.Flush()
	fmt.Fprintln(out)

	if r.DeltaWarning {
		fmt.Fprintln(out, "  ⚠ This is outside design range requirements, test new beam parameters please.")
		fmt.Fprintln(out)
	}
}
