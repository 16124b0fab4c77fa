package failure

import (
	"github.com/alexiusacademia/gowib/internal/beam"
	"github.com/alexiusacademia/gowib/internal/loading"
)

// Stresses holds the governing stresses (psi) at one applied load.
type Stresses struct {
	Load          float64 `json:"load"`
	FlangeBending float64 `json:"flange_bending"`
	WebBending    float64 `json:"web_bending"`
	WebShear      float64 `json:"web_shear"`
	JointShear    float64 `json:"joint_shear"` // flange-web glue line
}

// Evaluator computes stresses in one beam on one rig. Every stress is a
// non-decreasing function of the applied load.
type Evaluator struct {
	Section *beam.SectionProperties
	Spec    beam.Spec
	Rig     loading.Rig
}

// FlangeBending returns the extreme-fibre bending stress in the flange,
// S = M/(I·n_flange) · c with c at the outer face.
func (e Evaluator) FlangeBending(load float64) float64 {
	p := e.Section
	m := e.Rig.MaxMoment(load)
	return (m / (p.MomentOfInertia * p.FlangeScaleFactor)) * ((2*e.Spec.FlangeThickness + e.Spec.WebHeight) / 2)
}

// WebBending returns the bending stress at the top of the web, where it
// meets the flange.
func (e Evaluator) WebBending(load float64) float64 {
	p := e.Section
	m := e.Rig.MaxMoment(load)
	return (m / (p.MomentOfInertia * p.WebScaleFactor)) * (e.Spec.WebHeight / 2)
}

// WebShear returns the shear stress in the web at the neutral axis.
func (e Evaluator) WebShear(load float64) float64 {
	p := e.Section
	v := e.Rig.MaxShear(load)
	return (-v * p.CentroidalFirstMoment) / (p.WebScaleFactor * p.MomentOfInertia * (e.Spec.WebThickness / p.WebScaleFactor))
}

// JointShear returns the shear stress across the flange-web glue line.
func (e Evaluator) JointShear(load float64) float64 {
	p := e.Section
	v := e.Rig.MaxShear(load)
	return (-v * p.JointFirstMoment) / (p.FlangeScaleFactor * p.MomentOfInertia * (e.Spec.FlangeWidth / p.FlangeScaleFactor))
}

// At evaluates all stresses at the given load.
func (e Evaluator) At(load float64) Stresses {
	return Stresses{
		Load:          load,
		FlangeBending: e.FlangeBending(load),
		WebBending:    e.WebBending(load),
		WebShear:      e.WebShear(load),
		JointShear:    e.JointShear(load),
	}
}

// criterion pairs a stress function with the strength it must stay below.
type criterion struct {
	mode     Mode
	stress   func(load float64) float64
	strength float64
}

func (c criterion) exceeded(load int) bool {
	return c.stress(float64(load)) > c.strength
}

func (e Evaluator) bendingCriteria() []criterion {
	return []criterion{
		{FlangeBending, e.FlangeBending, e.Section.Flange.TensileStrength},
		{WebBending, e.WebBending, e.Section.Web.TensileStrength},
	}
}

func (e Evaluator) shearCriteria() []criterion {
	return []criterion{
		{WebShear, e.WebShear, e.Section.Web.ShearStrength},
		{FlangeShear, e.JointShear, e.Section.Flange.ShearStrength},
		{GlueShear, e.JointShear, e.Section.GlueShearStrength},
	}
}

// Strength returns the threshold a mode's stress is tested against and the
// stress function that drives it.
func (e Evaluator) Strength(mode Mode) (strength float64, stress func(float64) float64) {
	for _, c := range append(e.bendingCriteria(), e.shearCriteria()...) {
		if c.mode == mode {
			return c.strength, c.stress
		}
	}
	return 0, nil
}
