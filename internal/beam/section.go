package beam

import (
	"math"

	"github.com/alexiusacademia/gowib/internal/material"
)

// Length of the test specimen (in).
const Length = 20.0

// SectionProperties holds the transformed-section properties of a beam
type SectionProperties struct {
	// Materials
	Web               material.Properties `json:"web"`
	Flange            material.Properties `json:"flange"`
	GlueShearStrength float64             `json:"glue_shear_strength"` // psi

	Mass float64 `json:"mass"` // lb

	// Transformed section
	ReferenceModulus        float64 `json:"reference_modulus"`         // E_chosen (psi)
	WebScaleFactor          float64 `json:"web_scale_factor"`          // n_web = E_chosen / E_web
	FlangeScaleFactor       float64 `json:"flange_scale_factor"`       // n_flange = E_chosen / E_flange
	TransformedFlangeWidth  float64 `json:"transformed_flange_width"`  // in
	TransformedWebThickness float64 `json:"transformed_web_thickness"` // in

	// Geometry
	Height                float64 `json:"height"`                  // overall depth (in)
	MomentOfInertia       float64 `json:"moment_of_inertia"`       // I (in⁴)
	CentroidalFirstMoment float64 `json:"centroidal_first_moment"` // Q at the neutral axis (in³)
	JointFirstMoment      float64 `json:"joint_first_moment"`      // Q at the flange-web glue line (in³)
}

// Analyze computes the mass and transformed-section properties of the beam.
// Geometry is not validated here; call Validate first.
func Analyze(s Spec) (*SectionProperties, error) {
	web, err := material.Lookup(s.WebMaterial)
	if err != nil {
		return nil, err
	}
	flange, err := material.Lookup(s.FlangeMaterial)
	if err != nil {
		return nil, err
	}
	glue, err := material.GlueShearStrength(s.WebMaterial, s.FlangeMaterial)
	if err != nil {
		return nil, err
	}

	p := &SectionProperties{
		Web:               web,
		Flange:            flange,
		GlueShearStrength: glue,
		Height:            s.Height(),
	}

	// Web volume plus two flange plates, times density
	p.Mass = (Length*s.WebHeight*s.WebThickness)*web.Density +
		2*(Length*s.FlangeThickness*s.FlangeWidth)*flange.Density

	// Reference modulus: the member with the lower material identifier wins,
	// the flange on a tie.
	switch {
	case s.WebMaterial < s.FlangeMaterial:
		p.ReferenceModulus = web.ElasticModulus
	default:
		p.ReferenceModulus = flange.ElasticModulus
	}

	p.WebScaleFactor = p.ReferenceModulus / web.ElasticModulus
	p.FlangeScaleFactor = p.ReferenceModulus / flange.ElasticModulus
	p.TransformedFlangeWidth = s.FlangeWidth / p.FlangeScaleFactor
	p.TransformedWebThickness = s.WebThickness / p.WebScaleFactor

	// Outer rectangle minus the two voids beside the web
	bf := p.TransformedFlangeWidth
	tw := p.TransformedWebThickness
	p.MomentOfInertia = (1.0 / 12.0) * (bf*math.Pow(s.FlangeThickness*2+s.WebHeight, 3) -
		(bf-tw)*math.Pow(s.WebHeight, 3))

	p.CentroidalFirstMoment = s.WebThickness*(s.WebHeight/2)*(s.WebHeight/4) +
		s.FlangeThickness*s.FlangeWidth*(s.FlangeThickness/2+s.WebHeight/2)
	p.JointFirstMoment = s.FlangeThickness * s.FlangeWidth * (s.FlangeThickness / 2)

	return p, nil
}
