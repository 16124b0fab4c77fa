package beam

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/alexiusacademia/gowib/internal/material"
)

// Spec is a built-up wooden I-beam: one web board glued between two
// identical flange boards. All lengths are in inches.
type Spec struct {
	WebHeight       float64 `json:"web_height"`
	WebThickness    float64 `json:"web_thickness"`
	FlangeWidth     float64 `json:"flange_width"`
	FlangeThickness float64 `json:"flange_thickness"`

	WebMaterial    material.MaterialID `json:"web_material"`
	FlangeMaterial material.MaterialID `json:"flange_material"`
}

// Height returns the overall depth of the section.
func (s Spec) Height() float64 {
	return s.WebHeight + 2*s.FlangeThickness
}

// CheckMaterials returns an InvalidMaterialError if either member uses an
// unknown material.
func (s Spec) CheckMaterials() error {
	if _, err := material.Lookup(s.WebMaterial); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	if _, err := material.Lookup(s.FlangeMaterial); err != nil {
		return fmt.Errorf("flange: %w", err)
	}
	return nil
}

// ParseSpec builds a Spec from the six ordered values
// [webHeight, webThickness, flangeWidth, flangeThickness, webMaterial, flangeMaterial].
func ParseSpec(values []string) (Spec, error) {
	if len(values) != 6 {
		return Spec{}, fmt.Errorf("expected 6 values, got %d", len(values))
	}

	names := []string{"web height", "web thickness", "flange width", "flange thickness"}
	dims := make([]float64, 4)
	for i := range dims {
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid %s %q: %w", names[i], values[i], err)
		}
		dims[i] = v
	}

	web, err := material.ParseMaterialID(values[4])
	if err != nil {
		return Spec{}, fmt.Errorf("web material: %w", err)
	}
	flange, err := material.ParseMaterialID(values[5])
	if err != nil {
		return Spec{}, fmt.Errorf("flange material: %w", err)
	}

	return Spec{
		WebHeight:       dims[0],
		WebThickness:    dims[1],
		FlangeWidth:     dims[2],
		FlangeThickness: dims[3],
		WebMaterial:     web,
		FlangeMaterial:  flange,
	}, nil
}

// LoadFromFile loads a beam definition from a JSON file
func LoadFromFile(filepath string) (Spec, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return Spec{}, err
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse %s: %w", filepath, err)
	}
	return spec, nil
}
