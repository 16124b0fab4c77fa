package material

import (
	"fmt"
	"strconv"
	"strings"
)

// MaterialID identifies a stock lumber species.
type MaterialID int

const (
	Oak  MaterialID = 0
	Pine MaterialID = 1
)

// Glue joint shear strengths (psi) measured on same-species lap joints.
const (
	OakGlueShear  = 1391.0
	PineGlueShear = 989.0
)

// Properties holds the physical constants of one material.
type Properties struct {
	Name            string  `json:"name"`
	Density         float64 `json:"density"`          // lb/in³
	TensileStrength float64 `json:"tensile_strength"` // psi, parallel to grain
	ShearStrength   float64 `json:"shear_strength"`   // psi
	ElasticModulus  float64 `json:"elastic_modulus"`  // psi
}

var table = map[MaterialID]Properties{
	Oak: {
		Name:            "Oak",
		Density:         0.0240,
		TensileStrength: 17873,
		ShearStrength:   2873,
		ElasticModulus:  1800000,
	},
	Pine: {
		Name:            "Pine",
		Density:         0.0140,
		TensileStrength: 14327,
		ShearStrength:   1492,
		ElasticModulus:  1500000,
	},
}

// InvalidMaterialError is returned for an identifier outside the material table.
type InvalidMaterialError struct {
	ID MaterialID
}

func (e *InvalidMaterialError) Error() string {
	return fmt.Sprintf("invalid material identifier %d (use 0 for Oak, 1 for Pine)", int(e.ID))
}

// Valid reports whether id is in the material table.
func (id MaterialID) Valid() bool {
	_, ok := table[id]
	return ok
}

func (id MaterialID) String() string {
	if p, ok := table[id]; ok {
		return p.Name
	}
	return "Material(" + strconv.Itoa(int(id)) + ")"
}

// Lookup returns the properties of a material.
func Lookup(id MaterialID) (Properties, error) {
	p, ok := table[id]
	if !ok {
		return Properties{}, &InvalidMaterialError{ID: id}
	}
	return p, nil
}

// All returns every material in identifier order.
func All() []MaterialID {
	return []MaterialID{Oak, Pine}
}

// GlueShearStrength returns the shear strength (psi) of the glue line between
// web and flange. Dissimilar species use the average of both joint strengths.
func GlueShearStrength(web, flange MaterialID) (float64, error) {
	if !web.Valid() {
		return 0, &InvalidMaterialError{ID: web}
	}
	if !flange.Valid() {
		return 0, &InvalidMaterialError{ID: flange}
	}
	if web != flange {
		return (OakGlueShear + PineGlueShear) / 2, nil
	}
	if web == Oak {
		return OakGlueShear, nil
	}
	return PineGlueShear, nil
}

// ParseMaterialID accepts a numeric identifier or a species name.
func ParseMaterialID(s string) (MaterialID, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "oak":
		return Oak, nil
	case "pine":
		return Pine, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheets hand back "0.0" style cells
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("unrecognized material %q", s)
		}
		n = int(f)
	}
	id := MaterialID(n)
	if !id.Valid() {
		return 0, &InvalidMaterialError{ID: id}
	}
	return id, nil
}

// UnmarshalJSON accepts either the numeric identifier or the species name.
func (id *MaterialID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseMaterialID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
