package failure

import "fmt"

// Mode is one of the five ways the beam can fail.
type Mode int

const (
	WebBending Mode = iota
	FlangeBending
	WebShear
	FlangeShear
	GlueShear
)

// Modes lists every failure mode in report order. Ties between equal
// failure loads are broken by this order.
var Modes = []Mode{WebBending, FlangeBending, WebShear, FlangeShear, GlueShear}

var modeNames = map[Mode]string{
	WebBending:    "Web Bending Failure",
	FlangeBending: "Flange Bending Failure",
	WebShear:      "Web Shear Failure",
	FlangeShear:   "Flange Shear Failure",
	GlueShear:     "Glue Shear Failure",
}

var modeKeys = map[Mode]string{
	WebBending:    "web_bending",
	FlangeBending: "flange_bending",
	WebShear:      "web_shear",
	FlangeShear:   "flange_shear",
	GlueShear:     "glue_shear",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Key is the machine-readable name used in JSON and spreadsheets.
func (m Mode) Key() string {
	return modeKeys[m]
}

// MarshalText encodes the mode by its key.
func (m Mode) MarshalText() ([]byte, error) {
	key, ok := modeKeys[m]
	if !ok {
		return nil, fmt.Errorf("unknown failure mode %d", int(m))
	}
	return []byte(key), nil
}

// UnmarshalText decodes a mode key.
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, key := range modeKeys {
		if key == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown failure mode %q", text)
}

// IsBending reports whether the mode is a flexural failure.
func (m Mode) IsBending() bool {
	return m == WebBending || m == FlangeBending
}
