package beam

import "math"

// Competition stock and envelope limits (in).
const (
	MinStock          = 0.1875 // 3/16 in
	MaxHeight         = 4.0
	MaxWidth          = 2.0
	MaxHeightToWidth  = 2.0
	MaxStockThickness = 0.75 // 3/4 in
	MaxAspectRatio    = 8.0
)

// Rule identifies which geometric constraint a beam violates.
type Rule string

const (
	RuleMinimumStock   Rule = "minimum-stock"
	RuleMaxHeight      Rule = "max-height"
	RuleMaxWidth       Rule = "max-width"
	RuleHeightToWidth  Rule = "height-to-width"
	RuleStockThickness Rule = "stock-thickness"
	RuleAspectRatio    Rule = "aspect-ratio"
)

// ValidationError represents a violated geometric constraint
type ValidationError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the beam against the competition constraints in a fixed
// order and stops at the first violation.
func (s Spec) Validate() *ValidationError {
	for _, d := range []float64{s.WebHeight, s.WebThickness, s.FlangeWidth, s.FlangeThickness} {
		// !(d >= MinStock) also rejects NaN
		if !(d >= MinStock) || math.IsInf(d, 0) {
			return &ValidationError{RuleMinimumStock, "Some material dimension is under 3/16 in minimum stock."}
		}
	}
	if s.Height() > MaxHeight {
		return &ValidationError{RuleMaxHeight, "Beam height exceeds 4 in maximum."}
	}
	if s.FlangeWidth > MaxWidth {
		return &ValidationError{RuleMaxWidth, "Beam width exceeds 2 in maximum."}
	}
	if s.Height()/s.FlangeWidth > MaxHeightToWidth {
		return &ValidationError{RuleHeightToWidth, "Beam exceeds maximum height to width ratio of 2."}
	}
	if s.WebThickness > MaxStockThickness || s.FlangeThickness > MaxStockThickness {
		return &ValidationError{RuleStockThickness, "Beam cannot be made with 3/4 in stock material."}
	}
	if s.FlangeWidth/s.FlangeThickness > MaxAspectRatio || s.WebHeight/s.WebThickness > MaxAspectRatio {
		return &ValidationError{RuleAspectRatio, "Web or flange exceeds aspect ratio limit of 8."}
	}
	return nil
}
