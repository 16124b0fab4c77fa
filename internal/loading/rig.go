package loading

// Rig describes the simply supported test fixture: a single point load
// placed between two supports.
type Rig struct {
	ID          string
	Description string

	Span         float64 // L - distance between supports (in)
	LoadFromLeft float64 // a - left support to load point (in)
}

// StandardRig is the competition test fixture: a 20 in span loaded 12 in
// from the left support and 8 in from the right.
var StandardRig = Rig{
	ID:           "standard",
	Description:  "20 in span, point load 12 in / 8 in from supports",
	Span:         20,
	LoadFromLeft: 12,
}

// LoadFromRight returns b, the distance from the load point to the right support.
func (r Rig) LoadFromRight() float64 {
	return r.Span - r.LoadFromLeft
}

// LeftReactionFactor is R_left / P = b / L.
func (r Rig) LeftReactionFactor() float64 {
	return r.LoadFromRight() / r.Span
}

// RightReactionFactor is R_right / P = a / L.
func (r Rig) RightReactionFactor() float64 {
	return r.LoadFromLeft / r.Span
}

// MaxMoment returns the bending moment under the load point (in-lbf).
// The shear left of the load is R_left, so M_max = R_left * a.
func (r Rig) MaxMoment(load float64) float64 {
	return r.LeftReactionFactor() * load * r.LoadFromLeft
}

// MaxShear returns the governing shear force (lbf). It is negative: the
// right-hand segment carries -R_right.
func (r Rig) MaxShear(load float64) float64 {
	return -(r.RightReactionFactor() * load)
}

// Deflection returns the vertical deflection under the load point (in) for a
// beam with flexural rigidity e*i. Downward deflection is negative.
//
//	δ = -P·b·a·(L² - b² - a²) / (6·E·I·L)
//
// For the standard rig the bracketed term is 400 - 64 - 144 = 192.
func (r Rig) Deflection(load, e, i float64) float64 {
	a := r.LoadFromLeft
	b := r.LoadFromRight()
	return ((-load * b * a) / (6 * e * i * r.Span)) * (r.Span*r.Span - b*b - a*a)
}
