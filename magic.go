package tirebench

import "math"

// Numeric guard values used in place of failing on degenerate inputs.
const (
	// denominatorEpsilon replaces a stiffness denominator that is exactly zero.
	denominatorEpsilon = 0.000000001

	// NoContactDeflection is the deflection reported when the radius quadratic
	// has no real positive root.
	NoContactDeflection = 999999.0

	// maxCurvature caps every curvature factor E.
	maxCurvature = 1.0
)

// magicSine evaluates D·sin(C·atan(Bx − E·(Bx − atan(Bx)))).
func magicSine(b, c, d, e, x float64) float64 {
	bx := b * x
	return d * math.Sin(c*math.Atan(bx-e*(bx-math.Atan(bx))))
}

// magicCosine evaluates cos(C·atan(Bx − E·(Bx − atan(Bx)))), the weighting
// sigmoid of the combined-slip formulas.
func magicCosine(b, c, e, x float64) float64 {
	bx := b * x
	return math.Cos(c * math.Atan(bx-e*(bx-math.Atan(bx))))
}

// weighting returns the combined-slip reduction factor: the cosine sigmoid at
// the shifted slip divided by the same sigmoid at the shift alone. It is
// exactly 1 when x equals shift.
func weighting(b, c, e, x, shift float64) float64 {
	return magicCosine(b, c, e, x) / magicCosine(b, c, e, shift)
}

// clampCurvature caps a curvature factor at 1.0.
func clampCurvature(e float64) float64 {
	if e > maxCurvature {
		return maxCurvature
	}
	return e
}

// sign returns -1, 0 or +1. Zero maps to zero.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
