package matprop

import "math"

// ConstantRadioactiveHeat produces uniform volumetric heat.
type ConstantRadioactiveHeat struct {
	H float64 // [W/m³]
}

func (r ConstantRadioactiveHeat) Heat(z float64) float64 { return r.H }

// ExpDepthRadioactiveHeat decays exponentially with depth:
//
//	H(z) = H0·exp(−z/hr)
type ExpDepthRadioactiveHeat struct {
	H0 float64 // surface heat production [W/m³]
	Hr float64 // e-folding depth [m]
}

func (r ExpDepthRadioactiveHeat) Heat(z float64) float64 {
	return r.H0 * math.Exp(-z/r.Hr)
}
