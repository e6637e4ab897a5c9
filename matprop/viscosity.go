package matprop

import "math"

const rgas = 8.314462618 // [J/(mol·K)]

// LinearViscous is Newtonian: τII = 2·η·εII.
type LinearViscous struct {
	Eta float64 // [Pa·s]
}

func (v LinearViscous) EffectiveViscosity(eii, p, t float64) float64 { return v.Eta }

// DislocationCreep is the power-law creep
//
//	η = A^(−1/n) · εII^(1/n − 1) · exp((E + P·V)/(n·R·T))
//
// with T in °C (converted internally to K) and εII the second strain-rate
// invariant [1/s].
type DislocationCreep struct {
	A float64 // pre-exponential factor [Pa^-n/s]
	N float64 // stress exponent [-]
	E float64 // activation energy [J/mol]
	V float64 // activation volume [m³/mol]
}

func (v DislocationCreep) EffectiveViscosity(eii, p, t float64) float64 {
	tk := t + 273.15
	return math.Pow(v.A, -1./v.N) * math.Pow(eii, 1./v.N-1.) *
		math.Exp((v.E+p*v.V)/(v.N*rgas*tk))
}

// DryOlivineDislocation returns the Hirth & Kohlstedt (2003) dry olivine
// dislocation-creep law.
func DryOlivineDislocation() DislocationCreep {
	return DislocationCreep{A: 1.1e5 * 1e-21, N: 3.5, E: 530e3, V: 15e-6} // MPa^-n/s converted to Pa^-n/s
}
