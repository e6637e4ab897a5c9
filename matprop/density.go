package matprop

// ConstantDensity ignores pressure and temperature.
type ConstantDensity struct {
	Rho float64 // [kg/m³]
}

func (d ConstantDensity) Density(p, t float64) float64 { return d.Rho }

// PTDensity expands linearly with temperature and compresses linearly with
// pressure about a reference state:
//
//	ρ = ρ0·(1 − α(T−T0))·(1 + β(P−P0))
type PTDensity struct {
	Rho0  float64 // reference density [kg/m³]
	Alpha float64 // thermal expansivity [1/K]
	Beta  float64 // compressibility [1/Pa]
	T0    float64 // reference temperature [°C]
	P0    float64 // reference pressure [Pa]
}

func (d PTDensity) Density(p, t float64) float64 {
	return d.Rho0 * (1. - d.Alpha*(t-d.T0)) * (1. + d.Beta*(p-d.P0))
}

// DefaultPTDensity returns a typical upper-crustal parameterization.
func DefaultPTDensity() PTDensity {
	return PTDensity{Rho0: 2900., Alpha: 3e-5, Beta: 1e-11, T0: 0., P0: 0.}
}
