package zircage

// ZirconConfig is the complete tunable surface of the zircon age pipeline.
// Values are passed explicitly into every stage; there is no package-level
// default state beyond DefaultConfig.
type ZirconConfig struct {
	Tsat         float64 // zircon saturation temperature [°C]
	Tmin         float64 // minimum temperature of the saturation window [°C]
	Tsol         float64 // solidus temperature [°C]
	TcalMax      float64 // maximum temperature of the calculation grid [°C]
	TcalStep     float64 // calculation grid step [°C]
	MaxXZr       float64 // maximum zircon fraction reached at the solidus [-]
	ZirconNumber int     // resolution of the fitted count curve
	TimeZrGrowth float64 // minimum residence in the saturation window to grow a measurable population [yr]
}

// DefaultConfig returns the standard rhyolitic parameterization.
func DefaultConfig() ZirconConfig {
	return ZirconConfig{
		Tsat:         825.,
		Tmin:         690.,
		Tsol:         680.,
		TcalMax:      800.,
		TcalStep:     1.,
		MaxXZr:       0.001,
		ZirconNumber: 100,
		TimeZrGrowth: 0.7e6,
	}
}
