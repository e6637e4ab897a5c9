package matprop

// ConstantSeismicVelocity holds fixed body-wave speeds.
type ConstantSeismicVelocity struct {
	Vp float64 // [km/s]
	Vs float64 // [km/s]
}

func (v ConstantSeismicVelocity) Velocities(p, t float64) (vp, vs float64) {
	return v.Vp, v.Vs
}

// VpVs returns the Vp/Vs ratio, 0 when Vs is 0 (fluid).
func (v ConstantSeismicVelocity) VpVs() float64 {
	if v.Vs == 0. {
		return 0.
	}
	return v.Vp / v.Vs
}
