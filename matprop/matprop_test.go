package matprop

import (
	"math"
	"testing"
)

func TestPTDensity(t *testing.T) {
	d := DefaultPTDensity()
	if got := d.Density(0., 0.); math.Abs(got-2900.) > 1e-9 {
		t.Errorf("reference density = %f, want 2900", got)
	}
	if d.Density(0., 800.) >= d.Density(0., 20.) {
		t.Error("density must fall with temperature")
	}
	if d.Density(1e9, 20.) <= d.Density(0., 20.) {
		t.Error("density must rise with pressure")
	}
	c := ConstantDensity{Rho: 3300.}
	if c.Density(1e9, 1200.) != 3300. {
		t.Error("constant density not constant")
	}
}

func TestRadioactiveHeat(t *testing.T) {
	r := ExpDepthRadioactiveHeat{H0: 1e-6, Hr: 10e3}
	if got := r.Heat(0.); math.Abs(got-1e-6) > 1e-18 {
		t.Errorf("surface heat = %g, want 1e-6", got)
	}
	if got := r.Heat(10e3); math.Abs(got-1e-6/math.E) > 1e-12 {
		t.Errorf("heat at one e-folding depth = %g", got)
	}
}

func TestSeismicVelocity(t *testing.T) {
	v := ConstantSeismicVelocity{Vp: 8.1, Vs: 4.5}
	if got := v.VpVs(); math.Abs(got-1.8) > 1e-9 {
		t.Errorf("Vp/Vs = %f, want 1.8", got)
	}
	if (ConstantSeismicVelocity{Vp: 1.5}).VpVs() != 0. {
		t.Error("fluid Vp/Vs should be 0")
	}
}

func TestDislocationCreep(t *testing.T) {
	v := DryOlivineDislocation()
	e1 := v.EffectiveViscosity(1e-15, 1e9, 1200.)
	e2 := v.EffectiveViscosity(1e-15, 1e9, 1400.)
	if e1 <= 0. || e2 <= 0. {
		t.Fatal("viscosity must be positive")
	}
	if e2 >= e1 {
		t.Error("viscosity must fall with temperature")
	}
	// shear thinning: faster strain rate, lower effective viscosity
	if v.EffectiveViscosity(1e-13, 1e9, 1200.) >= e1 {
		t.Error("viscosity must fall with strain rate for n > 1")
	}
}
