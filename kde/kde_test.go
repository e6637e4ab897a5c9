package kde

import (
	"testing"
)

func trapz(xs, ys []float64) float64 {
	s := 0.
	for i := 1; i < len(xs); i++ {
		s += .5 * (ys[i] + ys[i-1]) * (xs[i] - xs[i-1])
	}
	return s
}

func TestDensityProperties(t *testing.T) {
	samples := []float64{0., .2, .3, 1., 1.1, 2.5, 2.5, 3.}
	xs, ys, err := Estimate(samples, .4, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 1024 || len(ys) != 1024 {
		t.Fatalf("grid sizes %d, %d; want 1024", len(xs), len(ys))
	}
	for i, y := range ys {
		if y < 0. {
			t.Fatalf("negative density %g at grid point %d", y, i)
		}
	}
	if s := trapz(xs, ys); s < .99 || s > 1.01 {
		t.Errorf("density integrates to %f, want ~1", s)
	}
}

func TestSinglePointMass(t *testing.T) {
	xs, ys, err := Estimate([]float64{5.}, 1., 512)
	if err != nil {
		t.Fatal(err)
	}
	if s := trapz(xs, ys); s < .99 || s > 1.01 {
		t.Errorf("density integrates to %f, want ~1", s)
	}
	// peak sits on the sample
	imax, ymax := 0, ys[0]
	for i, y := range ys {
		if y > ymax {
			imax, ymax = i, y
		}
	}
	if d := xs[imax] - 5.; d > .05 || d < -.05 {
		t.Errorf("mode at %f, want ~5", xs[imax])
	}
}

func TestEstimateErrors(t *testing.T) {
	if _, _, err := Estimate(nil, 1., 128); err == nil {
		t.Error("empty sample accepted")
	}
	if _, _, err := Estimate([]float64{1.}, 0., 128); err == nil {
		t.Error("zero bandwidth accepted")
	}
}
