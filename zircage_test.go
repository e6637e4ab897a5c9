package zircage

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

// testEnsemble builds np monotone cooling paths over nt steps of dt years,
// each traversing the full saturation window of the default configuration.
func testEnsemble(nt, np int, dt float64) *TtPaths {
	tt := &TtPaths{Time: make([]float64, nt), T: make([][]float64, nt)}
	for j := 0; j < nt; j++ {
		tt.Time[j] = dt * float64(j+1)
		tt.T[j] = make([]float64, np)
		for p := 0; p < np; p++ {
			tt.T[j][p] = 900. - 1.5*float64(p) - 260.*float64(j)/float64(nt-1)
		}
	}
	return tt
}

func trapz(xs, ys []float64) float64 {
	s := 0.
	for i := 1; i < len(xs); i++ {
		s += .5 * (ys[i] + ys[i-1]) * (xs[i] - xs[i-1])
	}
	return s
}

func TestPipelineInvariants(t *testing.T) {
	cfg := DefaultConfig()
	tt := testEnsemble(1500, 8, 1000.)
	res, err := ComputeZirconAges(cfg, tt, 300, 1e5, rand.NewSource(1), 2)
	if err != nil {
		t.Fatal(err)
	}

	aw := res.Ages
	if len(aw.Prob) != len(aw.AgesEruptible) || len(aw.NumberZircons) != len(aw.AgesEruptible) {
		t.Fatalf("bundle lengths disagree: prob %d, ages %d, zircons %d",
			len(aw.Prob), len(aw.AgesEruptible), len(aw.NumberZircons))
	}
	if s := math.Abs(1. - sum(aw.Prob)); s > 1e-9 {
		t.Errorf("prob sums to 1%+g", s)
	}
	for j, a := range aw.AgesEruptible {
		want := 1000. * float64(j+1)
		if math.Abs(a-want) > 1e-6 {
			t.Fatalf("ages_eruptible[%d] = %f, want %f", j, a, want)
		}
	}
	for j := range aw.NumberZircons {
		for i, v := range aw.NumberZircons[j] {
			if v < 0. {
				t.Fatalf("negative zircon count at (%d,%d)", j, i)
			}
		}
	}

	if len(res.PDF.PDFZircons) != len(res.Sel.Selected) {
		t.Errorf("%d per-path curves for %d selected paths", len(res.PDF.PDFZircons), len(res.Sel.Selected))
	}
	for _, y := range res.PDF.PDFZirconAverage {
		if y < 0. {
			t.Fatal("negative density in averaged PDF")
		}
	}
	if s := trapz(res.PDF.TimeMaAverage, res.PDF.PDFZirconAverage); s < .97 || s > 1.03 {
		t.Errorf("averaged PDF integrates to %f, want ~1", s)
	}
}

func TestRaggedRoundTrip(t *testing.T) {
	// paths already sharing one axis must reproduce the rectangular
	// pipeline exactly
	cfg := DefaultConfig()
	tt := testEnsemble(1500, 5, 1000.)
	paths := make([]TtPath, tt.Np())
	for p := range paths {
		temp := make([]float64, tt.Nt())
		for j := range temp {
			temp[j] = tt.T[j][p]
		}
		paths[p] = TtPath{Time: tt.Time, T: temp}
	}

	direct, err := ComputeZirconAges(cfg, tt, 200, 1e5, rand.NewSource(99), 2)
	if err != nil {
		t.Fatal(err)
	}
	ragged, err := ComputeZirconAgesRagged(cfg, paths, 200, 1e5, rand.NewSource(99), 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(direct, ragged) {
		t.Error("ragged round trip differs from the rectangular pipeline")
	}
}

func TestEstimatorDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	tt := testEnsemble(1500, 4, 1000.)
	fit, err := SaturationFit(cfg)
	if err != nil {
		t.Fatal(err)
	}
	counts := CountZirconsConcurrent(fit, cfg, tt.T, 0)
	sel, clean, err := SelectPaths(cfg, tt)
	if err != nil {
		t.Fatal(err)
	}
	aw, err := AssembleAges(clean, counts, sel.Selected, tt.Dt())
	if err != nil {
		t.Fatal(err)
	}

	a, err := EstimateAgePDF(aw, 150, 1e5, rand.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := EstimateAgePDF(aw, 150, 1e5, rand.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different PDF curves")
	}

	c, err := EstimateAgePDF(aw, 150, 1e5, rand.NewSource(8))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.PDFZirconAverage, c.PDFZirconAverage) {
		t.Error("different seeds produced identical averaged curves")
	}
}

func TestPipelineShortResidence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeZrGrowth = 1e12
	tt := testEnsemble(1500, 4, 1000.)
	_, err := ComputeZirconAges(cfg, tt, 100, 1e5, rand.NewSource(1), 0)
	var sre *ShortResidenceError
	if !errors.As(err, &sre) {
		t.Fatalf("want ShortResidenceError, got %v", err)
	}
}

func TestPipelineDegenerateInput(t *testing.T) {
	if _, err := ComputeZirconAges(DefaultConfig(), &TtPaths{}, 100, 1e5, rand.NewSource(1), 0); err == nil {
		t.Error("empty ensemble accepted")
	}
}

func sum(v []float64) float64 {
	s := 0.
	for _, x := range v {
		s += x
	}
	return s
}
