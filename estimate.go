package zircage

import (
	"fmt"

	"github.com/magmalab/zircage/kde"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const yrPerMa = 1e6

// AgePDF bundles the kernel-density age distributions: one curve per
// selected path plus the ensemble-averaged curve, on axes in Ma.
type AgePDF struct {
	TimeMa           [][]float64
	PDFZircons       [][]float64
	TimeMaAverage    []float64
	PDFZirconAverage []float64
}

// EstimateAgePDF resamples zircon ages and builds their kernel density
// estimates. For each selected path, nAnalyses ages are drawn with
// replacement from the reversed age axis (max(age) − age, in Ma) weighted
// by that path's zircon counts; the averaged curve uses the ensemble
// probability vector instead. bandwidth is in years. The draw order is
// fully determined by src, so a fixed seed reproduces the curves.
func EstimateAgePDF(aw *AgeWindows, nAnalyses int, bandwidth float64, src rand.Source) (*AgePDF, error) {
	if nAnalyses < 1 {
		return nil, fmt.Errorf("EstimateAgePDF: nAnalyses %d must be positive", nAnalyses)
	}
	if bandwidth <= 0. {
		return nil, fmt.Errorf("EstimateAgePDF: bandwidth %f must be positive", bandwidth)
	}

	nt := len(aw.AgesEruptible)
	if nt == 0 || len(aw.NumberZircons) != nt {
		return nil, fmt.Errorf("EstimateAgePDF: empty or inconsistent age windows")
	}
	revMa := make([]float64, nt)
	mxAge := aw.AgesEruptible[nt-1]
	for j, a := range aw.AgesEruptible {
		revMa[j] = (mxAge - a) / yrPerMa
	}
	bwMa := bandwidth / yrPerMa

	sample := func(w []float64) ([]float64, []float64, error) {
		cat := distuv.NewCategorical(w, src)
		ages := make([]float64, nAnalyses)
		for k := range ages {
			ages[k] = revMa[int(cat.Rand())]
		}
		return kde.Estimate(ages, bwMa, kde.DefaultPoints)
	}

	pdf := &AgePDF{}
	np := len(aw.NumberZircons[0])
	w := make([]float64, nt)
	for i := 0; i < np; i++ {
		for j := 0; j < nt; j++ {
			w[j] = aw.NumberZircons[j][i]
		}
		if floats.Sum(w) <= 0. { // path contributed no zircons
			continue
		}
		xs, ys, err := sample(w)
		if err != nil {
			return nil, fmt.Errorf("EstimateAgePDF: path %d: %v", i, err)
		}
		pdf.TimeMa = append(pdf.TimeMa, xs)
		pdf.PDFZircons = append(pdf.PDFZircons, ys)
	}

	xs, ys, err := sample(aw.Prob)
	if err != nil {
		return nil, fmt.Errorf("EstimateAgePDF: averaged: %v", err)
	}
	pdf.TimeMaAverage, pdf.PDFZirconAverage = xs, ys
	return pdf, nil
}
