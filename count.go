package zircage

import (
	"math"

	"github.com/gosuri/uiprogress"
	"github.com/magmalab/zircage/loess"
)

// CountZircons evaluates the fitted count curve over every temperature
// sample, one path at a time, with a progress bar. Samples outside the open
// window (Tsol, Tsat) contribute no zircons.
func CountZircons(fit *loess.Fit, cfg ZirconConfig, T [][]float64) [][]float64 {
	nt := len(T)
	np := 0
	if nt > 0 {
		np = len(T[0])
	}
	out := make([][]float64, nt)
	for j := range out {
		out[j] = make([]float64, np)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(np).AppendCompleted().PrependElapsed()
	for p := 0; p < np; p++ {
		countColumn(fit, cfg, T, out, p)
		bar.Incr()
	}
	uiprogress.Stop()
	return out
}

// countColumn fills one path column; columns are fully independent.
func countColumn(fit *loess.Fit, cfg ZirconConfig, T, out [][]float64, p int) {
	for j := range T {
		t := T[j][p]
		if t > cfg.Tsol && t < cfg.Tsat {
			if c := math.Floor(fit.Predict(t)); c > 0. {
				out[j][p] = c
			}
		}
	}
}
