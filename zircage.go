package zircage

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Result is the full output bundle of one pipeline invocation.
type Result struct {
	Sel  *Selection
	Ages *AgeWindows
	PDF  *AgePDF
}

// ComputeZirconAges runs the complete pipeline on a rectangular ensemble:
// saturation fit, per-path zircon counting (over nwrkrs workers), residence
// filtering, age-window assembly, and PDF estimation with nAnalyses draws
// at the given KDE bandwidth [yr]. Everything up to the PDF stage is
// deterministic; the PDF stage is determined by src.
func ComputeZirconAges(cfg ZirconConfig, tt *TtPaths, nAnalyses int, bandwidth float64, src rand.Source, nwrkrs int) (*Result, error) {
	if tt.Nt() < 2 || tt.Np() == 0 {
		return nil, fmt.Errorf("ComputeZirconAges: ensemble needs at least 2 timesteps and 1 path (%d, %d)", tt.Nt(), tt.Np())
	}

	fit, err := SaturationFit(cfg)
	if err != nil {
		return nil, err
	}
	counts := CountZirconsConcurrent(fit, cfg, tt.T, nwrkrs)

	sel, clean, err := SelectPaths(cfg, tt)
	if err != nil {
		return nil, err
	}
	aw, err := AssembleAges(clean, counts, sel.Selected, tt.Dt())
	if err != nil {
		return nil, err
	}
	pdf, err := EstimateAgePDF(aw, nAnalyses, bandwidth, src)
	if err != nil {
		return nil, err
	}
	return &Result{Sel: sel, Ages: aw, PDF: pdf}, nil
}

// ComputeZirconAgesRagged normalizes a ragged path collection onto a shared
// axis, then runs ComputeZirconAges. A ragged collection that already
// shares one common axis yields results identical to the rectangular entry
// point.
func ComputeZirconAgesRagged(cfg ZirconConfig, paths []TtPath, nAnalyses int, bandwidth float64, src rand.Source, nwrkrs int) (*Result, error) {
	tt, err := NormalizeRagged(paths)
	if err != nil {
		return nil, err
	}
	return ComputeZirconAges(cfg, tt, nAnalyses, bandwidth, src, nwrkrs)
}
