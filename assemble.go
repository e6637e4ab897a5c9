package zircage

import (
	"gonum.org/v1/gonum/floats"
)

// AgeWindows is the per-time-step zircon census over the selected paths and
// the derived sampling probability over relative zircon age.
type AgeWindows struct {
	NumberZircons   [][]float64 // [time step][selected path]
	NMeasurableAges []float64   // per-step sum over selected paths
	Prob            []float64   // sampling probability, sums to 1
	AgesEruptible   []float64   // age axis dt, 2dt, ..., n·dt [yr]
	Dt              float64     // [yr]
}

// AssembleAges masks the zircon-count matrix by path activity, restricts it
// to the selected paths, and derives the age-sampling probability vector.
func AssembleAges(cleanT, counts [][]float64, selected []int, dt float64) (*AgeWindows, error) {
	nt := len(cleanT)
	aw := &AgeWindows{
		NumberZircons:   make([][]float64, nt),
		NMeasurableAges: make([]float64, nt),
		AgesEruptible:   make([]float64, nt),
		Dt:              dt,
	}
	for j := 0; j < nt; j++ {
		row := make([]float64, len(selected))
		for i, p := range selected {
			if cleanT[j][p] > 0. {
				row[i] = counts[j][p]
			}
		}
		aw.NumberZircons[j] = row
		aw.NMeasurableAges[j] = floats.Sum(row)
		aw.AgesEruptible[j] = dt * float64(j+1)
	}

	total := floats.Sum(aw.NMeasurableAges)
	if total <= 0. {
		return nil, ErrNoMeasurableZircons
	}
	aw.Prob = append([]float64(nil), aw.NMeasurableAges...)
	floats.Scale(1./total, aw.Prob)
	return aw, nil
}
