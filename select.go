package zircage

import (
	"math"

	"github.com/maseology/mmaths/slice"
	"github.com/montanaflynn/stats"
)

// Selection holds the outcome of the residence filter: which paths carry a
// measurable zircon population, the timing anchors, and the per-time-step
// temperature statistics over active paths.
type Selection struct {
	Eligible    []int // paths reaching above Tmin and fully crystallized by the final step
	LengthTrace []int // steps spent inside (Tmin, Tsat), aligned with Eligible
	Selected    []int // eligible paths exceeding the minimum residence step count

	IDMinTime    int     // reference start index on the longest-trace path
	MaxAgeSpread float64 // longest residence duration [yr]

	Tmean, Tmed, Tsd []float64 // per time step, active paths only; NaN when none
}

// SelectPaths applies the eligibility and residence-time criteria to a Tt
// ensemble and returns the selection alongside a cleaned copy of the
// temperature matrix (leading zero-padded segments of eligible paths
// blanked through their last zero index).
func SelectPaths(cfg ZirconConfig, tt *TtPaths) (*Selection, [][]float64, error) {
	nt, np := tt.Nt(), tt.Np()
	dt := tt.Dt()
	T := tt.T

	sel := &Selection{IDMinTime: -1}
	for p := 0; p < np; p++ {
		mx := T[0][p]
		for j := 1; j < nt; j++ {
			if T[j][p] > mx {
				mx = T[j][p]
			}
		}
		if mx > cfg.Tmin && T[nt-1][p] < cfg.Tsat {
			lt := 0
			for j := 0; j < nt; j++ {
				if T[j][p] > cfg.Tmin && T[j][p] < cfg.Tsat {
					lt++
				}
			}
			sel.Eligible = append(sel.Eligible, p)
			sel.LengthTrace = append(sel.LengthTrace, lt)
		}
	}

	// timing anchors from the longest-resident path
	maxTrace, pLongest := 0, -1
	for i, lt := range sel.LengthTrace {
		if lt > maxTrace {
			maxTrace, pLongest = lt, sel.Eligible[i]
		}
	}
	sel.MaxAgeSpread = float64(maxTrace) * dt
	if pLongest >= 0 {
		tmn := math.Inf(1)
		for j := 0; j < nt; j++ {
			if v := T[j][pLongest]; v < cfg.Tsat && v < tmn {
				tmn, sel.IDMinTime = v, j
			}
		}
	}

	sel.Tmean, sel.Tmed, sel.Tsd = activeStats(T)

	// minimum qualifying residence step count; the two-step form is kept
	// as-is, its rounding sets the selection threshold
	frac := cfg.TimeZrGrowth / sel.MaxAgeSpread
	minSteps := math.Floor(frac * sel.MaxAgeSpread / dt)
	for i, p := range sel.Eligible {
		if float64(sel.LengthTrace[i]) > minSteps {
			sel.Selected = append(sel.Selected, p)
		}
	}
	if len(sel.Selected) == 0 {
		return nil, nil, &ShortResidenceError{LongestTrace: sel.MaxAgeSpread, TimeZrGrowth: cfg.TimeZrGrowth}
	}

	// blank pre-saturation artifacts: everything at or before the last
	// inactive step of each eligible path
	clean := make([][]float64, nt)
	for j := range clean {
		clean[j] = append([]float64(nil), T[j]...)
	}
	for _, p := range sel.Eligible {
		last := -1
		for j := nt - 1; j >= 0; j-- {
			if T[j][p] == 0. {
				last = j
				break
			}
		}
		for j := 0; j <= last; j++ {
			clean[j][p] = 0.
		}
	}

	return sel, clean, nil
}

// activeStats reduces each time-step row over its active (non-zero) paths.
// Rows with no active path report NaN, as do sample deviations of a single
// value.
func activeStats(T [][]float64) (mean, med, sd []float64) {
	nt := len(T)
	mean, med, sd = make([]float64, nt), make([]float64, nt), make([]float64, nt)
	for j := 0; j < nt; j++ {
		act := make([]float64, 0, len(T[j]))
		for _, v := range T[j] {
			if v != 0. {
				act = append(act, v)
			}
		}
		if len(act) == 0 {
			mean[j], med[j], sd[j] = math.NaN(), math.NaN(), math.NaN()
			continue
		}
		m, err := stats.Mean(act)
		if err != nil {
			m = math.NaN()
		}
		mean[j] = m
		med[j] = slice.Median(act)
		s, err := stats.StandardDeviationSample(act)
		if err != nil || len(act) < 2 {
			s = math.NaN()
		}
		sd[j] = s
	}
	return mean, med, sd
}
