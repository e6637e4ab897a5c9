package kde

// Gaussian kernel density estimation on a regular evaluation grid.

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultPoints is the default evaluation grid resolution.
const DefaultPoints = 2048

// cut extends the grid beyond the sample range, in bandwidths per side.
const cut = 4.

// Estimate evaluates a Gaussian KDE of samples with the given bandwidth on
// an npoints grid spanning the sample range extended by 4 bandwidths each
// side. Returns the grid and the density (integrates to ~1 over the grid).
func Estimate(samples []float64, bandwidth float64, npoints int) (xs, ys []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("kde.Estimate: no samples")
	}
	if bandwidth <= 0. {
		return nil, nil, fmt.Errorf("kde.Estimate: bandwidth %f must be positive", bandwidth)
	}
	if npoints < 2 {
		npoints = DefaultPoints
	}

	lo := floats.Min(samples) - cut*bandwidth
	hi := floats.Max(samples) + cut*bandwidth
	xs = floats.Span(make([]float64, npoints), lo, hi)
	ys = make([]float64, npoints)

	k := distuv.Normal{Mu: 0., Sigma: bandwidth}
	fn := float64(len(samples))
	for i, x := range xs {
		s := 0.
		for _, v := range samples {
			s += k.Prob(x - v)
		}
		ys[i] = s / fn
	}
	return xs, ys, nil
}
