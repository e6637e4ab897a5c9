package loess

// local polynomial regression with tricube weighting
// ref: Cleveland, W.S., 1979. Robust Locally Weighted Regression and Smoothing Scatterplots. Journal of the American Statistical Association 74(368): 829-836.

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Fit holds a fitted local regression surface over one predictor.
type Fit struct {
	xs, ys []float64
	span   float64
	degree int
}

// New fits a loess smoother to (xs, ys). span is the fraction of points
// entering each local fit (0 < span <= 1, 1 = full span); degree is the
// local polynomial order (1 or 2).
func New(xs, ys []float64, span float64, degree int) (*Fit, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("loess.New: length mismatch (%d vs %d)", len(xs), len(ys))
	}
	if degree < 1 || degree > 2 {
		return nil, fmt.Errorf("loess.New: unsupported degree %d", degree)
	}
	if len(xs) < degree+2 {
		return nil, fmt.Errorf("loess.New: need at least %d points, have %d", degree+2, len(xs))
	}
	if span <= 0. || span > 1. {
		return nil, fmt.Errorf("loess.New: span %f outside (0,1]", span)
	}

	f := &Fit{
		xs:     make([]float64, len(xs)),
		ys:     make([]float64, len(ys)),
		span:   span,
		degree: degree,
	}
	ix := make([]int, len(xs))
	for i := range ix {
		ix[i] = i
	}
	sort.Slice(ix, func(i, j int) bool { return xs[ix[i]] < xs[ix[j]] })
	for i, j := range ix {
		f.xs[i] = xs[j]
		f.ys[i] = ys[j]
	}
	return f, nil
}

// Predict evaluates the smoother at x by a weighted least-squares polynomial
// over the span-nearest neighbours. Queries outside the fitted range
// extrapolate the boundary polynomial.
func (f *Fit) Predict(x float64) float64 {
	n := len(f.xs)
	q := int(math.Ceil(f.span * float64(n)))
	if q < f.degree+2 {
		q = f.degree + 2
	}
	if q > n {
		q = n
	}
	i0, i1 := f.window(x, q)

	dmax := 0.
	for i := i0; i < i1; i++ {
		if d := math.Abs(f.xs[i] - x); d > dmax {
			dmax = d
		}
	}
	if dmax == 0. { // all neighbours coincide with x
		s := 0.
		for i := i0; i < i1; i++ {
			s += f.ys[i]
		}
		return s / float64(i1-i0)
	}

	// weighted design matrix in coordinates centred on x, so the
	// prediction is the intercept of the local polynomial
	nc := f.degree + 1
	a := mat.NewDense(q, nc, nil)
	b := mat.NewDense(q, 1, nil)
	for i := i0; i < i1; i++ {
		d := math.Abs(f.xs[i]-x) / dmax
		w := math.Sqrt(tricube(d))
		t := f.xs[i] - x
		r := i - i0
		a.Set(r, 0, w)
		a.Set(r, 1, w*t)
		if f.degree == 2 {
			a.Set(r, 2, w*t*t)
		}
		b.Set(r, 0, w*f.ys[i])
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		// singular local system; fall back to the weighted mean
		sw, swy := 0., 0.
		for i := i0; i < i1; i++ {
			w := tricube(math.Abs(f.xs[i]-x) / dmax)
			sw += w
			swy += w * f.ys[i]
		}
		return swy / sw
	}
	return beta.At(0, 0)
}

// window returns the half-open index range of the q points nearest x.
func (f *Fit) window(x float64, q int) (int, int) {
	n := len(f.xs)
	i0 := sort.SearchFloat64s(f.xs, x)
	i1 := i0
	for i1-i0 < q {
		if i0 == 0 {
			i1 = q
			break
		}
		if i1 == n {
			i0 = n - q
			break
		}
		if x-f.xs[i0-1] <= f.xs[i1]-x {
			i0--
		} else {
			i1++
		}
	}
	return i0, i1
}

func tricube(d float64) float64 {
	if d >= 1. {
		return 0.
	}
	u := 1. - d*d*d
	return u * u * u
}
