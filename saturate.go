package zircage

import (
	"fmt"
	"math"

	"github.com/magmalab/zircage/loess"
	"gonum.org/v1/gonum/floats"
)

// ZirconFraction returns the saturated zircon volume fraction at each
// temperature [°C], clamped at zero:
//
//	A(T) = max_x_zr · (1.62 − 1.8e4·exp(−1e4/(T+273.15)))
//
// ref: Kelsey etal 2008, Tierney etal 2016 (zircon saturation in felsic melts)
func ZirconFraction(T []float64, maxXZr float64) []float64 {
	x := make([]float64, len(T))
	for i, t := range T {
		v := maxXZr * (1.62 - 1.8e4*math.Exp(-1e4/(t+273.15)))
		if v < 0. {
			v = 0.
		}
		x[i] = v
	}
	return x
}

// calcGrids builds the calculation grid Tsol..TcalMax in TcalStep
// increments, and a fit grid of the same point count spanning Tsol..Tsat.
func (cfg ZirconConfig) calcGrids() (tcal, tfit []float64) {
	n := int(math.Floor((cfg.TcalMax-cfg.Tsol)/cfg.TcalStep)) + 1
	tcal = make([]float64, n)
	for i := range tcal {
		tcal[i] = cfg.Tsol + float64(i)*cfg.TcalStep
	}
	tfit = floats.Span(make([]float64, n), cfg.Tsol, cfg.Tsat)
	return tcal, tfit
}

// SaturationFit fits the smoothed incremental zircon-count curve over the
// saturation window. The incremental fraction is the negated first
// difference of the saturated fraction along the calculation grid (first
// element duplicated, having no predecessor), rescaled to ZirconNumber,
// ceiled, and shifted down by its smallest floor so the lowest bin sits
// near zero. Fitting is full-span loess in saturation-temperature space.
func SaturationFit(cfg ZirconConfig) (*loess.Fit, error) {
	if cfg.TcalStep <= 0. {
		return nil, fmt.Errorf("SaturationFit: TcalStep %f must be positive", cfg.TcalStep)
	}
	tcal, tfit := cfg.calcGrids()

	xzr := ZirconFraction(tcal, cfg.MaxXZr)
	nzr := make([]float64, len(xzr))
	for i := 1; i < len(xzr); i++ {
		nzr[i] = -(xzr[i] - xzr[i-1])
	}
	nzr[0] = nzr[1]

	mx := floats.Max(nzr)
	if mx <= 0. {
		return nil, fmt.Errorf("SaturationFit (Tsol=%.1f TcalMax=%.1f max_x_zr=%g): %w",
			cfg.Tsol, cfg.TcalMax, cfg.MaxXZr, ErrFlatSaturation)
	}

	nz := make([]float64, len(nzr))
	minFloor := math.Inf(1)
	for i, v := range nzr {
		s := v * float64(cfg.ZirconNumber) / mx
		nz[i] = math.Ceil(s)
		if f := math.Floor(s); f < minFloor {
			minFloor = f
		}
	}
	for i := range nz {
		nz[i] -= minFloor
	}

	fit, err := loess.New(tfit, nz, 1., 2)
	if err != nil {
		return nil, fmt.Errorf("SaturationFit: %v", err)
	}
	return fit, nil
}
