package zircage

import (
	"errors"
	"fmt"
)

// ErrFlatSaturation is returned when the incremental saturation curve is
// uniformly zero and the count rescale would divide by zero.
var ErrFlatSaturation = errors.New("zircage: incremental zircon fraction is uniformly zero")

// ErrNoMeasurableZircons is returned when the assembled zircon matrix sums
// to zero and no sampling probability can be formed.
var ErrNoMeasurableZircons = errors.New("zircage: no measurable zircons in selected paths")

// ShortResidenceError reports that no path resided in the saturation window
// long enough to grow a measurable zircon population.
type ShortResidenceError struct {
	LongestTrace float64 // longest available residence [yr]
	TimeZrGrowth float64 // configured minimum [yr]
}

func (e *ShortResidenceError) Error() string {
	return fmt.Sprintf("zircage: no path exceeds the minimum residence time: longest trace is %.0f yr against time_zr_growth = %.0f yr; lower time_zr_growth",
		e.LongestTrace, e.TimeZrGrowth)
}

// RaggedAlignmentError reports a path whose time values do not form a
// contiguous subsequence of the global time axis.
type RaggedAlignmentError struct {
	Path  int
	Index int     // offending sample index within the path
	Want  float64 // global axis value
	Got   float64 // path value
}

func (e *RaggedAlignmentError) Error() string {
	return fmt.Sprintf("zircage: path %d misaligned at sample %d: time %.6f does not match global axis value %.6f",
		e.Path, e.Index, e.Got, e.Want)
}
