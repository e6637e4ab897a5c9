package zircage

import (
	"fmt"
	"sort"
)

// NormalizeRagged reconciles a collection of independent paths of unequal
// length onto one shared time axis: the sorted union of all distinct time
// values. Each path's temperatures occupy the contiguous row range its own
// time sequence spans; rows outside it stay zero (path inactive). A path
// whose times do not match the global axis one-for-one over that range is
// rejected with a RaggedAlignmentError.
func NormalizeRagged(paths []TtPath) (*TtPaths, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("NormalizeRagged: no paths")
	}

	seen := make(map[float64]struct{})
	for _, pth := range paths {
		for _, t := range pth.Time {
			seen[t] = struct{}{}
		}
	}
	axis := make([]float64, 0, len(seen))
	for t := range seen {
		axis = append(axis, t)
	}
	sort.Float64s(axis)
	ix := make(map[float64]int, len(axis))
	for i, t := range axis {
		ix[t] = i
	}

	nt, np := len(axis), len(paths)
	m := make([][]float64, nt)
	for j := range m {
		m[j] = make([]float64, np)
	}
	for p, pth := range paths {
		if len(pth.Time) != len(pth.T) {
			return nil, fmt.Errorf("NormalizeRagged: path %d: length mismatch (%d times vs %d temperatures)", p, len(pth.Time), len(pth.T))
		}
		if len(pth.Time) == 0 {
			return nil, fmt.Errorf("NormalizeRagged: path %d is empty", p)
		}
		j0 := ix[pth.Time[0]]
		for k, t := range pth.Time {
			j := j0 + k
			if j >= nt || axis[j] != t {
				want := 0.
				if j < nt {
					want = axis[j]
				}
				return nil, &RaggedAlignmentError{Path: p, Index: k, Want: want, Got: t}
			}
			m[j][p] = pth.T[k]
		}
	}

	return &TtPaths{Time: axis, T: m}, nil
}
