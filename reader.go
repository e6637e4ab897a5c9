package zircage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

const secPerYr = 365. * 24. * 3600.

// ReadTtPaths loads a whitespace-delimited Tt ensemble: column 1 is time in
// seconds (converted here to years), remaining columns are per-path
// temperatures [°C]. Blank lines are skipped; every data line must carry
// the same column count.
func ReadTtPaths(fp string) (*TtPaths, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("ReadTtPaths: %v", err)
	}

	var tt TtPaths
	ncol := -1
	for i, ln := range lns {
		flds := strings.Fields(ln)
		if len(flds) == 0 {
			continue
		}
		if ncol < 0 {
			ncol = len(flds)
			if ncol < 2 {
				return nil, fmt.Errorf("ReadTtPaths: line %d: need a time column and at least one path", i+1)
			}
		} else if len(flds) != ncol {
			return nil, fmt.Errorf("ReadTtPaths: line %d: %d columns, expected %d", i+1, len(flds), ncol)
		}

		row := make([]float64, ncol-1)
		for c, s := range flds {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadTtPaths: line %d col %d: %v", i+1, c+1, err)
			}
			if c == 0 {
				tt.Time = append(tt.Time, v/secPerYr)
			} else {
				row[c-1] = v
			}
		}
		tt.T = append(tt.T, row)
	}
	if len(tt.Time) == 0 {
		return nil, fmt.Errorf("ReadTtPaths: %s holds no data", fp)
	}
	return &tt, nil
}
