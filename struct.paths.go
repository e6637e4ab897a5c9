package zircage

import (
	"encoding/gob"
	"fmt"
	"os"
)

// TtPaths holds a temperature-time ensemble on one shared, uniformly
// stepped time axis. T[j][p] is the temperature of path p at time step j;
// a value of exactly 0 marks the path inactive at that step.
type TtPaths struct {
	Time []float64   // [yr]
	T    [][]float64 // [time step][path] [°C]
}

func (tt *TtPaths) Nt() int { return len(tt.Time) }

func (tt *TtPaths) Np() int {
	if len(tt.T) == 0 {
		return 0
	}
	return len(tt.T[0])
}

// Dt returns the (uniform) time step.
func (tt *TtPaths) Dt() float64 {
	if len(tt.Time) < 2 {
		return 0.
	}
	return tt.Time[1] - tt.Time[0]
}

func (tt *TtPaths) CheckAndPrint() {
	fmt.Println("Tt ensemble summary:")
	nt, np := tt.Nt(), tt.Np()
	fmt.Printf(" %d paths over %d timesteps, dt = %.1f yr (%.3f to %.3f Ma)\n",
		np, nt, tt.Dt(), tt.Time[0]/1e6, tt.Time[nt-1]/1e6)

	tmx, tmn, na := tt.T[0][0], tt.T[0][0], 0
	for j := range tt.T {
		for p := range tt.T[j] {
			v := tt.T[j][p]
			if v == 0. {
				na++
				continue
			}
			if v > tmx {
				tmx = v
			}
			if v < tmn {
				tmn = v
			}
		}
	}
	fmt.Printf(" temperature range: %.1f to %.1f °C; %d inactive samples\n", tmn, tmx, na)
}

func (tt *TtPaths) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("TtPaths.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(tt); err != nil {
		f.Close()
		return fmt.Errorf("TtPaths.SaveGob %v", err)
	}
	return f.Close()
}

func LoadGobTtPaths(fp string) (*TtPaths, error) {
	var tt TtPaths
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&tt); err != nil {
		return nil, err
	}
	return &tt, nil
}

// TtPath is a single temperature-time trajectory with its own time axis,
// used for ragged ensembles whose paths cover unequal spans.
type TtPath struct {
	Time []float64 // [yr], ordered, aligned to some global axis
	T    []float64 // [°C]
}

// NewTtPath builds a path record, enforcing the length-match invariant.
func NewTtPath(time, temp []float64) (TtPath, error) {
	if len(time) != len(temp) {
		return TtPath{}, fmt.Errorf("NewTtPath: length mismatch (%d times vs %d temperatures)", len(time), len(temp))
	}
	if len(time) == 0 {
		return TtPath{}, fmt.Errorf("NewTtPath: empty path")
	}
	return TtPath{Time: time, T: temp}, nil
}
