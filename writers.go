package zircage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
)

// WriteFloats dumps f as little-endian float32, the layout the plotting
// collaborators read.
func WriteFloats(fp string, f []float64) error {
	f32 := make([]float32, len(f))
	for i, v := range f {
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("WriteFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("WriteFloats failed: %v", err)
	}
	return nil
}

// WriteAgeCSV writes the eruptible-age axis [yr] and its sampling
// probability side by side.
func WriteAgeCSV(fp string, aw *AgeWindows) error {
	lns := make([]string, len(aw.AgesEruptible)+1)
	lns[0] = "age_yr,n_measurable,prob"
	for j, a := range aw.AgesEruptible {
		lns[j+1] = fmt.Sprintf("%f,%f,%g", a, aw.NMeasurableAges[j], aw.Prob[j])
	}
	return writeLines(fp, lns)
}

// WritePDFCSV writes one density curve (axis in Ma).
func WritePDFCSV(fp string, timeMa, pdf []float64) error {
	if len(timeMa) != len(pdf) {
		return fmt.Errorf("WritePDFCSV: length mismatch (%d vs %d)", len(timeMa), len(pdf))
	}
	lns := make([]string, len(timeMa)+1)
	lns[0] = "time_Ma,density"
	for j := range timeMa {
		lns[j+1] = fmt.Sprintf("%f,%g", timeMa[j], pdf[j])
	}
	return writeLines(fp, lns)
}

func writeLines(fp string, lns []string) error {
	if err := os.WriteFile(fp, []byte(strings.Join(lns, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("writeLines failed: %v", err)
	}
	return nil
}
