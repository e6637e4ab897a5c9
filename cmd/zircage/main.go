package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/magmalab/zircage"
	"github.com/maseology/mmio"
	"golang.org/x/exp/rand"
)

func main() {
	var (
		in   = flag.String("i", "", "Tt-path input: whitespace-delimited text (col 1 time [s], remaining cols temperature [°C]) or a .gob ensemble")
		out  = flag.String("o", "zircage.", "output file prefix")
		n    = flag.Int("n", 300, "number of age analyses to resample per path")
		bw   = flag.Float64("bw", 1e5, "KDE bandwidth [yr]")
		seed = flag.Uint64("seed", 0, "random seed (0 = time-based)")
		nwrk = flag.Int("w", 0, "counter workers (0 = all CPUs)")
	)
	flag.Parse()
	if *in == "" {
		log.Fatalln("usage: zircage -i tt-paths.txt [-o prefix] [-n 300] [-bw 1e5] [-seed 1] [-w 0]")
	}

	tmr := mmio.NewTimer()

	var tt *zircage.TtPaths
	var err error
	if strings.HasSuffix(*in, ".gob") {
		tt, err = zircage.LoadGobTtPaths(*in)
	} else {
		tt, err = zircage.ReadTtPaths(*in)
	}
	if err != nil {
		log.Fatalf("Fatal error: read failed: %v", err)
	}
	tt.CheckAndPrint()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	res, err := zircage.ComputeZirconAges(zircage.DefaultConfig(), tt, *n, *bw, rand.NewSource(*seed), *nwrk)
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}

	fmt.Printf(" %d of %d paths selected; max age spread %.0f yr\n",
		len(res.Sel.Selected), tt.Np(), res.Sel.MaxAgeSpread)

	chkerr := func(err error) {
		if err != nil {
			log.Fatalf("Fatal error: write failed: %v", err)
		}
	}
	chkerr(zircage.WriteAgeCSV(*out+"ages.csv", res.Ages))
	chkerr(zircage.WritePDFCSV(*out+"pdf-average.csv", res.PDF.TimeMaAverage, res.PDF.PDFZirconAverage))
	for i := range res.PDF.PDFZircons {
		chkerr(zircage.WritePDFCSV(fmt.Sprintf("%spdf-%d.csv", *out, i), res.PDF.TimeMa[i], res.PDF.PDFZircons[i]))
	}
	chkerr(zircage.WriteFloats(*out+"tmean.bin", res.Sel.Tmean))
	chkerr(zircage.WriteFloats(*out+"tsd.bin", res.Sel.Tsd))

	tmr.Print("complete")
}
