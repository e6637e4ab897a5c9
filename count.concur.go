package zircage

import (
	"runtime"
	"sync"

	"github.com/magmalab/zircage/loess"
)

// CountZirconsConcurrent is CountZircons distributed over a worker pool.
// Workers share the read-only fit and write disjoint path columns, so the
// only synchronization is the join at the end. nwrkrs < 1 uses all CPUs.
func CountZirconsConcurrent(fit *loess.Fit, cfg ZirconConfig, T [][]float64, nwrkrs int) [][]float64 {
	nt := len(T)
	np := 0
	if nt > 0 {
		np = len(T[0])
	}
	out := make([][]float64, nt)
	for j := range out {
		out[j] = make([]float64, np)
	}
	if nwrkrs < 1 {
		nwrkrs = runtime.NumCPU()
	}

	jobs := make(chan int, nwrkrs)
	var wg sync.WaitGroup
	wg.Add(nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				countColumn(fit, cfg, T, out, p)
			}
		}()
	}
	for p := 0; p < np; p++ {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	return out
}
