package stego

import (
	"runtime"
	"sync"
)

// parallelBlocks runs fn(blockIndex) for every blockIndex in [0,n),
// fanned out across a worker pool sized to the available CPUs. fn must
// only touch the memory owned by its own block index — the bit-to-block
// assignment that produced the work items must already be fixed by the
// sequential raster order before this runs, per the concurrency model:
// this only parallelises the independent per-block DCT work, never the
// order in which bits were assigned to blocks.
func parallelBlocks(n int, fn func(blockIndex int)) {
	if n <= 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
