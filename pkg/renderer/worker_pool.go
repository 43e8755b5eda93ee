package renderer

import (
	"image"
	"runtime"
	"sync"
)

// renderRows distributes rows across a fixed pool of workers. Each row gets
// its own deterministic sampler, so results do not depend on which worker
// picks up which row.
func (r *Renderer) renderRows(img *image.RGBA) {
	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, r.config.Height)
	for j := 0; j < r.config.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(img, j, r.rowSampler(j))
			}
		}()
	}
	wg.Wait()
}
