package raycast3d

import (
	"math/rand"
	"sync"
	"time"
)

// estimateCoverage fires trials primary rays through random pixels on
// workers goroutines (<= 0: one per logical CPU) and returns the fraction
// that hit a primitive within tr.MaxDistance.
func estimateCoverage(tr *Tracer, cam Camera, width, height, trials, workers int) Real {
	if trials <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	workers = resolveWorkers(workers, trials)

	per, rem := trials/workers, trials%workers
	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)

	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			localHits := 0
			for i := 0; i < n; i++ {
				r := cam.PrimaryRay(rng.Intn(width), rng.Intn(height), width, height)
				if _, ok := nearestHit(tr.Scene, r, tr.hitEpsilon(), tr.MaxDistance); ok {
					localHits++
				}
			}
			hitsCh <- localHits
		}(w, n)
	}

	wg.Wait()
	close(hitsCh)

	totalHits := 0
	for h := range hitsCh {
		totalHits += h
	}
	return Real(totalHits) / Real(trials)
}
