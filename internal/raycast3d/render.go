package raycast3d

import (
	"sync"
	"sync/atomic"
	"time"
)

type RenderMode string

const (
	ModeShade RenderMode = "shade" // full reflection traversal
	ModeFlat  RenderMode = "flat"  // unshaded silhouettes
)

// RenderStats summarizes one pass.
type RenderStats struct {
	Pixels   int64
	Bounces  int64
	Ends     [numCategories]int64 // per termination category (shade mode)
	Hits     int64                // flat mode: pixels covered by a primitive
	Workers  int
	Duration time.Duration
}

// render fills fb. Rows are dealt round-robin to workers, so every pixel is
// written by exactly one goroutine and no locking is needed.
func render(tr *Tracer, cam Camera, fb *Framebuffer, mode RenderMode, workers int) RenderStats {
	W, H := fb.Width, fb.Height
	workers = resolveWorkers(workers, H)
	stats := RenderStats{Workers: workers}

	totalRows := int64(H)
	var rowsDone int64
	nextPrint := int64(1)
	if totalRows >= 100 {
		nextPrint = totalRows / 100 // ~1%
	}

	local := make([]RenderStats, workers)
	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			st := &local[wid]
			for y := wid; y < H; y += workers {
				for x := 0; x < W; x++ {
					r := cam.PrimaryRay(x, y, W, H)
					var c RGB
					if mode == ModeFlat {
						var hit bool
						if c, hit = tr.Silhouette(r); hit {
							st.Hits++
						}
					} else {
						res := tr.Trace(r)
						c = res.Color
						st.Bounces += int64(res.Bounces)
						st.Ends[res.End]++
					}
					// x, y are in range by construction
					_ = fb.Set(x, y, c)
					st.Pixels++
				}
				done := atomic.AddInt64(&rowsDone, 1)
				if done%nextPrint == 0 {
					Log().Infof("[PROGRESS] %.2f%%", Real(done)*100/Real(totalRows))
				}
			}
		}()
	}
	wg.Wait()

	for _, st := range local {
		stats.Pixels += st.Pixels
		stats.Bounces += st.Bounces
		stats.Hits += st.Hits
		for c := range st.Ends {
			stats.Ends[c] += st.Ends[c]
		}
	}
	stats.Duration = time.Since(start)
	return stats
}
