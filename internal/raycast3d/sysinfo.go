package raycast3d

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// defaultWorkers returns the logical CPU count, falling back to the Go
// runtime's view when the host cannot be queried.
func defaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		DebugLogOnce("cpu.Counts failed (%v), using runtime.NumCPU", err)
		n = runtime.NumCPU()
	}
	return imax(n, 1)
}

func resolveWorkers(requested, rows int) int {
	w := requested
	if w <= 0 {
		w = defaultWorkers()
	}
	if w > rows {
		w = rows
	}
	return imax(w, 1)
}
