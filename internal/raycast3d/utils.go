package raycast3d

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func fmax3(a, b, c Real) Real {
	return math.Max(a, math.Max(b, c))
}

// in01 reports whether x lies in [0,1].
func in01(x Real) bool { return x >= 0 && x <= 1 }

func abs(x Real) Real {
	if x < 0 {
		return -x
	}
	return x
}
