package raycast3d

import "math"

// reflect3 mirrors I about N (N unit). For unit I the result is unit too;
// it is renormalized anyway to keep rounding from drifting over bounces.
func reflect3(I, N Vector3) Vector3 {
	R := I.Sub(N.Mul(2 * I.Dot(N)))
	if l2 := R.Dot(R); l2 > 0 {
		R = R.Mul(1 / math.Sqrt(l2))
	}
	return R
}
