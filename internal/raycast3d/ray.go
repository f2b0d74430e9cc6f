package raycast3d

// Ray is a half-line. Direction does not have to be unit length for the
// intersection tests; the traversal keeps reflected directions unit length.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns Origin + t*Direction.
func (r Ray) At(t Real) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
