package raycast3d

import "fmt"

// Box is an axis-aligned box. Length, Width and Height are full extents
// along X, Y and Z respectively.
type Box struct {
	Center                Vector3
	Length, Width, Height Real
	Material              int

	// cached
	Min, Max Vector3
	tol      Real // plane-matching tolerance for face normals
}

func NewBox(center Vector3, length, width, height Real, material int) (*Box, error) {
	if !(length > 0 && width > 0 && height > 0) {
		return nil, fmt.Errorf("box extents must be >0, got length=%.6g width=%.6g height=%.6g", length, width, height)
	}
	if material < 0 {
		return nil, fmt.Errorf("box material index must be >= 0, got %d", material)
	}
	half := Vector3{length * 0.5, width * 0.5, height * 0.5}
	b := &Box{
		Center:   center,
		Length:   length,
		Width:    width,
		Height:   height,
		Material: material,
		Min:      center.Sub(half),
		Max:      center.Add(half),
		tol:      faceEps * fmax3(1, fmax3(length, width, height), fmax3(abs(center.X), abs(center.Y), abs(center.Z))),
	}
	DebugLog("Created box: center=%+v size=(%.3f, %.3f, %.3f) material=%d", center, length, width, height, material)
	return b, nil
}

// bounds returns the slab of axis i, derived only from that axis' center and extent.
func (b *Box) bounds(i int) (lo, hi Real) {
	return b.Min.axis(i), b.Max.axis(i)
}

// intersectRayBox is the slab test. It reports whether the ray's line
// crosses the box together with the entry and exit distances. tNear may be
// negative (origin inside or box behind); callers decide what is "ahead".
func intersectRayBox(r Ray, b *Box) (ok bool, tNear, tFar Real) {
	tNear, tFar = slabNear, slabFar
	for i := 0; i < 3; i++ {
		o, d := r.Origin.axis(i), r.Direction.axis(i)
		lo, hi := b.bounds(i)
		if d == 0 {
			// parallel: inside this slab constrains nothing, outside misses
			if o < lo || o > hi {
				return false, 0, 0
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
	}
	if tFar < tNear {
		return false, 0, 0
	}
	return true, tNear, tFar
}

// faceNormal returns the outward axis-aligned normal of the face p lies on.
// Points on an edge or corner (two or more planes) and points on no plane
// yield the zero vector.
func (b *Box) faceNormal(p Vector3) Vector3 {
	var n Vector3
	matches := 0
	for i := 0; i < 3; i++ {
		lo, hi := b.bounds(i)
		v := p.axis(i)
		var s Real
		switch {
		case abs(v-lo) <= b.tol:
			s = -1
		case abs(v-hi) <= b.tol:
			s = 1
		default:
			continue
		}
		matches++
		switch i {
		case 0:
			n.X = s
		case 1:
			n.Y = s
		default:
			n.Z = s
		}
	}
	if matches != 1 {
		return Vector3{}
	}
	return n
}
