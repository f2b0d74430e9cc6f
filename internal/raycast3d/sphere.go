package raycast3d

import (
	"fmt"
	"math"
)

type Sphere struct {
	Center   Vector3
	Radius   Real
	Material int
}

func NewSphere(center Vector3, radius Real, material int) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be >0, got %.6g", radius)
	}
	if material < 0 {
		return nil, fmt.Errorf("sphere material index must be >= 0, got %d", material)
	}
	s := &Sphere{Center: center, Radius: radius, Material: material}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

// sphereDiscriminant returns the quadratic terms of |o + t*d - c|^2 = r^2.
func sphereDiscriminant(r Ray, s *Sphere) (a, b, disc Real) {
	dist := r.Origin.Sub(s.Center)
	a = r.Direction.Dot(r.Direction)
	b = 2 * r.Direction.Dot(dist)
	c := dist.Dot(dist) - s.Radius*s.Radius
	return a, b, b*b - 4*a*c
}

// raySphereOverlaps is the distance-free test: true when the ray's line
// touches the sphere at all, in front of the origin or behind it.
func raySphereOverlaps(r Ray, s *Sphere) bool {
	_, _, disc := sphereDiscriminant(r, s)
	return disc >= 0
}

// intersectRaySphere returns the nearer root when it lies in (tMin, tMax).
func intersectRaySphere(r Ray, s *Sphere, tMin, tMax Real) (Real, bool) {
	a, b, disc := sphereDiscriminant(r, s)
	if disc < 0 || a == 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(disc)
	inv2a := 1 / (2 * a)
	t0 := (-b - sqrtD) * inv2a
	t1 := (-b + sqrtD) * inv2a
	if t0 > t1 {
		t0 = t1
	}
	if t0 > tMin && t0 < tMax {
		return t0, true
	}
	return 0, false
}

// normalAt is the outward unit normal for a point on the surface.
func (s *Sphere) normalAt(p Vector3) Vector3 {
	return p.Sub(s.Center).Norm()
}
