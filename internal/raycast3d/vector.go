package raycast3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Real = float64

// Vector3 is a position or a direction in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// axis returns component i (0=X, 1=Y, 2=Z).
func (v Vector3) axis(i int) Real {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v Vector3) Mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func vec3FromMgl(v mgl64.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }
