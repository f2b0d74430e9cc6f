package raycast3d

import "fmt"

// RGB stores color components. Diffuse colors and intensities should be in [0,1];
// accumulated radiance is unbounded until quantization.
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(o RGB) RGB  { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) IsBlack() bool  { return c.R == 0 && c.G == 0 && c.B == 0 }
func (c RGB) ch(i int) Real {
	switch i {
	case ChR:
		return c.R
	case ChG:
		return c.G
	default:
		return c.B
	}
}

// Material is shared by index between primitives.
type Material struct {
	Diffuse    RGB
	Reflection Real // energy kept per bounce, [0,1]
}

func NewMaterial(diffuse RGB, reflection Real) (Material, error) {
	if !in01(reflection) {
		return Material{}, fmt.Errorf("reflection must be in [0,1], got %.6g", reflection)
	}
	if diffuse.R < 0 || diffuse.G < 0 || diffuse.B < 0 {
		return Material{}, fmt.Errorf("diffuse must be non-negative, got %+v", diffuse)
	}
	return Material{Diffuse: diffuse, Reflection: reflection}, nil
}
