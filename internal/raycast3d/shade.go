package raycast3d

import "math"

// shade sums the Lambertian contribution of every light at p.
// n must be unit length. Lights behind the surface (n·toLight <= 0) or at
// zero distance are skipped. Lights are never occluded.
func shade(scene *Scene, p, n Vector3, mat Material, coef Real, gain RGB) RGB {
	var c RGB
	for _, L := range scene.Lights {
		toLight := L.Position.Sub(p)
		if n.Dot(toLight) <= 0 {
			continue
		}
		dist := math.Sqrt(toLight.Dot(toLight))
		if dist <= 0 {
			continue
		}
		lambert := toLight.Mul(1/dist).Dot(n) * coef
		c.R += lambert * L.Intensity.R * mat.Diffuse.R * gain.R
		c.G += lambert * L.Intensity.G * mat.Diffuse.G * gain.G
		c.B += lambert * L.Intensity.B * mat.Diffuse.B * gain.B
	}
	return c
}
