package raycast3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps a pixel of a width x height image to a primary ray.
type Camera interface {
	PrimaryRay(x, y, width, height int) Ray
}

// OrthoCamera fires parallel rays along +Z, one per pixel, from the plane
// z = OriginZ. Pixel (x, y) starts at (OffsetX + x*Scale, OffsetY + y*Scale).
type OrthoCamera struct {
	OriginZ          Real
	Scale            Real
	OffsetX, OffsetY Real
}

func NewOrthoCamera(originZ, scale, offsetX, offsetY Real) (*OrthoCamera, error) {
	if !(scale > 0) {
		return nil, fmt.Errorf("ortho camera scale must be >0, got %.6g", scale)
	}
	return &OrthoCamera{OriginZ: originZ, Scale: scale, OffsetX: offsetX, OffsetY: offsetY}, nil
}

func (c *OrthoCamera) PrimaryRay(x, y, _, _ int) Ray {
	return Ray{
		Origin:    Vector3{c.OffsetX + Real(x)*c.Scale, c.OffsetY + Real(y)*c.Scale, c.OriginZ},
		Direction: Vector3{0, 0, 1},
	}
}

// PinholeCamera is a perspective camera looking from Eye towards LookAt.
// Row 0 of the image is the top of the view.
type PinholeCamera struct {
	Eye     Vector3
	FOVDeg  Real // vertical field of view
	toWorld mgl64.Mat4
	tanHalf Real
}

func NewPinholeCamera(eye, lookAt, up Vector3, fovDeg Real) (*PinholeCamera, error) {
	if !(fovDeg > 0 && fovDeg < 180) {
		return nil, fmt.Errorf("fov must be in (0, 180) degrees, got %.6g", fovDeg)
	}
	fwd := lookAt.Sub(eye)
	if fwd.Dot(fwd) == 0 {
		return nil, fmt.Errorf("eye and lookAt must differ, both are %+v", eye)
	}
	if fwd.Mgl().Cross(up.Mgl()).Len() == 0 {
		return nil, fmt.Errorf("up %+v must not be parallel to the view direction %+v", up, fwd)
	}
	view := mgl64.LookAtV(eye.Mgl(), lookAt.Mgl(), up.Mgl())
	c := &PinholeCamera{
		Eye:     eye,
		FOVDeg:  fovDeg,
		toWorld: view.Inv(),
		tanHalf: math.Tan(mgl64.DegToRad(fovDeg) / 2),
	}
	DebugLog("Created pinhole camera: eye=%+v lookAt=%+v up=%+v fov=%.2f", eye, lookAt, up, fovDeg)
	return c, nil
}

func (c *PinholeCamera) PrimaryRay(x, y, width, height int) Ray {
	aspect := Real(width) / Real(imax(height, 1))
	px := (2*(Real(x)+0.5)/Real(width) - 1) * aspect * c.tanHalf
	py := (1 - 2*(Real(y)+0.5)/Real(height)) * c.tanHalf
	// view space looks down -Z
	d := c.toWorld.Mul4x1(mgl64.Vec4{px, py, -1, 0}).Vec3()
	return Ray{Origin: c.Eye, Direction: vec3FromMgl(d).Norm()}
}
