package raycast3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrthoCameraPrimaryRay(t *testing.T) {
	cam, err := NewOrthoCamera(OrthoZ, 1, 0, 0)
	require.NoError(t, err)
	r := cam.PrimaryRay(500, 250, 1000, 1000)
	assert.Equal(t, Vector3{500, 250, -2000}, r.Origin)
	assert.Equal(t, Vector3{0, 0, 1}, r.Direction)

	cam, err = NewOrthoCamera(-5, 0.5, 10, -10)
	require.NoError(t, err)
	r = cam.PrimaryRay(4, 8, 16, 16)
	assert.Equal(t, Vector3{12, -6, -5}, r.Origin)

	_, err = NewOrthoCamera(0, 0, 0, 0)
	assert.Error(t, err)
}

func TestPinholeCameraCentreAndUnitLength(t *testing.T) {
	cam, err := NewPinholeCamera(Vector3{0, 0, -10}, Vector3{0, 0, 0}, Vector3{0, 1, 0}, 60)
	require.NoError(t, err)

	const w, h = 101, 51
	r := cam.PrimaryRay(50, 25, w, h)
	assert.Equal(t, Vector3{0, 0, -10}, r.Origin)
	assert.InDelta(t, 0, r.Direction.X, 1e-12)
	assert.InDelta(t, 0, r.Direction.Y, 1e-12)
	assert.InDelta(t, 1, r.Direction.Z, 1e-12)

	for _, px := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}, {17, 33}} {
		d := cam.PrimaryRay(px[0], px[1], w, h).Direction
		assert.InDelta(t, 1, d.Len(), 1e-12, "pixel %v", px)
	}

	// row 0 is the top of the view
	assert.Greater(t, cam.PrimaryRay(50, 0, w, h).Direction.Y, 0.0)
	assert.Less(t, cam.PrimaryRay(50, h-1, w, h).Direction.Y, 0.0)

	// the vertical half-angle at the border matches the fov
	top := cam.PrimaryRay(50, 0, w, h).Direction
	half := math.Atan2(top.Y, top.Z) * 180 / math.Pi
	assert.InDelta(t, 30*(1-1.0/h), half, 0.5)
}

func TestPinholeCameraValidation(t *testing.T) {
	eye, at, up := Vector3{0, 0, -10}, Vector3{}, Vector3{0, 1, 0}
	for _, fov := range []Real{0, -10, 180, 200} {
		_, err := NewPinholeCamera(eye, at, up, fov)
		assert.Error(t, err, "fov %.1f", fov)
	}
	_, err := NewPinholeCamera(eye, eye, up, 60)
	assert.Error(t, err)
	_, err = NewPinholeCamera(eye, at, Vector3{0, 0, 3}, 60)
	assert.Error(t, err)
}
