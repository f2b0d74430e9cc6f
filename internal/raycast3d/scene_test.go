package raycast3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSceneValidation(t *testing.T) {
	b := mustBox(t, Vector3{}, 1, 1, 1, 0)
	s, err := NewSphere(Vector3{}, 1, 0)
	require.NoError(t, err)

	_, err = NewScene(testMaterials(), []*Box{nil}, nil, nil)
	assert.Error(t, err)
	_, err = NewScene(testMaterials(), nil, []*Sphere{nil}, nil)
	assert.Error(t, err)

	_, err = NewScene(nil, []*Box{b}, nil, nil)
	assert.ErrorIs(t, err, ErrBadMaterialIndex)

	bad := &Sphere{Center: s.Center, Radius: 1, Material: 3}
	_, err = NewScene(testMaterials(), nil, []*Sphere{bad}, nil)
	assert.ErrorIs(t, err, ErrBadMaterialIndex)

	_, err = NewScene([]Material{{Reflection: -0.1}}, []*Box{b}, nil, nil)
	assert.Error(t, err)
}

func TestNewSceneOwnsItsSlices(t *testing.T) {
	b := mustBox(t, Vector3{}, 1, 1, 1, 0)
	mats := testMaterials()
	boxes := []*Box{b}
	lights := []Light{{Position: Vector3{1, 2, 3}, Intensity: RGB{1, 1, 1}}}

	s, err := NewScene(mats, boxes, nil, lights)
	require.NoError(t, err)
	assert.False(t, s.Empty())

	mats[0].Reflection = 0.75
	boxes[0] = nil
	lights[0].Position = Vector3{}
	assert.Equal(t, 0.5, s.Materials[0].Reflection)
	assert.Same(t, b, s.Boxes[0])
	assert.Equal(t, Vector3{1, 2, 3}, s.Lights[0].Position)

	empty, err := NewScene(mats, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestNewMaterialAndLight(t *testing.T) {
	m, err := NewMaterial(RGB{0.1, 0.2, 0.3}, 1)
	require.NoError(t, err)
	assert.Equal(t, Real(1), m.Reflection)

	_, err = NewMaterial(RGB{}, 1.01)
	assert.Error(t, err)
	_, err = NewMaterial(RGB{-1, 0, 0}, 0)
	assert.Error(t, err)

	_, err = NewLight(Vector3{}, RGB{0, 0, -0.1})
	assert.Error(t, err)
	l, err := NewLight(Vector3{1, 1, 1}, RGB{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, RGB{2, 2, 2}, l.Intensity)
}
