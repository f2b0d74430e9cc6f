package raycast3d

import (
	"errors"
	"fmt"
)

var ErrBadMaterialIndex = errors.New("material index out of range")

// Scene owns every primitive, light and material. Primitives refer to
// materials by index. A Scene is never mutated after NewScene, so any number
// of goroutines may read it during a render pass.
type Scene struct {
	Boxes     []*Box
	Spheres   []*Sphere
	Lights    []Light
	Materials []Material
}

// NewScene validates material references and takes ownership of the slices.
func NewScene(materials []Material, boxes []*Box, spheres []*Sphere, lights []Light) (*Scene, error) {
	for i, b := range boxes {
		if b == nil {
			return nil, fmt.Errorf("box #%d is nil", i)
		}
		if b.Material < 0 || b.Material >= len(materials) {
			return nil, fmt.Errorf("box #%d: %w: %d (have %d materials)", i, ErrBadMaterialIndex, b.Material, len(materials))
		}
	}
	for i, s := range spheres {
		if s == nil {
			return nil, fmt.Errorf("sphere #%d is nil", i)
		}
		if s.Material < 0 || s.Material >= len(materials) {
			return nil, fmt.Errorf("sphere #%d: %w: %d (have %d materials)", i, ErrBadMaterialIndex, s.Material, len(materials))
		}
	}
	for i, m := range materials {
		if !in01(m.Reflection) {
			return nil, fmt.Errorf("material #%d: reflection must be in [0,1], got %.6g", i, m.Reflection)
		}
	}
	s := &Scene{
		Boxes:     append([]*Box(nil), boxes...),
		Spheres:   append([]*Sphere(nil), spheres...),
		Lights:    append([]Light(nil), lights...),
		Materials: append([]Material(nil), materials...),
	}
	DebugLog("Created scene: boxes=%d spheres=%d lights=%d materials=%d", len(s.Boxes), len(s.Spheres), len(s.Lights), len(s.Materials))
	return s, nil
}

// Empty reports whether the scene has no primitives.
func (s *Scene) Empty() bool { return len(s.Boxes) == 0 && len(s.Spheres) == 0 }
