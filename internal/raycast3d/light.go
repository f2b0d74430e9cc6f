package raycast3d

import "fmt"

// Light is a point light. It is never occluded: no shadow rays are cast.
type Light struct {
	Position  Vector3
	Intensity RGB
}

func NewLight(pos Vector3, intensity RGB) (Light, error) {
	if intensity.R < 0 || intensity.G < 0 || intensity.B < 0 {
		return Light{}, fmt.Errorf("light intensity must be non-negative, got %+v", intensity)
	}
	return Light{Position: pos, Intensity: intensity}, nil
}
