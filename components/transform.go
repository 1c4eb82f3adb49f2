package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the world-space placement of a scene object.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns a transform at position with no rotation.
func NewTransform(position mgl64.Vec3) TransformData {
	return TransformData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	}
}

var Transform = donburi.NewComponentType[TransformData]()
