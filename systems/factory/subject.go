package factory

import (
	"github.com/automoto/xrmotion/archetypes"
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/gamemath"
	"github.com/automoto/xrmotion/interp"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSubject spawns a named scene object at position, turned yaw degrees
// around the world up axis.
func CreateSubject(ecs *ecs.ECS, name string, position mgl64.Vec3, yaw float64, tint interp.Color) *donburi.Entry {
	subject := archetypes.Subject.Spawn(ecs)

	components.Name.SetValue(subject, components.NameData{Name: name})
	components.Transform.SetValue(subject, components.TransformData{
		Position: position,
		Rotation: gamemath.YawRotation(yaw),
	})
	components.Tint.SetValue(subject, components.TintData{Color: tint})

	return subject
}

// FindSubject returns the subject with the given name.
func FindSubject(w donburi.World, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Name.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Name.Get(e).Name == name {
			found = e
		}
	})
	return found, found != nil
}
