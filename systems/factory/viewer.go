package factory

import (
	"github.com/automoto/xrmotion/archetypes"
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewer spawns the local viewer rig at origin. The viewer walks the
// waypoints in order, spending at most framesPerWaypoint frames on each
// (0 selects config.Viewer.FramesPerWaypoint).
func CreateViewer(ecs *ecs.ECS, origin mgl64.Vec3, hasCamera bool, waypoints []mgl64.Vec3, framesPerWaypoint int) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)

	if framesPerWaypoint <= 0 {
		framesPerWaypoint = config.Viewer.FramesPerWaypoint
	}

	components.Transform.SetValue(viewer, components.NewTransform(origin))
	components.Viewer.SetValue(viewer, components.ViewerData{
		HasCamera:         hasCamera,
		CameraPosition:    systems.CameraPositionFor(origin),
		Waypoints:         waypoints,
		FramesPerWaypoint: framesPerWaypoint,
	})

	return viewer
}
