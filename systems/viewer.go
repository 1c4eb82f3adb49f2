package systems

import (
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/gamemath"
	"github.com/automoto/xrmotion/interp"
	"github.com/automoto/xrmotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewers moves the viewer along its waypoints, places the camera and
// notifies ViewersUpdated subscribers.
func UpdateViewers(e *ecs.ECS) {
	viewerEntry, ok := tags.Viewer.First(e.World)
	if !ok {
		return // no viewer in the scene, nothing to look at
	}
	viewer := components.Viewer.Get(viewerEntry)
	transform := components.Transform.Get(viewerEntry)

	updateViewerPath(viewer, transform)
	viewer.CameraPosition = CameraPositionFor(transform.Position)

	viewer.Frame++
	ViewersUpdated.Publish(e.World, ViewersUpdatedEvent{
		Frame:          viewer.Frame,
		CameraPosition: viewer.CameraPosition,
		HasCamera:      viewer.HasCamera,
	})
	ViewersUpdated.ProcessEvents(e.World)
}

// updateViewerPath eases the viewer toward its current waypoint and advances
// to the next one on arrival or when the waypoint's frame budget runs out.
func updateViewerPath(viewer *components.ViewerData, transform *components.TransformData) {
	if len(viewer.Waypoints) == 0 {
		return
	}
	if viewer.Follow == nil {
		viewer.Follow = interp.NewSmoother(interp.NewVec3(config.Viewer.FollowSmoothing, false))
	}

	target := viewer.Waypoints[viewer.NextWaypoint%len(viewer.Waypoints)]
	transform.Position = viewer.Follow.Follow(transform.Position, target, config.C.DeltaTime())
	viewer.FramesOnWaypoint++

	arrived := transform.Position.Sub(target).Len() <= config.Viewer.ArriveDistance
	if arrived || (viewer.FramesPerWaypoint > 0 && viewer.FramesOnWaypoint >= viewer.FramesPerWaypoint) {
		viewer.NextWaypoint = (viewer.NextWaypoint + 1) % len(viewer.Waypoints)
		viewer.FramesOnWaypoint = 0
	}
}

// CameraPositionFor returns the camera position for a viewer standing at origin.
func CameraPositionFor(origin mgl64.Vec3) mgl64.Vec3 {
	return origin.Add(gamemath.WorldUp.Mul(config.Viewer.EyeHeight))
}

// LocalViewerPosition returns the local camera position. It reports false when
// the scene has no viewer or the viewer has no camera.
func LocalViewerPosition(w donburi.World) (mgl64.Vec3, bool) {
	viewerEntry, ok := tags.Viewer.First(w)
	if !ok {
		return mgl64.Vec3{}, false
	}
	viewer := components.Viewer.Get(viewerEntry)
	if !viewer.HasCamera {
		return mgl64.Vec3{}, false
	}
	return viewer.CameraPosition, true
}

// MoveViewer places the viewer rig at origin and updates the camera immediately.
func MoveViewer(w donburi.World, origin mgl64.Vec3) {
	viewerEntry, ok := tags.Viewer.First(w)
	if !ok {
		return
	}
	components.Transform.Get(viewerEntry).Position = origin
	viewer := components.Viewer.Get(viewerEntry)
	viewer.CameraPosition = CameraPositionFor(origin)
	if viewer.Follow != nil {
		viewer.Follow.Reset()
	}
}
