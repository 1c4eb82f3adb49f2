package components

import (
	"github.com/automoto/xrmotion/interp"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ViewerData is the local viewer rig. The camera sits EyeHeight above the rig
// origin held in the entity transform.
type ViewerData struct {
	HasCamera      bool
	CameraPosition mgl64.Vec3
	Frame          int // viewer updates published so far

	Waypoints         []mgl64.Vec3
	NextWaypoint      int
	FramesPerWaypoint int
	FramesOnWaypoint  int // frames spent travelling to the current waypoint
	Follow            *interp.Smoother[mgl64.Vec3]
}

var Viewer = donburi.NewComponentType[ViewerData]()
