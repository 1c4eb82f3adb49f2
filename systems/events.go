package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/features/events"
)

// ViewersUpdatedEvent is published once per frame after the viewer has moved.
type ViewersUpdatedEvent struct {
	Frame          int
	CameraPosition mgl64.Vec3
	HasCamera      bool
}

// ViewersUpdated fires after UpdateViewers has placed the local camera.
var ViewersUpdated = events.NewEventType[ViewersUpdatedEvent]()
