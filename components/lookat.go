package components

import "github.com/yohamta/donburi"

// LookAtData keeps an object oriented toward the local viewer camera.
type LookAtData struct {
	AllowRotateAroundVertical   bool // may change yaw
	AllowRotateAroundHorizontal bool // may change pitch
	InvertedForwardAxis         bool // forward points away from the viewer
	OnlyOnce                    bool // stop after the first successful update

	Active bool // subscribed to viewer updates
	Fired  bool // latched after the first update when OnlyOnce is set, never reset
}

var LookAt = donburi.NewComponentType[LookAtData]()
