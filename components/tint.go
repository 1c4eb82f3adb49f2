package components

import (
	"github.com/automoto/xrmotion/interp"
	"github.com/yohamta/donburi"
)

// TintData is the color multiplier applied to an object.
type TintData struct {
	Color interp.Color
}

var Tint = donburi.NewComponentType[TintData]()

// ColorFadeData drives Tint through a timed transition and is removed once finished.
type ColorFadeData struct {
	Transition *interp.Transition[interp.Color]
}

var ColorFade = donburi.NewComponentType[ColorFadeData]()
