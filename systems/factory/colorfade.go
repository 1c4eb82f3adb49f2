package factory

import (
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/interp"
	"github.com/automoto/xrmotion/systems"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// FadeColor starts a transition of the entity's tint toward to. A running fade
// is replaced and starts from the current tint. Removed entities are ignored.
func FadeColor(w donburi.World, ent donburi.Entity, to interp.Color, duration float32, easing ease.TweenFunc, ip *interp.Interpolator[interp.Color]) {
	entry, ok := systems.LiveEntry(w, ent)
	if !ok {
		return
	}
	if ip == nil {
		ip = interp.DefaultColor
	}

	if !entry.HasComponent(components.Tint) {
		entry.AddComponent(components.Tint)
		components.Tint.SetValue(entry, components.TintData{Color: interp.White})
	}
	from := components.Tint.Get(entry).Color

	if !entry.HasComponent(components.ColorFade) {
		entry.AddComponent(components.ColorFade)
	}
	components.ColorFade.SetValue(entry, components.ColorFadeData{
		Transition: interp.NewTransition(ip, from, to, duration, easing),
	})
}
