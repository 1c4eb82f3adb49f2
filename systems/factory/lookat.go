package factory

import (
	"fmt"

	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/gamemath"
	"github.com/automoto/xrmotion/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MakeLookAt makes the entity keep looking at the local viewer. An existing
// look-at on the entity is reused and reconfigured. It returns nil when the
// entity has been removed.
func MakeLookAt(w donburi.World, ent donburi.Entity, allowRotateAroundVerticalAxis, allowRotateAroundHorizontalAxis, invertedForwardAxis bool) *components.LookAtData {
	entry, ok := systems.LiveEntry(w, ent)
	if !ok {
		return nil
	}

	if !entry.HasComponent(components.Transform) {
		entry.AddComponent(components.Transform)
		components.Transform.SetValue(entry, components.NewTransform(mgl64.Vec3{}))
	}
	if !entry.HasComponent(components.LookAt) {
		entry.AddComponent(components.LookAt)
	}

	la := components.LookAt.Get(entry)
	la.AllowRotateAroundVertical = allowRotateAroundVerticalAxis
	la.AllowRotateAroundHorizontal = allowRotateAroundHorizontalAxis
	la.InvertedForwardAxis = invertedForwardAxis

	systems.EnableLookAt(w, ent)
	return components.LookAt.Get(entry)
}

// MakeLookAtOnlyOnce orients the entity toward the local viewer a single time
// without attaching a look-at behaviour.
func MakeLookAtOnlyOnce(w donburi.World, ent donburi.Entity, allowRotateAroundVerticalAxis, allowRotateAroundHorizontalAxis, invertedForwardAxis bool) bool {
	return systems.PerformLookAt(w, ent, gamemath.LookAtAxes{
		AllowVertical:   allowRotateAroundVerticalAxis,
		AllowHorizontal: allowRotateAroundHorizontalAxis,
		InvertForward:   invertedForwardAxis,
	})
}

// RemoveLookAt removes the look-at behaviour from the entity if it has one.
func RemoveLookAt(w donburi.World, ent donburi.Entity) {
	entry, ok := systems.LiveEntry(w, ent)
	if !ok || !entry.HasComponent(components.LookAt) {
		return
	}
	systems.DisableLookAt(w, ent)
	entry.RemoveComponent(components.LookAt)
}

// ApplyLookAtDef attaches the look-at described in a scene file. A named preset
// replaces the inline flags when one has been saved.
func ApplyLookAtDef(w donburi.World, ent donburi.Entity, def *config.LookAtDef) error {
	if def == nil {
		return nil
	}

	allowVertical, allowHorizontal := def.Axes()
	invertedForward, onlyOnce := def.Flags()
	preset := systems.LookAtPreset{
		AllowRotateAroundVertical:   allowVertical,
		AllowRotateAroundHorizontal: allowHorizontal,
		InvertedForwardAxis:         invertedForward,
		OnlyOnce:                    onlyOnce,
	}

	if def.Preset != "" {
		saved, err := systems.LoadPreset(def.Preset)
		if err != nil {
			return fmt.Errorf("look-at preset: %w", err)
		}
		if saved != nil {
			preset = *saved
		}
	}

	if def.OneShot {
		MakeLookAtOnlyOnce(w, ent, preset.AllowRotateAroundVertical, preset.AllowRotateAroundHorizontal, preset.InvertedForwardAxis)
		return nil
	}

	la := MakeLookAt(w, ent, preset.AllowRotateAroundVertical, preset.AllowRotateAroundHorizontal, preset.InvertedForwardAxis)
	if la != nil {
		la.OnlyOnce = preset.OnlyOnce
	}
	return nil
}
