package systems

import (
	"fmt"
	"log"

	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/automoto/xrmotion/gamemath"
	"github.com/yohamta/donburi"
)

// LookAtAxes converts a look-at component into solver constraints.
func LookAtAxes(la *components.LookAtData) gamemath.LookAtAxes {
	return gamemath.LookAtAxes{
		AllowVertical:   la.AllowRotateAroundVertical,
		AllowHorizontal: la.AllowRotateAroundHorizontal,
		InvertForward:   la.InvertedForwardAxis,
	}
}

// PerformLookAt orients the entity toward the local viewer camera. It does
// nothing and returns false when the entity has been removed, there is no
// camera, the entity has no transform or the constrained direction is zero.
func PerformLookAt(w donburi.World, ent donburi.Entity, axes gamemath.LookAtAxes) bool {
	entry, ok := LiveEntry(w, ent)
	if !ok {
		return false
	}
	return performLookAt(w, entry, axes)
}

func performLookAt(w donburi.World, entry *donburi.Entry, axes gamemath.LookAtAxes) bool {
	if !entry.HasComponent(components.Transform) {
		return false
	}
	reference, ok := LocalViewerPosition(w)
	if !ok {
		return false
	}

	transform := components.Transform.Get(entry)
	rotation, ok := gamemath.ComputeLookAt(transform.Position, transform.Rotation, reference, axes)
	if !ok {
		return false
	}
	transform.Rotation = rotation

	if config.Debug.LogLookAt {
		f := gamemath.Forward(rotation)
		log.Printf("look-at %s: forward=(%.3f, %.3f, %.3f)", entityName(entry), f.X(), f.Y(), f.Z())
	}
	return true
}

// OnViewersUpdated runs every active look-at once. Behaviours with OnlyOnce
// latch after their first successful update and are skipped from then on.
func OnViewersUpdated(w donburi.World, _ ViewersUpdatedEvent) {
	components.LookAt.Each(w, func(entry *donburi.Entry) {
		la := components.LookAt.Get(entry)
		if !la.Active || la.Fired {
			return
		}

		if performLookAt(w, entry, LookAtAxes(la)) && la.OnlyOnce {
			la.Fired = true
		}
	})
}

// EnableLookAt activates the look-at on the entity. The first active look-at
// in a world registers OnViewersUpdated with ViewersUpdated.
func EnableLookAt(w donburi.World, ent donburi.Entity) {
	entry, ok := LiveEntry(w, ent)
	if !ok || !entry.HasComponent(components.LookAt) {
		return
	}
	la := components.LookAt.Get(entry)
	if la.Active {
		return
	}
	la.Active = true

	subs := GetOrCreateSubscriptions(w)
	if !subs.ViewersUpdated {
		ViewersUpdated.Subscribe(w, OnViewersUpdated)
		subs.ViewersUpdated = true
	}
}

// DisableLookAt deactivates the look-at on the entity. When no active look-at
// remains, OnViewersUpdated is removed from ViewersUpdated.
func DisableLookAt(w donburi.World, ent donburi.Entity) {
	entry, ok := LiveEntry(w, ent)
	if !ok || !entry.HasComponent(components.LookAt) {
		return
	}
	la := components.LookAt.Get(entry)
	if !la.Active {
		return
	}
	la.Active = false

	subs := GetOrCreateSubscriptions(w)
	if subs.ViewersUpdated && ActiveLookAts(w) == 0 {
		ViewersUpdated.Unsubscribe(w, OnViewersUpdated)
		subs.ViewersUpdated = false
	}
}

// ActiveLookAts counts the look-ats currently receiving viewer updates.
func ActiveLookAts(w donburi.World) int {
	n := 0
	components.LookAt.Each(w, func(entry *donburi.Entry) {
		if components.LookAt.Get(entry).Active {
			n++
		}
	})
	return n
}

// GetOrCreateSubscriptions returns the world's subscription record, creating it if needed.
func GetOrCreateSubscriptions(w donburi.World) *components.SubscriptionsData {
	if _, ok := components.Subscriptions.First(w); !ok {
		ent := w.Entry(w.Create(components.Subscriptions))
		components.Subscriptions.SetValue(ent, components.SubscriptionsData{})
	}

	ent, _ := components.Subscriptions.First(w)
	return components.Subscriptions.Get(ent)
}

// LiveEntry returns the entry of ent. It reports false once the entity has been
// removed, even if its id has been handed to a newer entity.
func LiveEntry(w donburi.World, ent donburi.Entity) (*donburi.Entry, bool) {
	if ent == donburi.Null || !w.Valid(ent) {
		return nil, false
	}
	return w.Entry(ent), true
}

func entityName(entry *donburi.Entry) string {
	if entry.HasComponent(components.Name) {
		return components.Name.Get(entry).Name
	}
	return fmt.Sprintf("entity %v", entry.Entity())
}
