package systems

import (
	"github.com/automoto/xrmotion/components"
	"github.com/automoto/xrmotion/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateColorFades advances color transitions, writes the result to Tint and
// removes fades that have finished.
func UpdateColorFades(ecs *ecs.ECS) {
	dt := float32(config.C.DeltaTime())
	var finished []*donburi.Entry

	components.ColorFade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.ColorFade.Get(e)
		if fade.Transition == nil {
			finished = append(finished, e)
			return
		}

		color, done := fade.Transition.Update(dt)
		if e.HasComponent(components.Tint) {
			components.Tint.Get(e).Color = color
		}
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		e.RemoveComponent(components.ColorFade)
	}
}
