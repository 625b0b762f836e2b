package systems

import (
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/input"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput returns a system that polls source once per tick and hands the
// result to every character. Must run BEFORE UpdateCharacters.
func UpdateInput(source input.Source) ecs.System {
	return func(ecs *ecs.ECS) {
		in := source.Poll()
		tags.Character.Each(ecs.World, func(e *donburi.Entry) {
			components.Input.Get(e).Input = in
		})
	}
}
