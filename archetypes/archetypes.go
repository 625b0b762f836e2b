package archetypes

import (
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Input,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	GameState = newArchetype(
		components.State,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS) *donburi.Entry {
	return ecs.World.Entry(ecs.Create(Default, a.components...))
}
