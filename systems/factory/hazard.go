package factory

import (
	"log"

	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates an enemy-like sensor. Touching it from the side or
// from below kills a character, landing on it defeats the hazard.
func CreateHazard(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	if stateEntry, ok := components.State.First(ecs.World); ok {
		components.State.Get(stateEntry).HazardsSpawned++
	}

	space := spaceOf(ecs)
	if space == nil {
		log.Printf("[factory] hazard at (%.2f, %.2f) created without a space", x, y)
		return hazard
	}
	obj := space.AddHazard(x, y, w, h, hazard)
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	return hazard
}
