package systems

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// RegisterContactConsequences applies the game rules to character collisions:
// a lethal hazard contact kills the character, landing on a hazard defeats
// it, and reaching a goal or clearing every hazard completes the level.
func RegisterContactConsequences(world donburi.World) {
	collision.CharacterCollisions.Subscribe(world, applyConsequence)
}

func applyConsequence(w donburi.World, note collision.CharacterCollision) {
	// either side may already be gone from an earlier notification
	if !w.Valid(note.Character) || !w.Valid(note.Other) {
		return
	}
	other := w.Entry(note.Other)

	switch {
	case other.HasComponent(tags.Goal):
		components.Goal.Get(other).Activated = true
		finish(w, components.Completed)

	case other.HasComponent(tags.Hazard):
		if note.Class == collision.Lethal {
			Despawn(w, note.Character)
			if count(w, tags.Character) == 0 {
				finish(w, components.Defeated)
			}
			return
		}
		Despawn(w, note.Other)
		if GetOrCreateGameState(w).HazardsSpawned > 0 && count(w, tags.Hazard) == 0 {
			finish(w, components.Completed)
		}
	}
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}
