package systems

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/yohamta/donburi/ecs"
)

// ProcessEvents delivers the events published this tick. Contacts go first
// so the character collisions they produce are handled in the same tick.
func ProcessEvents(ecs *ecs.ECS) {
	collision.ContactEvents.ProcessEvents(ecs.World)
	collision.CharacterCollisions.ProcessEvents(ecs.World)
}
