package systems

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
)

// RegisterCollisionRouter turns raw contact events into character collision
// events for the world.
func RegisterCollisionRouter(world donburi.World) {
	collision.ContactEvents.Subscribe(world, routeContact)
}

func routeContact(w donburi.World, evt collision.ContactEvent) {
	isCharacter := func(e donburi.Entity) bool {
		return w.Valid(e) && w.Entry(e).HasComponent(tags.Character)
	}
	if note, ok := collision.Route(evt, isCharacter); ok {
		collision.CharacterCollisions.Publish(w, note)
	}
}
