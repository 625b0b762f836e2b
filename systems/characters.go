package systems

import (
	"github.com/BvdVoort/PWS/character"
	"github.com/BvdVoort/PWS/collision"
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters steps every character controller against its body and
// publishes the contacts the move produced. Must run AFTER UpdateInput.
func UpdateCharacters(ecs *ecs.ECS) {
	dt := Delta(ecs)

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		in := components.Input.Get(e)
		body := components.Body.Get(e)

		// a character without a body moves freely and never lands
		var r character.Resolver
		if body.Body != nil {
			r = body.Body
		}
		ch.Last = ch.Controller.Step(dt, in.Input, r)

		if body.Body != nil {
			publishContacts(ecs.World, e, body.Contacts())
		}
	})
}

func publishContacts(w donburi.World, self *donburi.Entry, contacts []collision.Contact) {
	for _, c := range contacts {
		other, ok := c.Other.Data.(*donburi.Entry)
		if !ok || other == nil {
			continue
		}
		collision.ContactEvents.Publish(w, collision.ContactEvent{
			A:      self.Entity(),
			B:      other.Entity(),
			Normal: c.Normal,
			Kind:   c.Kind,
		})
	}
}
