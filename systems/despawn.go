package systems

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
)

// Despawn removes e together with its collision box. It reports false when e
// was already gone, which is not an error: the same contact may be routed
// more than once per tick.
func Despawn(w donburi.World, e donburi.Entity) bool {
	if !w.Valid(e) {
		return false
	}
	entry := w.Entry(e)

	if entry.HasComponent(components.Body) {
		if body := components.Body.Get(entry); body.Body != nil {
			body.Remove()
		}
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			if space := spaceOf(w); space != nil {
				space.Remove(obj.Object)
			}
		}
	}

	w.Remove(e)
	return true
}

func spaceOf(w donburi.World) *collision.Space {
	if spaceEntry, ok := components.Space.First(w); ok {
		return components.Space.Get(spaceEntry).Space
	}
	return nil
}
