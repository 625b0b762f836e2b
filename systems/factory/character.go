package factory

import (
	"log"

	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/character"
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns a playable character with its bottom-left corner at
// (x, y) meters. The body is resolved once so a character placed on the floor
// starts out able to jump.
func CreateCharacter(ecs *ecs.ECS, cfg config.Config, x, y, w, h float64) (*donburi.Entry, error) {
	grounded := false
	var body components.BodyData
	if space := spaceOf(ecs); space != nil {
		body.Body = space.NewBody(x, y, w, h, nil)
		grounded = body.Resolve(gamemath.ZeroDisplacement).Grounded
	} else {
		log.Printf("[factory] character at (%.2f, %.2f) created without a space", x, y)
	}

	ctrl, err := character.NewController(cfg, grounded)
	if err != nil {
		if body.Body != nil {
			body.Remove()
		}
		return nil, err
	}

	entry := archetypes.Character.Spawn(ecs)
	if body.Body != nil {
		body.Object().Data = entry
	}
	components.Body.SetValue(entry, body)
	components.Character.SetValue(entry, components.CharacterData{
		Controller: ctrl,
	})
	components.Input.SetValue(entry, components.InputData{})

	return entry, nil
}
