package factory

import (
	"log"

	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid box. Coordinates are meters, bottom-left corner.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	space := spaceOf(ecs)
	if space == nil {
		log.Printf("[factory] wall at (%.2f, %.2f) created without a space", x, y)
		return wall
	}
	obj := space.AddSolid(x, y, w, h, wall) // Link for O(1) lookup
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	return wall
}
