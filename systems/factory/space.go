package factory

import (
	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/collision"
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space, width by height meters large.
func CreateSpace(ecs *ecs.ECS, cfg config.CollisionConfig, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{Space: collision.NewSpace(cfg, width, height)})
	return space
}

// spaceOf returns the level's collision space, or nil before CreateSpace ran.
func spaceOf(ecs *ecs.ECS) *collision.Space {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(spaceEntry).Space
	}
	return nil
}
