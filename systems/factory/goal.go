package factory

import (
	"log"

	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates the level exit.
func CreateGoal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)
	components.Goal.SetValue(goal, components.GoalData{Activated: false})

	space := spaceOf(ecs)
	if space == nil {
		log.Printf("[factory] goal at (%.2f, %.2f) created without a space", x, y)
		return goal
	}
	obj := space.AddGoal(x, y, w, h, goal)
	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	return goal
}
