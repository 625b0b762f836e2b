package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Wall      = donburi.NewTag().SetName("Wall")
	Hazard    = donburi.NewTag().SetName("Hazard")
	Goal      = donburi.NewTag().SetName("Goal")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvHazard    = "hazard"
	ResolvGoal      = "goal"
)
