package factory

import (
	"time"

	"github.com/BvdVoort/PWS/archetypes"
	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the simulation clock with a fixed tick length.
func CreateClock(ecs *ecs.ECS, delta time.Duration) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Delta: delta})
	return clock
}

func CreateGameState(ecs *ecs.ECS) *donburi.Entry {
	state := archetypes.GameState.Spawn(ecs)
	components.State.SetValue(state, components.GameStateData{State: components.Playing})
	return state
}
