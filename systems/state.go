package systems

import (
	"log"

	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameState returns the singleton game state, creating it if needed.
func GetOrCreateGameState(w donburi.World) *components.GameStateData {
	if _, ok := components.State.First(w); !ok {
		ent := w.Entry(w.Create(components.State))
		components.State.SetValue(ent, components.GameStateData{State: components.Playing})
	}

	ent, _ := components.State.First(w)
	return components.State.Get(ent)
}

// IsPlaying reports whether the level is still running.
func IsPlaying(e *ecs.ECS) bool {
	return GetOrCreateGameState(e.World).State == components.Playing
}

// WithPlayingCheck wraps a system to skip execution once the level ended.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}

// finish moves a running level into its final state. Later calls keep the
// first outcome.
func finish(w donburi.World, outcome components.GameState) {
	state := GetOrCreateGameState(w)
	if state.State != components.Playing {
		return
	}
	log.Printf("[game] %s -> %s", state.State, outcome)
	state.State = outcome
}
