package systems

import (
	"time"

	"github.com/BvdVoort/PWS/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one tick.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Tick++
	clock.Elapsed += clock.Delta
}

// Delta returns the current tick length, zero without a clock.
func Delta(ecs *ecs.ECS) (d time.Duration) {
	if entry, ok := components.Clock.First(ecs.World); ok {
		d = components.Clock.Get(entry).Delta
	}
	return d
}
