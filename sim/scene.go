// Package sim runs a level headless or under a host loop.
package sim

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/input"
	"github.com/BvdVoort/PWS/level"
	"github.com/BvdVoort/PWS/systems"
	"github.com/BvdVoort/PWS/systems/factory"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterSize is the width and height of a spawned character in meters.
const CharacterSize = 1.0

// Scene owns one populated world and its system order.
type Scene struct {
	ecs   *ecs.ECS
	level *level.Level

	mu      sync.Mutex
	cfg     config.Config
	pending *config.Config
}

// NewScene populates a world from lvl with one character per spawn point.
// Every tick lasts tick and reads its input from source.
func NewScene(cfg config.Config, lvl *level.Level, source input.Source, tick time.Duration) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	if tick <= 0 {
		return nil, fmt.Errorf("tick must be positive, got %s", tick)
	}

	s := &Scene{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: lvl,
		cfg:   cfg,
	}

	factory.CreateClock(s.ecs, tick)
	factory.CreateGameState(s.ecs)
	factory.CreateSpace(s.ecs, cfg.Collision, lvl.Width, lvl.Height)
	for _, r := range lvl.Solids {
		factory.CreateWall(s.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.Hazards {
		factory.CreateHazard(s.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.Goals {
		factory.CreateGoal(s.ecs, r.X, r.Y, r.W, r.H)
	}

	spawns := lvl.Spawns
	if len(spawns) == 0 {
		spawns = append(spawns, lvl.Spawn())
	}
	for _, p := range spawns {
		if _, err := factory.CreateCharacter(s.ecs, cfg, p.X(), p.Y(), CharacterSize, CharacterSize); err != nil {
			return nil, fmt.Errorf("spawn character at %v: %w", p, err)
		}
	}

	systems.RegisterCollisionRouter(s.ecs.World)
	systems.RegisterContactConsequences(s.ecs.World)

	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.UpdateInput(source))
	s.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCharacters))
	s.ecs.AddSystem(systems.ProcessEvents)

	log.Printf("[sim] scene ready: %.0fx%.0f m, %d solids, %d hazards, %d goals, %d characters",
		lvl.Width, lvl.Height, len(lvl.Solids), len(lvl.Hazards), len(lvl.Goals), len(spawns))
	return s, nil
}

// Update applies any queued config and runs one tick.
func (s *Scene) Update() {
	s.applyPending()
	s.ecs.Update()
}

// RunTicks runs up to n ticks and stops early once the level ended. It
// returns the number of ticks run.
func (s *Scene) RunTicks(n int) int {
	for i := range n {
		if !systems.IsPlaying(s.ecs) {
			return i
		}
		s.Update()
	}
	return n
}

// SetConfig queues cfg for the next tick. Safe to call from any goroutine.
// The collision section is fixed once the space exists; changing it needs a
// new scene.
func (s *Scene) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.Collision != s.cfg.Collision {
		return fmt.Errorf("%w: collision tuning only applies to a new scene", config.ErrInvalidConfig)
	}
	s.pending = &cfg
	return nil
}

// Config returns the config in effect.
func (s *Scene) Config() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Scene) applyPending() {
	s.mu.Lock()
	next := s.pending
	s.pending = nil
	s.mu.Unlock()
	if next == nil {
		return
	}

	if err := systems.ApplyConfig(s.ecs.World, *next); err != nil {
		log.Printf("[sim] config rejected: %v", err)
		return
	}
	s.mu.Lock()
	s.cfg = *next
	s.mu.Unlock()
	log.Println("[sim] config applied")
}

func (s *Scene) ECS() *ecs.ECS { return s.ecs }

func (s *Scene) Level() *level.Level { return s.level }

// State returns the current game state.
func (s *Scene) State() components.GameState {
	return systems.GetOrCreateGameState(s.ecs.World).State
}

// Tick returns the number of ticks run so far.
func (s *Scene) Tick() uint64 {
	if entry, ok := components.Clock.First(s.ecs.World); ok {
		return components.Clock.Get(entry).Tick
	}
	return 0
}

// Characters returns the live characters' component data.
func (s *Scene) Characters() []*components.CharacterData {
	var out []*components.CharacterData
	tags.Character.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, components.Character.Get(e))
	})
	return out
}
