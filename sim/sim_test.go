package sim

import (
	"context"
	"testing"
	"time"

	"github.com/BvdVoort/PWS/character"
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/input"
	"github.com/BvdVoort/PWS/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func demoScene(t *testing.T, source input.Source) *Scene {
	t.Helper()
	s, err := NewScene(config.Default(), level.Demo(), source, tick)
	require.NoError(t, err)
	return s
}

func idle() input.Source { return input.NewScript() }

func walkRight() input.Source {
	return input.SourceFunc(func() character.Input { return character.Input{Horizontal: 1} })
}

func TestNewScene(t *testing.T) {
	s := demoScene(t, idle())

	assert.Equal(t, components.Playing, s.State())
	assert.Equal(t, uint64(0), s.Tick())
	require.Len(t, s.Characters(), 1)
	assert.True(t, s.Characters()[0].Controller.Grounded(), "spawn point is on the floor")
}

func TestNewSceneRejects(t *testing.T) {
	lvl := level.Demo()

	bad := config.Default()
	bad.Jump.Height = -1
	_, err := NewScene(bad, lvl, idle(), tick)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = NewScene(config.Default(), lvl, idle(), 0)
	assert.Error(t, err)

	_, err = NewScene(config.Default(), &level.Level{}, idle(), tick)
	assert.ErrorIs(t, err, level.ErrInvalidLevel)
}

func TestRunTicksAtRest(t *testing.T) {
	s := demoScene(t, idle())

	assert.Equal(t, 30, s.RunTicks(30))
	assert.Equal(t, uint64(30), s.Tick())
	ch := s.Characters()[0]
	assert.True(t, ch.Last.Grounded)
	assert.Equal(t, character.Possible, ch.Last.State)
}

func TestWalkingIntoHazardEndsLevel(t *testing.T) {
	s := demoScene(t, walkRight())

	ran := s.RunTicks(1000)
	assert.Less(t, ran, 1000)
	assert.Equal(t, components.Defeated, s.State())
	assert.Empty(t, s.Characters())
	assert.Equal(t, 0, s.RunTicks(10), "ended level does not tick")
}

func TestJumpFromScript(t *testing.T) {
	script := input.NewScript(character.Input{JumpPressed: true, JumpHeld: true})
	s := demoScene(t, script)

	s.Update()
	ch := s.Characters()[0]
	assert.True(t, ch.Last.Jumped)
	assert.Equal(t, character.Performing, ch.Last.State, "left the ground on the jump tick")
	assert.Greater(t, ch.Last.Effective.Y(), 0.0)
	assert.False(t, ch.Last.Grounded)
}

func TestSetConfig(t *testing.T) {
	s := demoScene(t, idle())

	bad := config.Default()
	bad.Physics.MaxFallSpeed = -3
	assert.ErrorIs(t, s.SetConfig(bad), config.ErrInvalidConfig)

	tuned := config.Default()
	tuned.Jump.Height = 2.5
	require.NoError(t, s.SetConfig(tuned))
	assert.Equal(t, config.Default(), s.Config(), "applied on the next tick")

	s.Update()
	assert.Equal(t, tuned, s.Config())
	assert.Equal(t, tuned, s.Characters()[0].Controller.Config())
}

func TestSetConfigKeepsCollision(t *testing.T) {
	s := demoScene(t, idle())

	resized := config.Default()
	resized.Collision.PixelsPerMeter *= 2
	assert.ErrorIs(t, s.SetConfig(resized), config.ErrInvalidConfig)

	s.Update()
	assert.Equal(t, config.Default(), s.Config())
}

func TestLoopMaxTicks(t *testing.T) {
	s := demoScene(t, idle())
	loop := NewLoop(s, 1000)
	loop.MaxTicks = 5

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, uint64(5), s.Tick())
}

func TestLoopStop(t *testing.T) {
	s := demoScene(t, idle())
	loop := NewLoop(s, 1000)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	loop.Stop()
	loop.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopContext(t *testing.T) {
	s := demoScene(t, idle())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(s, 10).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoopEndsWithLevel(t *testing.T) {
	s := demoScene(t, walkRight())
	loop := NewLoop(s, 1000)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, components.Defeated, s.State())
}

func TestLoopDefaultRate(t *testing.T) {
	assert.Equal(t, time.Second/60, NewLoop(nil, 0).TickDuration())
}
