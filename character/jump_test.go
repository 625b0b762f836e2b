package character

import (
	"testing"
	"time"

	"github.com/BvdVoort/PWS/config"
	"github.com/stretchr/testify/assert"
)

const tick = 10 * time.Millisecond

func jumpConfig() config.JumpConfig {
	cfg := config.Default().Jump
	cfg.CoyoteTime = 100 * time.Millisecond
	cfg.MaxStartedTicks = 5
	return cfg
}

// leaveGround spawns a grounded tracker and walks it off a ledge, then keeps
// it airborne until elapsed time has passed since the transition.
func leaveGround(elapsed time.Duration) *JumpTracker {
	tr := NewJumpTracker(jumpConfig(), true)
	tr.Sync(0, true)
	tr.Sync(0, false)
	for passed := time.Duration(0); passed < elapsed; passed += tick {
		tr.Sync(tick, false)
	}
	return tr
}

func TestJumpStateString(t *testing.T) {
	assert.Equal(t, "Possible", Possible.String())
	assert.Equal(t, "Started", Started.String())
	assert.Equal(t, "Performing", Performing.String())
	assert.Equal(t, "Impossible", Impossible.String())
	assert.Equal(t, "Unknown", JumpState(42).String())
}

func TestSpawnState(t *testing.T) {
	grounded := NewJumpTracker(jumpConfig(), true)
	assert.Equal(t, Possible, grounded.State())
	assert.True(t, grounded.CanJump())

	airborne := NewJumpTracker(jumpConfig(), false)
	assert.Equal(t, Impossible, airborne.State())
	assert.False(t, airborne.CanJump(), "spawning in the air grants no coyote time")
}

func TestCoyoteTime(t *testing.T) {
	late := leaveGround(50 * time.Millisecond)
	assert.Equal(t, Impossible, late.State())
	launched := false
	assert.True(t, late.TryJump(func() { launched = true }))
	assert.True(t, launched)
	assert.Equal(t, Started, late.State())

	tooLate := leaveGround(150 * time.Millisecond)
	assert.Equal(t, Impossible, tooLate.State())
	assert.False(t, tooLate.TryJump(func() { t.Fatal("launch ran outside the coyote window") }))
	assert.Equal(t, Impossible, tooLate.State())
}

func TestNoDoubleJump(t *testing.T) {
	tr := NewJumpTracker(jumpConfig(), true)
	launches := 0
	launch := func() { launches++ }

	assert.True(t, tr.TryJump(launch))
	assert.False(t, tr.TryJump(launch), "second press while Started")

	tr.Sync(tick, false)
	assert.Equal(t, Performing, tr.State())
	assert.False(t, tr.TryJump(launch), "second press while Performing")
	for range 20 {
		tr.Sync(tick, false)
		assert.False(t, tr.TryJump(launch))
	}
	assert.Equal(t, 1, launches)

	tr.Sync(tick, true)
	assert.Equal(t, Possible, tr.State())
	assert.True(t, tr.TryJump(launch))
	assert.Equal(t, 2, launches)
}

func TestStartedTimesOut(t *testing.T) {
	cfg := jumpConfig()
	tr := NewJumpTracker(cfg, true)
	assert.True(t, tr.TryJump(nil))

	for i := 1; i < cfg.MaxStartedTicks; i++ {
		tr.Sync(tick, true)
		assert.Equal(t, Started, tr.State(), "tick %d", i)
	}
	tr.Sync(tick, true)
	assert.Equal(t, Possible, tr.State())
}

func TestLandingRestoresJump(t *testing.T) {
	tr := leaveGround(500 * time.Millisecond)
	assert.False(t, tr.CanJump())

	tr.Sync(tick, true)
	assert.Equal(t, Possible, tr.State())
	assert.Zero(t, tr.SinceGrounded())
	assert.True(t, tr.CanJump())
}

func TestJumpBuffer(t *testing.T) {
	b := NewJumpBuffer(30 * time.Millisecond)
	assert.False(t, b.Pending())

	b.Press()
	b.Tick(tick)
	b.Tick(tick)
	assert.True(t, b.Pending())
	assert.True(t, b.Consume())
	assert.False(t, b.Consume())

	b.Press()
	for range 4 {
		b.Tick(tick)
	}
	assert.False(t, b.Pending(), "press expired")

	zero := NewJumpBuffer(0)
	zero.Press()
	assert.True(t, zero.Pending(), "a press is usable on its own tick")
	zero.Tick(tick)
	assert.False(t, zero.Pending())
}
