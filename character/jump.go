package character

import (
	"time"

	"github.com/BvdVoort/PWS/config"
)

// JumpState is the discrete jump state of a character.
type JumpState int

const (
	// Impossible means airborne without a jump available, apart from the coyote grace.
	Impossible JumpState = iota
	// Possible means grounded and ready to jump.
	Possible
	// Started means the launch impulse was applied and the body has not left the ground yet.
	Started
	// Performing means airborne as the result of a jump.
	Performing
)

func (s JumpState) String() string {
	switch s {
	case Impossible:
		return "Impossible"
	case Possible:
		return "Possible"
	case Started:
		return "Started"
	case Performing:
		return "Performing"
	default:
		return "Unknown"
	}
}

// JumpTracker gates jumping for a single character. The only way to jump is
// TryJump, which succeeds at most once per excursion away from the ground.
type JumpTracker struct {
	state        JumpState
	sinceGround  time.Duration
	startedTicks int

	coyote          time.Duration
	maxStartedTicks int
}

// NewJumpTracker returns a tracker for a character spawned with the given
// grounded flag. A character spawned in the air gets no coyote grace.
func NewJumpTracker(cfg config.JumpConfig, groundedAtSpawn bool) *JumpTracker {
	t := &JumpTracker{
		state:           Impossible,
		coyote:          cfg.CoyoteTime,
		maxStartedTicks: cfg.MaxStartedTicks,
	}
	if groundedAtSpawn {
		t.state = Possible
	} else {
		t.sinceGround = cfg.CoyoteTime
	}
	return t
}

func (t *JumpTracker) State() JumpState { return t.state }

// SinceGrounded is the coyote stopwatch.
func (t *JumpTracker) SinceGrounded() time.Duration { return t.sinceGround }

// CanJump reports whether TryJump would succeed right now.
func (t *JumpTracker) CanJump() bool {
	switch t.state {
	case Possible:
		return true
	case Impossible:
		return t.sinceGround < t.coyote
	default:
		return false
	}
}

// TryJump runs launch and enters Started when a jump is allowed.
func (t *JumpTracker) TryJump(launch func()) bool {
	if !t.CanJump() {
		return false
	}
	if launch != nil {
		launch()
	}
	t.state = Started
	t.startedTicks = 0
	t.sinceGround = 0
	return true
}

// Sync applies this tick's grounded flag. It must run after the resolver
// returned for the tick.
func (t *JumpTracker) Sync(dt time.Duration, grounded bool) {
	if grounded {
		t.sinceGround = 0
	} else if t.sinceGround < t.coyote {
		t.sinceGround += dt
	}

	switch t.state {
	case Possible:
		if !grounded {
			t.state = Impossible
		}
	case Started:
		if !grounded {
			t.state = Performing
			return
		}
		t.startedTicks++
		if t.startedTicks >= t.maxStartedTicks {
			// the impulse never separated the body from the ground
			t.state = Possible
		}
	case Performing, Impossible:
		if grounded {
			t.state = Possible
		}
	}
}

// SetConfig swaps the timing values used by later ticks.
func (t *JumpTracker) SetConfig(cfg config.JumpConfig) {
	t.coyote = cfg.CoyoteTime
	t.maxStartedTicks = cfg.MaxStartedTicks
}
