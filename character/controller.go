package character

import (
	"time"

	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/gamemath"
	"github.com/BvdVoort/PWS/internal/assert"
)

// Input is the per tick input of one character.
type Input struct {
	Horizontal  float64 // [-1, 1], values outside are clamped
	JumpHeld    bool
	JumpPressed bool // pressed this tick
}

// StepResult describes one tick of movement. Jumped is set on the tick the
// jump fired. State is read after the collision check, so on that tick it is
// already Performing once the body left the ground.
type StepResult struct {
	Requested gamemath.Displacement
	Effective gamemath.Displacement
	Grounded  bool
	Jumped    bool
	State     JumpState
}

// Controller owns the movement state of a single character: velocity, the
// per tick acceleration accumulator, the jump tracker and the jump buffer.
type Controller struct {
	cfg         config.Config
	launchSpeed float64

	velocity     gamemath.Velocity
	acceleration gamemath.Acceleration
	grounded     bool

	jump   *JumpTracker
	buffer *JumpBuffer
}

// NewController validates cfg and returns a controller at rest.
func NewController(cfg config.Config, groundedAtSpawn bool) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:         cfg,
		launchSpeed: cfg.LaunchSpeed(),
		grounded:    groundedAtSpawn,
		jump:        NewJumpTracker(cfg.Jump, groundedAtSpawn),
		buffer:      NewJumpBuffer(cfg.Jump.BufferTime),
	}, nil
}

// SetConfig applies a new tuning from the next tick on. Motion state is kept.
func (c *Controller) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.launchSpeed = cfg.LaunchSpeed()
	c.jump.SetConfig(cfg.Jump)
	c.buffer.SetWindow(cfg.Jump.BufferTime)
	return nil
}

func (c *Controller) Config() config.Config               { return c.cfg }
func (c *Controller) Velocity() gamemath.Velocity         { return c.velocity }
func (c *Controller) Acceleration() gamemath.Acceleration { return c.acceleration }
func (c *Controller) Grounded() bool                      { return c.grounded }
func (c *Controller) State() JumpState                    { return c.jump.State() }
func (c *Controller) CanJump() bool                       { return c.jump.CanJump() }
func (c *Controller) LaunchSpeed() float64                { return c.launchSpeed }
func (c *Controller) SetVelocity(v gamemath.Velocity)     { c.velocity = v }
func (c *Controller) Tracker() *JumpTracker               { return c.jump }
func (c *Controller) TimeSinceGrounded() time.Duration    { return c.jump.SinceGrounded() }

// Step advances the character by dt. r is called exactly once; a nil r moves
// the character freely and reports it airborne.
func (c *Controller) Step(dt time.Duration, in Input, r Resolver) StepResult {
	assert.IsTrue(dt >= 0, "negative delta time %s", dt)

	// forces are accumulated fresh every tick
	c.acceleration = gamemath.ZeroAcceleration
	c.acceleration = c.acceleration.Add(c.gravity(in))
	c.acceleration = c.acceleration.Add(c.walk(in))
	if d := c.cfg.Movement.HorizontalDamping; d > 0 {
		c.acceleration = c.acceleration.Add(gamemath.HorizontalAcceleration(-c.velocity.X() * d))
	}

	c.velocity = c.velocity.Add(c.acceleration.Mul(dt))

	if in.JumpPressed {
		c.buffer.Press()
	}
	jumped := false
	if c.buffer.Pending() {
		jumped = c.jump.TryJump(func() {
			c.velocity = c.velocity.WithY(c.launchSpeed)
		})
		if jumped {
			c.buffer.Consume()
		}
	}

	c.clampVelocity()
	assert.IsTrue(c.velocity.IsFinite(), "non-finite velocity %v", c.velocity.Vec())

	requested := c.velocity.Mul(dt)
	out := resolve(r, requested)
	assert.IsTrue(out.Effective.IsFinite(), "resolver returned non-finite displacement %v", out.Effective.Vec())

	c.correctBlocked(requested, out.Effective)

	c.grounded = out.Grounded
	c.jump.Sync(dt, out.Grounded)
	c.buffer.Tick(dt)

	return StepResult{
		Requested: requested,
		Effective: out.Effective,
		Grounded:  out.Grounded,
		Jumped:    jumped,
		State:     c.jump.State(),
	}
}

func (c *Controller) gravity(in Input) gamemath.Acceleration {
	scale := 1.0
	if in.JumpHeld && c.velocity.Y() > 0 {
		scale = c.cfg.Jump.HoldGravityScale
	}
	return gamemath.AccelerationFrom(c.cfg.Physics.Gravity).Scale(scale)
}

// walk uses the grounded flag of the previous tick.
func (c *Controller) walk(in Input) gamemath.Acceleration {
	speed := c.cfg.Movement.AirSpeed
	if c.grounded {
		speed = c.cfg.Movement.GroundSpeed
	}
	return gamemath.HorizontalAcceleration(gamemath.ClampAxis(in.Horizontal) * speed)
}

func (c *Controller) clampVelocity() {
	vx := gamemath.ClampSpeed(c.velocity.X(), c.cfg.Movement.MaxHorizontalSpeed)
	vy := c.velocity.Y()
	if maxFall := c.cfg.Physics.MaxFallSpeed; maxFall > 0 && vy < -maxFall {
		vy = -maxFall
	}
	c.velocity = gamemath.NewVelocity(vx, vy)
}

// correctBlocked zeroes velocity on axes the resolver refused to move along,
// so pushing into a wall cannot build up speed.
func (c *Controller) correctBlocked(requested, effective gamemath.Displacement) {
	bx, by := blockedAxes(requested, effective)
	strict := c.cfg.Physics.StrictBlocking
	if bx {
		c.velocity = c.velocity.WithX(0)
		if strict {
			c.acceleration = c.acceleration.WithX(0)
		}
	}
	if by {
		c.velocity = c.velocity.WithY(0)
		if strict {
			c.acceleration = c.acceleration.WithY(0)
		}
	}
}
