package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/BvdVoort/PWS/gamemath"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MovementConfig contains horizontal movement tuning. Speeds are accelerations
// contributed by a full input axis, in m/s².
type MovementConfig struct {
	GroundSpeed        float64 `yaml:"ground_speed" json:"groundSpeed"`
	AirSpeed           float64 `yaml:"air_speed" json:"airSpeed"`
	HorizontalDamping  float64 `yaml:"horizontal_damping" json:"horizontalDamping"`     // 1/s, opposes horizontal velocity
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed" json:"maxHorizontalSpeed"` // m/s, 0 = unbounded
}

// JumpConfig contains jump tuning.
type JumpConfig struct {
	Height           float64       `yaml:"height" json:"height"`     // meters
	Duration         time.Duration `yaml:"duration" json:"duration"` // time to apex
	CoyoteTime       time.Duration `yaml:"coyote_time" json:"coyoteTime"`
	BufferTime       time.Duration `yaml:"buffer_time" json:"bufferTime"`
	HoldGravityScale float64       `yaml:"hold_gravity_scale" json:"holdGravityScale"` // gravity multiplier while holding jump on ascent
	MaxStartedTicks  int           `yaml:"max_started_ticks" json:"maxStartedTicks"`
}

// PhysicsConfig contains world physics values.
type PhysicsConfig struct {
	Gravity        gamemath.Vector2 `yaml:"gravity" json:"gravity"`               // m/s², y-up
	MaxFallSpeed   float64          `yaml:"max_fall_speed" json:"maxFallSpeed"`   // m/s, 0 = unbounded
	StrictBlocking bool             `yaml:"strict_blocking" json:"strictBlocking"` // also zero acceleration on blocked axes
}

// CollisionConfig contains values for the resolv backed collision space.
type CollisionConfig struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter" json:"pixelsPerMeter"`
	CellSize       int     `yaml:"cell_size" json:"cellSize"`
	SkinDistance   float64 `yaml:"skin_distance" json:"skinDistance"` // pixels checked below a resting body
}

// Config is the full set of runtime tunable constants.
type Config struct {
	Movement  MovementConfig  `yaml:"movement" json:"movement"`
	Jump      JumpConfig      `yaml:"jump" json:"jump"`
	Physics   PhysicsConfig   `yaml:"physics" json:"physics"`
	Collision CollisionConfig `yaml:"collision" json:"collision"`
}

// Defaults holds the tuned defaults. Every scene works on its own copy, see
// Default.
var Defaults Config

func init() {
	Defaults = Config{
		Movement: MovementConfig{
			GroundSpeed:        60,
			AirSpeed:           40,
			HorizontalDamping:  10,
			MaxHorizontalSpeed: 8,
		},
		Jump: JumpConfig{
			Height:           1.5,
			Duration:         300 * time.Millisecond,
			CoyoteTime:       100 * time.Millisecond,
			BufferTime:       100 * time.Millisecond,
			HoldGravityScale: 0.3,
			MaxStartedTicks:  5,
		},
		Physics: PhysicsConfig{
			Gravity:      gamemath.Vec(0, -30),
			MaxFallSpeed: 20,
		},
		Collision: CollisionConfig{
			PixelsPerMeter: 16,
			CellSize:       16,
			SkinDistance:   1,
		},
	}
}

// Default returns a copy of Defaults.
func Default() Config {
	return Defaults
}

// LaunchSpeed is the vertical speed a jump starts with.
func (c Config) LaunchSpeed() float64 {
	return gamemath.JumpLaunchSpeed(c.Jump.Height, c.Jump.Duration, c.Physics.Gravity.Y())
}

// Validate reports every problem that would produce non-finite or nonsensical
// motion. All returned errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	finite := map[string]float64{
		"movement.ground_speed":         c.Movement.GroundSpeed,
		"movement.air_speed":            c.Movement.AirSpeed,
		"movement.horizontal_damping":   c.Movement.HorizontalDamping,
		"movement.max_horizontal_speed": c.Movement.MaxHorizontalSpeed,
		"jump.height":                   c.Jump.Height,
		"jump.hold_gravity_scale":       c.Jump.HoldGravityScale,
		"physics.max_fall_speed":        c.Physics.MaxFallSpeed,
		"collision.pixels_per_meter":    c.Collision.PixelsPerMeter,
		"collision.skin_distance":       c.Collision.SkinDistance,
	}
	for _, name := range slices.Sorted(maps.Keys(finite)) {
		v := finite[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			fail("%s must be finite, got %v", name, v)
		} else if v < 0 {
			fail("%s must not be negative, got %v", name, v)
		}
	}

	if !gamemath.IsFiniteVec(c.Physics.Gravity) {
		fail("physics.gravity must be finite, got %v", c.Physics.Gravity)
	} else if c.Physics.Gravity.Y() >= 0 {
		fail("physics.gravity must point down, got %v", c.Physics.Gravity)
	}

	if c.Jump.Duration <= 0 {
		fail("jump.duration must be positive, got %s", c.Jump.Duration)
	}
	if c.Jump.Height <= 0 {
		fail("jump.height must be positive, got %v", c.Jump.Height)
	}
	if c.Jump.CoyoteTime < 0 {
		fail("jump.coyote_time must not be negative, got %s", c.Jump.CoyoteTime)
	}
	if c.Jump.BufferTime < 0 {
		fail("jump.buffer_time must not be negative, got %s", c.Jump.BufferTime)
	}
	if c.Jump.HoldGravityScale <= 0 || c.Jump.HoldGravityScale > 1 {
		fail("jump.hold_gravity_scale must be in (0, 1], got %v", c.Jump.HoldGravityScale)
	}
	if c.Jump.MaxStartedTicks < 1 {
		fail("jump.max_started_ticks must be at least 1, got %d", c.Jump.MaxStartedTicks)
	}
	if len(errs) == 0 {
		// only meaningful once the inputs above are sane
		if v := c.LaunchSpeed(); math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			fail("jump launch speed must be positive, got %v", v)
		}
	}

	if c.Collision.PixelsPerMeter == 0 {
		fail("collision.pixels_per_meter must be positive")
	}
	if c.Collision.CellSize <= 0 {
		fail("collision.cell_size must be positive, got %d", c.Collision.CellSize)
	}

	return errors.Join(errs...)
}
