package gamemath

import (
	"math"
	"time"
)

// ClampSpeed clamps a value to [-max, max]. A non-positive max disables the clamp.
func ClampSpeed(speed, max float64) float64 {
	if max <= 0 {
		return speed
	}
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampAxis clamps a signed input axis to [-1, 1].
func ClampAxis(axis float64) float64 {
	if math.IsNaN(axis) {
		return 0
	}
	return ClampSpeed(axis, 1)
}

// JumpLaunchSpeed derives the vertical launch speed reaching height within
// duration from v = h/t - g*t. gravityY is the signed vertical gravity
// component, negative when gravity pulls down.
func JumpLaunchSpeed(height float64, duration time.Duration, gravityY float64) float64 {
	t := seconds(duration)
	return height/t - gravityY*t
}
