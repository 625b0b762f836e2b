package gamemath

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is the plain 2D pair every physical unit type wraps.
type Vector2 = mgl64.Vec2

// Vec returns a Vector2 from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{x, y}
}

// IsFiniteVec reports whether neither component is NaN or infinite.
func IsFiniteVec(v Vector2) bool {
	return isFinite(v[0]) && isFinite(v[1])
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// seconds is the scalar used by every time based conversion.
func seconds(d time.Duration) float64 {
	return d.Seconds()
}
