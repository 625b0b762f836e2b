package gamemath

import "time"

// Acceleration is a per-tick force accumulator in meters per second squared.
type Acceleration struct {
	metersPerSecondSquared Vector2
}

var ZeroAcceleration = Acceleration{}

func NewAcceleration(x, y float64) Acceleration {
	return Acceleration{metersPerSecondSquared: Vector2{x, y}}
}

// AccelerationFrom wraps a raw vector interpreted as m/s².
func AccelerationFrom(v Vector2) Acceleration {
	return Acceleration{metersPerSecondSquared: v}
}

func HorizontalAcceleration(x float64) Acceleration { return NewAcceleration(x, 0) }
func VerticalAcceleration(y float64) Acceleration   { return NewAcceleration(0, y) }

func (a Acceleration) Vec() Vector2 { return a.metersPerSecondSquared }
func (a Acceleration) X() float64   { return a.metersPerSecondSquared[0] }
func (a Acceleration) Y() float64   { return a.metersPerSecondSquared[1] }

func (a Acceleration) WithX(x float64) Acceleration { return NewAcceleration(x, a.Y()) }
func (a Acceleration) WithY(y float64) Acceleration { return NewAcceleration(a.X(), y) }

func (a Acceleration) Add(o Acceleration) Acceleration {
	return Acceleration{metersPerSecondSquared: a.metersPerSecondSquared.Add(o.metersPerSecondSquared)}
}

func (a Acceleration) Sub(o Acceleration) Acceleration {
	return Acceleration{metersPerSecondSquared: a.metersPerSecondSquared.Sub(o.metersPerSecondSquared)}
}

func (a Acceleration) Neg() Acceleration {
	return Acceleration{metersPerSecondSquared: a.metersPerSecondSquared.Mul(-1)}
}

func (a Acceleration) Scale(s float64) Acceleration {
	return Acceleration{metersPerSecondSquared: a.metersPerSecondSquared.Mul(s)}
}

func (a Acceleration) DivScalar(s float64) Acceleration {
	return Acceleration{metersPerSecondSquared: a.metersPerSecondSquared.Mul(1 / s)}
}

// Mul is the velocity change produced by applying a for d.
func (a Acceleration) Mul(d time.Duration) Velocity {
	return Velocity{metersPerSecond: a.metersPerSecondSquared.Mul(seconds(d))}
}

func (a Acceleration) Magnitude() float64 {
	return a.metersPerSecondSquared.Len()
}

func (a Acceleration) IsFinite() bool {
	return IsFiniteVec(a.metersPerSecondSquared)
}
