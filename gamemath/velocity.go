package gamemath

import "time"

// Velocity is a rate of displacement in meters per second.
type Velocity struct {
	metersPerSecond Vector2
}

// ZeroVelocity is the velocity of a body at rest.
var ZeroVelocity = Velocity{}

// NewVelocity returns a velocity from its components in m/s.
func NewVelocity(x, y float64) Velocity {
	return Velocity{metersPerSecond: Vector2{x, y}}
}

// VelocityFrom wraps a raw vector interpreted as m/s.
func VelocityFrom(v Vector2) Velocity {
	return Velocity{metersPerSecond: v}
}

func HorizontalVelocity(x float64) Velocity { return NewVelocity(x, 0) }
func VerticalVelocity(y float64) Velocity   { return NewVelocity(0, y) }

func VelocityUp(v float64) Velocity    { return VerticalVelocity(v) }
func VelocityDown(v float64) Velocity  { return VerticalVelocity(-v) }
func VelocityRight(v float64) Velocity { return HorizontalVelocity(v) }
func VelocityLeft(v float64) Velocity  { return HorizontalVelocity(-v) }

func (v Velocity) Vec() Vector2 { return v.metersPerSecond }
func (v Velocity) X() float64   { return v.metersPerSecond[0] }
func (v Velocity) Y() float64   { return v.metersPerSecond[1] }

// WithX returns a copy with the horizontal component replaced.
func (v Velocity) WithX(x float64) Velocity {
	return NewVelocity(x, v.Y())
}

// WithY returns a copy with the vertical component replaced.
func (v Velocity) WithY(y float64) Velocity {
	return NewVelocity(v.X(), y)
}

func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{metersPerSecond: v.metersPerSecond.Add(o.metersPerSecond)}
}

func (v Velocity) Sub(o Velocity) Velocity {
	return Velocity{metersPerSecond: v.metersPerSecond.Sub(o.metersPerSecond)}
}

func (v Velocity) Neg() Velocity {
	return Velocity{metersPerSecond: v.metersPerSecond.Mul(-1)}
}

func (v Velocity) Scale(s float64) Velocity {
	return Velocity{metersPerSecond: v.metersPerSecond.Mul(s)}
}

func (v Velocity) DivScalar(s float64) Velocity {
	return Velocity{metersPerSecond: v.metersPerSecond.Mul(1 / s)}
}

// Mul converts the velocity into the displacement covered during d.
func (v Velocity) Mul(d time.Duration) Displacement {
	return Displacement{meters: v.metersPerSecond.Mul(seconds(d))}
}

// Div returns the constant acceleration that reaches v from rest within d.
func (v Velocity) Div(d time.Duration) Acceleration {
	return Acceleration{metersPerSecondSquared: v.metersPerSecond.Mul(1 / seconds(d))}
}

// Speed is the magnitude in m/s.
func (v Velocity) Speed() float64 {
	return v.metersPerSecond.Len()
}

func (v Velocity) IsFinite() bool {
	return IsFiniteVec(v.metersPerSecond)
}

func (v Velocity) ApproxEqual(o Velocity, eps float64) bool {
	return v.metersPerSecond.ApproxEqualThreshold(o.metersPerSecond, eps)
}
