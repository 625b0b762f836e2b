package gamemath

import "time"

// Displacement is a translation in meters. It lives for one tick only: requested
// from the velocity, then replaced by what the resolver actually applied.
type Displacement struct {
	meters Vector2
}

var ZeroDisplacement = Displacement{}

func NewDisplacement(x, y float64) Displacement {
	return Displacement{meters: Vector2{x, y}}
}

var (
	DisplacementUp    = NewDisplacement(0, 1)
	DisplacementDown  = NewDisplacement(0, -1)
	DisplacementRight = NewDisplacement(1, 0)
	DisplacementLeft  = NewDisplacement(-1, 0)
)

func (d Displacement) Vec() Vector2 { return d.meters }
func (d Displacement) X() float64   { return d.meters[0] }
func (d Displacement) Y() float64   { return d.meters[1] }

func (d Displacement) Add(o Displacement) Displacement {
	return Displacement{meters: d.meters.Add(o.meters)}
}

func (d Displacement) Sub(o Displacement) Displacement {
	return Displacement{meters: d.meters.Sub(o.meters)}
}

func (d Displacement) Neg() Displacement {
	return Displacement{meters: d.meters.Mul(-1)}
}

func (d Displacement) Scale(s float64) Displacement {
	return Displacement{meters: d.meters.Mul(s)}
}

func (d Displacement) DivScalar(s float64) Displacement {
	return Displacement{meters: d.meters.Mul(1 / s)}
}

// Div is the average velocity that covers d within t.
func (d Displacement) Div(t time.Duration) Velocity {
	return Velocity{metersPerSecond: d.meters.Mul(1 / seconds(t))}
}

func (d Displacement) Length() float64 {
	return d.meters.Len()
}

func (d Displacement) IsZero() bool {
	return d.meters[0] == 0 && d.meters[1] == 0
}

func (d Displacement) IsFinite() bool {
	return IsFiniteVec(d.meters)
}
