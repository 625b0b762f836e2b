package gamemath

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVelocityAdditionCommutesAndAssociates(t *testing.T) {
	cases := [][3]Velocity{
		{NewVelocity(1, 2), NewVelocity(-3, 4.5), NewVelocity(0.1, 0.2)},
		{NewVelocity(1e6, -1e-6), NewVelocity(-7, 0), NewVelocity(3.3, 9.9)},
		{ZeroVelocity, VelocityUp(5), VelocityLeft(2)},
	}
	for _, c := range cases {
		v1, v2, v3 := c[0], c[1], c[2]
		assert.True(t, v1.Add(v2).ApproxEqual(v2.Add(v1), eps), "commutative: %v %v", v1, v2)
		assert.True(t, v1.Add(v2).Add(v3).ApproxEqual(v1.Add(v2.Add(v3)), 1e-6), "associative: %v %v %v", v1, v2, v3)
	}
}

func TestVelocityArithmetic(t *testing.T) {
	v := NewVelocity(3, -4)

	assert.Equal(t, NewVelocity(-3, 4), v.Neg())
	assert.Equal(t, NewVelocity(6, -8), v.Scale(2))
	assert.Equal(t, NewVelocity(1.5, -2), v.DivScalar(2))
	assert.Equal(t, ZeroVelocity, v.Sub(v))
	assert.InDelta(t, 5, v.Speed(), eps)
	assert.Equal(t, NewVelocity(7, -4), v.WithX(7))
	assert.Equal(t, NewVelocity(3, 1), v.WithY(1))
}

func TestAccelerationTimesDuration(t *testing.T) {
	cases := []struct {
		a Acceleration
		d time.Duration
	}{
		{NewAcceleration(3, 4), time.Second},
		{VerticalAcceleration(9.81), 16 * time.Millisecond},
		{HorizontalAcceleration(2), 250 * time.Millisecond},
		{NewAcceleration(1, 1), 0},
	}
	for _, c := range cases {
		v := c.a.Mul(c.d)
		assert.InDelta(t, c.a.Magnitude()*c.d.Seconds(), v.Speed(), eps)
		if v.Speed() > 0 {
			// same direction: normalized vectors coincide
			assert.True(t, v.Vec().Normalize().ApproxEqualThreshold(c.a.Vec().Normalize(), 1e-9))
		}
		assert.GreaterOrEqual(t, v.X(), 0.0)
		assert.GreaterOrEqual(t, v.Y(), 0.0)
	}
}

func TestUnitConversions(t *testing.T) {
	v := NewVelocity(10, -20)

	d := v.Mul(500 * time.Millisecond)
	assert.Equal(t, NewDisplacement(5, -10), d)
	assert.True(t, d.Div(500*time.Millisecond).ApproxEqual(v, eps))

	a := v.Div(2 * time.Second)
	assert.Equal(t, NewAcceleration(5, -10), a)
	assert.True(t, a.Mul(2*time.Second).ApproxEqual(v, eps))
}

func TestDisplacementArithmetic(t *testing.T) {
	d := DisplacementRight.Add(DisplacementUp).Scale(3)

	assert.Equal(t, NewDisplacement(3, 3), d)
	assert.Equal(t, NewDisplacement(-3, -3), d.Neg())
	assert.Equal(t, ZeroDisplacement, DisplacementLeft.Add(DisplacementRight))
	assert.True(t, ZeroDisplacement.IsZero())
	assert.False(t, DisplacementDown.IsZero())
	assert.InDelta(t, 1, DisplacementDown.Length(), eps)
}

func TestFiniteness(t *testing.T) {
	assert.True(t, NewVelocity(1, 2).IsFinite())
	assert.False(t, NewVelocity(math.NaN(), 0).IsFinite())
	assert.False(t, NewAcceleration(0, math.Inf(-1)).IsFinite())
	assert.False(t, NewVelocity(1, 1).DivScalar(0).IsFinite())
	assert.True(t, NewDisplacement(0, 0).IsFinite())
}

func TestJumpLaunchSpeed(t *testing.T) {
	// h/t - g*t with g pointing down
	assert.InDelta(t, 19.81, JumpLaunchSpeed(10, time.Second, -9.81), eps)
	assert.InDelta(t, 2.0/0.5+9.81*0.5, JumpLaunchSpeed(2, 500*time.Millisecond, -9.81), eps)
	// level gravity: only the average ascent speed remains
	assert.InDelta(t, 4, JumpLaunchSpeed(4, time.Second, 0), eps)
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
	assert.Equal(t, 2.0, ClampSpeed(2, 5))
	assert.Equal(t, 100.0, ClampSpeed(100, 0))

	assert.Equal(t, 1.0, ClampAxis(3))
	assert.Equal(t, -1.0, ClampAxis(-1.5))
	assert.Equal(t, 0.25, ClampAxis(0.25))
	assert.Equal(t, 0.0, ClampAxis(math.NaN()))
}
