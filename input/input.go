package input

import (
	"math"

	"github.com/BvdVoort/PWS/character"
)

// Source yields the input of one tick. Poll is called exactly once per tick.
type Source interface {
	Poll() character.Input
}

// SourceFunc adapts a function to Source.
type SourceFunc func() character.Input

func (f SourceFunc) Poll() character.Input { return f() }

// Buttons is the raw digital state read from a device this tick.
type Buttons struct {
	Left, Right, Jump bool
}

// Tracker turns successive raw button states into character input. Edges
// are derived by comparing with the previous tick.
type Tracker struct {
	current  Buttons
	previous Buttons
}

// Update records this tick's buttons. A non-zero axis overrides the digital
// direction.
func (t *Tracker) Update(b Buttons, axis float64) character.Input {
	t.previous = t.current
	t.current = b

	horizontal := axis
	if horizontal == 0 {
		if b.Right {
			horizontal++
		}
		if b.Left {
			horizontal--
		}
	}
	return character.Input{
		Horizontal:  horizontal,
		JumpHeld:    b.Jump,
		JumpPressed: b.Jump && !t.previous.Jump,
	}
}

// Deadzone zeroes analog values whose magnitude is within dz.
func Deadzone(v, dz float64) float64 {
	if math.IsNaN(v) || math.Abs(v) <= dz {
		return 0
	}
	return v
}
