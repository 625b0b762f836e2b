package device

import (
	"math"

	"github.com/BvdVoort/PWS/character"
	"github.com/BvdVoort/PWS/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Ebiten reads keyboard and every connected standard layout gamepad. It must
// be polled from ebiten's Update.
type Ebiten struct {
	cfg     InputConfig
	tracker input.Tracker
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewEbiten(cfg InputConfig) *Ebiten {
	return &Ebiten{cfg: cfg}
}

func (e *Ebiten) Poll() character.Input {
	e.gamepadIDs = ebiten.AppendGamepadIDs(e.gamepadIDs[:0])

	var b input.Buttons
	b.Left = e.pressed(ActionMoveLeft)
	b.Right = e.pressed(ActionMoveRight)
	b.Jump = e.pressed(ActionJump)

	return e.tracker.Update(b, e.axis())
}

func (e *Ebiten) pressed(id ActionID) bool {
	binding := e.cfg.Bindings[id]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range e.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// axis returns the strongest stick deflection outside the deadzone.
func (e *Ebiten) axis() float64 {
	var best float64
	for _, gpID := range e.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := input.Deadzone(ebiten.StandardGamepadAxisValue(gpID, e.cfg.HorizontalAxis), e.cfg.AnalogDeadzone)
		if math.Abs(v) > math.Abs(best) {
			best = v
		}
	}
	return best
}
