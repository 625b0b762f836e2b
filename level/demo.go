package level

import "github.com/BvdVoort/PWS/gamemath"

// Demo returns a small test course: a walled floor with a ledge, a step, two
// hazards and an exit on the far right.
func Demo() *Level {
	return &Level{
		Width:  40,
		Height: 12,
		Solids: []Rect{
			{X: 0, Y: 0, W: 40, H: 1, Name: "floor"},
			{X: 0, Y: 1, W: 1, H: 11, Name: "left wall"},
			{X: 39, Y: 1, W: 1, H: 11, Name: "right wall"},
			{X: 8, Y: 3, W: 4, H: 1, Name: "ledge"},
			{X: 24, Y: 1, W: 2, H: 2, Name: "step"},
		},
		Hazards: []Rect{
			{X: 20, Y: 1, W: 1, H: 1, Name: "walker"},
			{X: 30, Y: 1, W: 1, H: 1, Name: "walker"},
		},
		Goals: []Rect{
			{X: 37, Y: 1, W: 1, H: 2, Name: "exit"},
		},
		Spawns: []gamemath.Vector2{gamemath.Vec(3, 1)},
	}
}

// Flat returns a bare floor width meters wide.
func Flat(width, height float64) *Level {
	return &Level{
		Width:  width,
		Height: height,
		Solids: []Rect{
			{X: 0, Y: 0, W: width, H: 1, Name: "floor"},
		},
	}
}
