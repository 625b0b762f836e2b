// Package level describes level geometry in meters, y-up, with every box
// anchored at its bottom-left corner. It has no dependencies on ebitengine,
// donburi, or resolv.
package level

import (
	"errors"
	"fmt"

	"github.com/BvdVoort/PWS/gamemath"
)

var ErrInvalidLevel = errors.New("invalid level")

// Rect is an axis aligned box.
type Rect struct {
	X, Y, W, H float64
	Name       string
}

func (r Rect) within(width, height float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= width && r.Y+r.H <= height
}

// Level holds everything needed to populate a scene.
type Level struct {
	Width, Height float64
	Solids        []Rect
	Hazards       []Rect
	Goals         []Rect
	Spawns        []gamemath.Vector2
}

// Spawn returns the first spawn point, the top-left-most open spot when the
// level defines none.
func (l *Level) Spawn() gamemath.Vector2 {
	if len(l.Spawns) > 0 {
		return l.Spawns[0]
	}
	return gamemath.Vec(1, l.Height-2)
}

// Validate checks that every box has a size and lies inside the level.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidLevel, l.Width, l.Height)
	}
	groups := []struct {
		name  string
		rects []Rect
	}{
		{"solid", l.Solids},
		{"hazard", l.Hazards},
		{"goal", l.Goals},
	}
	for _, g := range groups {
		for i, r := range g.rects {
			if r.W <= 0 || r.H <= 0 {
				return fmt.Errorf("%w: %s %d has size %vx%v", ErrInvalidLevel, g.name, i, r.W, r.H)
			}
			if !r.within(l.Width, l.Height) {
				return fmt.Errorf("%w: %s %d at (%v, %v) is outside the level", ErrInvalidLevel, g.name, i, r.X, r.Y)
			}
		}
	}
	for i, p := range l.Spawns {
		if p.X() < 0 || p.Y() < 0 || p.X() > l.Width || p.Y() > l.Height {
			return fmt.Errorf("%w: spawn %d at %v is outside the level", ErrInvalidLevel, i, p)
		}
	}
	return nil
}
