package render

import (
	"fmt"
	"image/color"

	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	solidColor     = color.RGBA{100, 100, 100, 255} // Grey
	characterColor = color.RGBA{0, 0, 255, 255}     // Blue
	hazardColor    = color.RGBA{255, 0, 0, 255}     // Red
	goalColor      = color.RGBA{0, 255, 0, 255}     // Green
)

// DrawDebug outlines every collision box in the space, in pixel coordinates.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Resolv().Objects() {
		c := solidColor
		switch {
		case obj.HasTags(tags.ResolvCharacter):
			c = characterColor
		case obj.HasTags(tags.ResolvHazard):
			c = hazardColor
		case obj.HasTags(tags.ResolvGoal):
			c = goalColor
		}

		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

// DrawStatus prints the game state and the first character's motion.
func DrawStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	msg := ""
	if entry, ok := components.State.First(ecs.World); ok {
		msg = components.State.Get(entry).State.String()
	}
	if entry, ok := tags.Character.First(ecs.World); ok {
		ctrl := components.Character.Get(entry).Controller
		v := ctrl.Velocity()
		msg += fmt.Sprintf("\njump: %s\nvelocity: %.2f, %.2f\ngrounded: %v (%s ago)",
			ctrl.State(), v.X(), v.Y(), ctrl.Grounded(), ctrl.TimeSinceGrounded())
	}
	msg += fmt.Sprintf("\nhazards left: %d", donburi.NewQuery(filter.Contains(tags.Hazard)).Count(ecs.World))
	ebitenutil.DebugPrint(screen, msg)
}
