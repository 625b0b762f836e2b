package components

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv box of a static entity: walls, hazards and goals.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// BodyData is the moving box of a character.
type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()
