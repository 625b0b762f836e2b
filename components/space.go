package components

import (
	"github.com/BvdVoort/PWS/collision"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	*collision.Space
}

var Space = donburi.NewComponentType[SpaceData]()
