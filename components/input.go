package components

import (
	"github.com/BvdVoort/PWS/character"
	"github.com/yohamta/donburi"
)

// InputData is the input a character acts on this tick.
type InputData struct {
	character.Input
}

var Input = donburi.NewComponentType[InputData]()
