package components

import (
	"github.com/BvdVoort/PWS/character"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Controller *character.Controller
	Last       character.StepResult
}

var Character = donburi.NewComponentType[CharacterData]()
