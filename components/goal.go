package components

import "github.com/yohamta/donburi"

type GoalData struct {
	Activated bool
}

var Goal = donburi.NewComponentType[GoalData]()
