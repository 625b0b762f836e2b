package components

import "github.com/yohamta/donburi"

type GameState int

const (
	Playing GameState = iota
	Completed
	Defeated
)

func (s GameState) String() string {
	switch s {
	case Completed:
		return "Completed"
	case Defeated:
		return "Defeated"
	default:
		return "Playing"
	}
}

// Ended reports whether the level reached a final state.
func (s GameState) Ended() bool { return s != Playing }

type GameStateData struct {
	State          GameState
	HazardsSpawned int
}

var State = donburi.NewComponentType[GameStateData]()
