package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock. Delta is the length of the current tick.
type ClockData struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
