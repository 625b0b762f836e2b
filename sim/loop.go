package sim

import (
	"context"
	"log"
	"sync"
	"time"
)

// Loop drives a Scene at a fixed tick rate.
type Loop struct {
	scene    *Scene
	tickRate int
	// MaxTicks stops the loop after that many ticks, 0 runs until stopped.
	MaxTicks int

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewLoop(scene *Scene, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		scene:    scene,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// TickDuration is the wall time between two ticks.
func (l *Loop) TickDuration() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Run ticks until ctx is done, Stop is called, the level ends or MaxTicks
// ticks ran. It returns ctx.Err() when stopped by the context.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.TickDuration())
	defer ticker.Stop()

	log.Printf("[sim] loop started at %d ticks/second", l.tickRate)

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sim] loop cancelled after %d ticks", ticks)
			return ctx.Err()
		case <-l.stopChan:
			log.Printf("[sim] loop stopped after %d ticks", ticks)
			return nil
		case <-ticker.C:
			l.scene.Update()
			ticks++
			if st := l.scene.State(); st.Ended() {
				log.Printf("[sim] level %s after %d ticks", st, ticks)
				return nil
			}
			if l.MaxTicks > 0 && ticks >= l.MaxTicks {
				log.Printf("[sim] loop reached %d ticks", ticks)
				return nil
			}
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
