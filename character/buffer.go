package character

import "time"

// JumpBuffer remembers a jump press for a short window so a press made just
// before landing still fires on the first tick a jump is allowed.
type JumpBuffer struct {
	window  time.Duration
	age     time.Duration
	pending bool
}

func NewJumpBuffer(window time.Duration) *JumpBuffer {
	return &JumpBuffer{window: window}
}

// Press records a fresh press.
func (b *JumpBuffer) Press() {
	b.pending = true
	b.age = 0
}

// Pending reports whether a press is still waiting to fire.
func (b *JumpBuffer) Pending() bool { return b.pending }

// Consume clears the pending press and reports whether there was one.
func (b *JumpBuffer) Consume() bool {
	ok := b.pending
	b.pending = false
	b.age = 0
	return ok
}

// Tick ages a pending press and drops it once it is older than the window.
func (b *JumpBuffer) Tick(dt time.Duration) {
	if !b.pending {
		return
	}
	b.age += dt
	if b.age > b.window {
		b.pending = false
		b.age = 0
	}
}

func (b *JumpBuffer) SetWindow(window time.Duration) { b.window = window }
