// Package assert holds invariant checks that only fire in builds tagged debug.
// Release builds compile them to no-ops so per-tick paths stay total.
package assert

import "fmt"

// Violation is the panic value raised when an invariant does not hold.
type Violation struct {
	Msg string
}

func (v *Violation) Error() string {
	return v.Msg
}

// IsTrue panics with a Violation when ok is false and assertions are enabled.
func IsTrue(ok bool, message string, args ...any) {
	if !Enabled || ok {
		return
	}
	panic(&Violation{Msg: fmt.Sprintf(message, args...)})
}
