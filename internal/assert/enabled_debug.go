//go:build debug

package assert

// Enabled reports whether invariant checks run in this build.
const Enabled = true
