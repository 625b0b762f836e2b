package character

import "github.com/BvdVoort/PWS/gamemath"

// Outcome is what a resolver actually applied for one tick.
type Outcome struct {
	Effective gamemath.Displacement
	Grounded  bool
}

// Resolver moves a body through the collision world. Resolve is called at
// most once per body per tick and must never return non-finite values.
type Resolver interface {
	Resolve(requested gamemath.Displacement) Outcome
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(requested gamemath.Displacement) Outcome

func (f ResolverFunc) Resolve(requested gamemath.Displacement) Outcome {
	return f(requested)
}

// resolve treats a missing resolver as free, ungrounded movement.
func resolve(r Resolver, requested gamemath.Displacement) Outcome {
	if r == nil {
		return Outcome{Effective: requested}
	}
	return r.Resolve(requested)
}

// blockedAxes reports which axes were requested to move but did not.
func blockedAxes(requested, effective gamemath.Displacement) (x, y bool) {
	x = requested.X() != 0 && effective.X() == 0
	y = requested.Y() != 0 && effective.Y() == 0
	return x, y
}
