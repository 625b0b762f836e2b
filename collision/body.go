package collision

import (
	"math"

	"github.com/BvdVoort/PWS/character"
	"github.com/BvdVoort/PWS/gamemath"
	"github.com/BvdVoort/PWS/tags"
	"github.com/solarlune/resolv"
)

// ContactKind tells whether a contact began or ended.
type ContactKind int

const (
	Started ContactKind = iota
	Stopped
)

func (k ContactKind) String() string {
	if k == Stopped {
		return "Stopped"
	}
	return "Started"
}

// Contact is a change in what a body touches. Normal is the surface normal of
// Other pointing toward the body, y-up.
type Contact struct {
	Other  *resolv.Object
	Normal gamemath.Vector2
	Kind   ContactKind
}

type touch struct {
	obj    *resolv.Object
	normal gamemath.Vector2
}

// Body is a character's box in a Space. It implements character.Resolver.
type Body struct {
	space    *Space
	obj      *resolv.Object
	touching []touch
	pending  []Contact
	removed  bool
}

// NewBody adds a character box at the given bottom-left corner.
func (s *Space) NewBody(x, y, w, h float64, data any) *Body {
	return &Body{
		space: s,
		obj:   s.Add(x, y, w, h, tags.ResolvCharacter, data),
	}
}

func (b *Body) Object() *resolv.Object { return b.obj }

func (b *Body) Position() gamemath.Vector2 { return b.space.Position(b.obj) }

// Remove takes the body out of its space.
func (b *Body) Remove() {
	b.removed = true
	b.space.Remove(b.obj)
}

func (b *Body) detached() bool {
	return b.removed || b.obj.Space == nil
}

// Resolve moves the body by requested meters. Horizontal movement is resolved
// first, then vertical with a short skin check below the body for grounding.
func (b *Body) Resolve(requested gamemath.Displacement) character.Outcome {
	ppm := b.space.ppm
	var now []touch

	dx := b.sweepX(requested.X()*ppm, &now)
	b.obj.X += dx
	dy, grounded := b.sweepY(-requested.Y()*ppm, &now)
	b.obj.Y += dy
	if !b.detached() {
		b.obj.Update()
	}

	b.sense(&now)
	b.diff(now)

	return character.Outcome{
		Effective: gamemath.NewDisplacement(dx/ppm, -dy/ppm),
		Grounded:  grounded,
	}
}

// Contacts returns and clears the contacts gathered since the last call.
func (b *Body) Contacts() []Contact {
	out := b.pending
	b.pending = nil
	return out
}

func (b *Body) sweepX(dx float64, now *[]touch) float64 {
	if dx == 0 || b.detached() {
		return dx
	}
	dir := math.Copysign(1, dx)
	check := b.obj.Check(dx+dir*b.space.skin, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}

	var hit []*resolv.Object
	best := math.Abs(dx)
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spans(b.obj.Y, b.obj.H, solid.Y, solid.H) {
			continue
		}
		gap := check.ContactWithObject(solid).X() * dir
		if gap < -contactSlop {
			// already overlapping or behind
			continue
		}
		gap = math.Max(gap, 0)
		if gap < contactSlop {
			gap = 0
		}
		switch {
		case gap < best:
			best = gap
			hit = append(hit[:0], solid)
		case gap == best:
			hit = append(hit, solid)
		}
	}
	if len(hit) == 0 {
		return dx
	}
	for _, solid := range hit {
		addTouch(now, solid, gamemath.Vec(-dir, 0))
	}
	return best * dir
}

func (b *Body) sweepY(dy float64, now *[]touch) (float64, bool) {
	if b.detached() {
		return dy, false
	}
	down := dy >= 0
	dir := 1.0
	reach := math.Abs(dy)
	if down {
		// look past the move so a resting body stays grounded
		reach += b.space.skin
	} else {
		dir = -1
	}
	check := b.obj.Check(0, dir*(math.Abs(dy)+b.space.skin), tags.ResolvSolid)
	if check == nil {
		return dy, false
	}

	var hit []*resolv.Object
	best := math.Inf(1)
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spans(b.obj.X, b.obj.W, solid.X, solid.W) {
			continue
		}
		gap := check.ContactWithObject(solid).Y() * dir
		if gap < -contactSlop || gap > reach {
			continue
		}
		gap = math.Max(gap, 0)
		if gap < contactSlop {
			gap = 0
		}
		switch {
		case gap < best:
			best = gap
			hit = append(hit[:0], solid)
		case gap == best:
			hit = append(hit, solid)
		}
	}
	if len(hit) == 0 {
		return dy, false
	}

	normal := gamemath.Vec(0, 1)
	if !down {
		normal = gamemath.Vec(0, -1)
	}
	for _, solid := range hit {
		addTouch(now, solid, normal)
	}
	return best * dir, down
}

// sense collects the sensors the body overlaps after moving.
func (b *Body) sense(now *[]touch) {
	if b.detached() {
		return
	}
	check := b.obj.Check(0, 0, tags.ResolvHazard, tags.ResolvGoal, tags.ResolvCharacter)
	if check == nil {
		return
	}
	for _, tag := range []string{tags.ResolvHazard, tags.ResolvGoal, tags.ResolvCharacter} {
		for _, other := range check.ObjectsByTags(tag) {
			if other == b.obj {
				continue
			}
			if !spans(b.obj.X, b.obj.W, other.X, other.W) || !spans(b.obj.Y, b.obj.H, other.Y, other.H) {
				continue
			}
			addTouch(now, other, surfaceNormal(b.obj, other))
		}
	}
}

// diff turns the change between the previous and the current touch set into
// Started and Stopped contacts.
func (b *Body) diff(now []touch) {
	for _, t := range now {
		if !hasTouch(b.touching, t.obj) {
			b.pending = append(b.pending, Contact{Other: t.obj, Normal: t.normal, Kind: Started})
		}
	}
	for _, t := range b.touching {
		if !hasTouch(now, t.obj) {
			b.pending = append(b.pending, Contact{Other: t.obj, Normal: t.normal, Kind: Stopped})
		}
	}
	b.touching = now
}

func addTouch(set *[]touch, obj *resolv.Object, normal gamemath.Vector2) {
	if hasTouch(*set, obj) {
		return
	}
	*set = append(*set, touch{obj: obj, normal: normal})
}

func hasTouch(set []touch, obj *resolv.Object) bool {
	for _, t := range set {
		if t.obj == obj {
			return true
		}
	}
	return false
}
