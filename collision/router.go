package collision

import (
	"math"

	"github.com/BvdVoort/PWS/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEvent is a raw contact between two entities. Normal points from B
// toward A.
type ContactEvent struct {
	A, B   donburi.Entity
	Normal gamemath.Vector2
	Kind   ContactKind
}

// Classification decides who loses a contact.
type Classification int

const (
	// Benign means the character came out on top and the other entity is defeated.
	Benign Classification = iota
	// Lethal means the character was hit from the side or from above.
	Lethal
)

func (c Classification) String() string {
	if c == Lethal {
		return "Lethal"
	}
	return "Benign"
}

// CharacterCollision tells the Other entity that a character touched it.
// Normal points from Other toward the character.
type CharacterCollision struct {
	Character donburi.Entity
	Other     donburi.Entity
	Normal    gamemath.Vector2
	Class     Classification
}

var (
	ContactEvents       = events.NewEventType[ContactEvent]()
	CharacterCollisions = events.NewEventType[CharacterCollision]()
)

const unitTolerance = 1e-6

// Classify applies the contact rule: a square side hit or a normal pointing
// down is lethal for the character, anything else is a landing on top.
func Classify(normal gamemath.Vector2) Classification {
	if math.Abs(math.Abs(normal.X())-1) <= unitTolerance || normal.Y() < 0 {
		return Lethal
	}
	return Benign
}

// Route turns a raw contact into a character notification. Only Started
// contacts involving a character are routed. Duplicates are passed through.
func Route(evt ContactEvent, isCharacter func(donburi.Entity) bool) (CharacterCollision, bool) {
	if evt.Kind != Started {
		return CharacterCollision{}, false
	}
	var out CharacterCollision
	switch {
	case isCharacter(evt.A):
		out = CharacterCollision{Character: evt.A, Other: evt.B, Normal: evt.Normal}
	case isCharacter(evt.B):
		out = CharacterCollision{Character: evt.B, Other: evt.A, Normal: evt.Normal.Mul(-1)}
	default:
		return CharacterCollision{}, false
	}
	out.Class = Classify(out.Normal)
	return out, true
}
