package collision

import (
	"testing"

	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// newLevel returns a 20x10 m space with a 1 m thick floor along the bottom.
func newLevel(t *testing.T) (*Space, *resolv.Object) {
	t.Helper()
	s := NewSpace(config.Default().Collision, 20, 10)
	floor := s.AddSolid(0, 0, 20, 1, "floor")
	return s, floor
}

func contactWith(contacts []Contact, obj *resolv.Object) (Contact, bool) {
	for _, c := range contacts {
		if c.Other == obj {
			return c, true
		}
	}
	return Contact{}, false
}

func TestPositionRoundTrip(t *testing.T) {
	s, floor := newLevel(t)
	assert.InDelta(t, 0, s.Position(floor).X(), eps)
	assert.InDelta(t, 0, s.Position(floor).Y(), eps)
	assert.InDelta(t, 20, s.Size(floor).X(), eps)

	body := s.NewBody(2, 1, 1, 1, nil)
	assert.InDelta(t, 2, body.Position().X(), eps)
	assert.InDelta(t, 1, body.Position().Y(), eps)
}

func TestRestingBodyIsGrounded(t *testing.T) {
	s, floor := newLevel(t)
	body := s.NewBody(2, 1, 1, 1, nil)

	out := body.Resolve(gamemath.NewDisplacement(0, -0.01))
	assert.True(t, out.Grounded)
	assert.InDelta(t, 0, out.Effective.Y(), eps)
	assert.InDelta(t, 1, body.Position().Y(), eps)

	c, ok := contactWith(body.Contacts(), floor)
	require.True(t, ok)
	assert.Equal(t, Started, c.Kind)
	assert.Equal(t, gamemath.Vec(0, 1), c.Normal)

	// still touching: no new contact
	body.Resolve(gamemath.ZeroDisplacement)
	assert.Empty(t, body.Contacts())
}

func TestFallingAndLanding(t *testing.T) {
	s, _ := newLevel(t)

	high := s.NewBody(2, 3, 1, 1, nil)
	out := high.Resolve(gamemath.NewDisplacement(0, -0.5))
	assert.False(t, out.Grounded)
	assert.InDelta(t, -0.5, out.Effective.Y(), eps)
	assert.InDelta(t, 2.5, high.Position().Y(), eps)

	low := s.NewBody(5, 1.25, 1, 1, nil)
	out = low.Resolve(gamemath.NewDisplacement(0, -0.5))
	assert.True(t, out.Grounded)
	assert.InDelta(t, -0.25, out.Effective.Y(), eps)
	assert.InDelta(t, 1, low.Position().Y(), eps)
}

func TestCeilingBlocksUpwardMove(t *testing.T) {
	s, _ := newLevel(t)
	ceiling := s.AddSolid(0, 5, 20, 1, "ceiling")
	body := s.NewBody(2, 3.75, 1, 1, nil)

	out := body.Resolve(gamemath.NewDisplacement(0, 0.5))
	assert.False(t, out.Grounded)
	assert.InDelta(t, 0.25, out.Effective.Y(), eps)

	out = body.Resolve(gamemath.NewDisplacement(0, 0.5))
	assert.Zero(t, out.Effective.Y())

	c, ok := contactWith(body.Contacts(), ceiling)
	require.True(t, ok)
	assert.Equal(t, gamemath.Vec(0, -1), c.Normal)
}

func TestWallBlocksHorizontalMove(t *testing.T) {
	s, _ := newLevel(t)
	wall := s.AddSolid(5, 1, 1, 3, "wall")
	body := s.NewBody(3.5, 1, 1, 1, nil)

	out := body.Resolve(gamemath.NewDisplacement(1, 0))
	assert.InDelta(t, 0.5, out.Effective.X(), eps)
	assert.True(t, out.Grounded)

	out = body.Resolve(gamemath.NewDisplacement(1, 0))
	assert.Zero(t, out.Effective.X())
	assert.InDelta(t, 4, body.Position().X(), eps)

	c, ok := contactWith(body.Contacts(), wall)
	require.True(t, ok)
	assert.Equal(t, Started, c.Kind)
	assert.Equal(t, gamemath.Vec(-1, 0), c.Normal)

	out = body.Resolve(gamemath.NewDisplacement(-1, 0))
	assert.InDelta(t, -1, out.Effective.X(), eps)
	c, ok = contactWith(body.Contacts(), wall)
	require.True(t, ok)
	assert.Equal(t, Stopped, c.Kind)
}

func TestHazardContacts(t *testing.T) {
	tests := []struct {
		name   string
		body   gamemath.Vector2
		move   gamemath.Displacement
		hazard gamemath.Vector2
		normal gamemath.Vector2
		class  Classification
	}{
		{"walk into side", gamemath.Vec(5.5, 1), gamemath.NewDisplacement(1, 0), gamemath.Vec(7, 1), gamemath.Vec(-1, 0), Lethal},
		{"walk into other side", gamemath.Vec(8.5, 1), gamemath.NewDisplacement(-1, 0), gamemath.Vec(7, 1), gamemath.Vec(1, 0), Lethal},
		{"land on top", gamemath.Vec(7, 2.2), gamemath.NewDisplacement(0, -0.5), gamemath.Vec(7, 1), gamemath.Vec(0, 1), Benign},
		{"jump into from below", gamemath.Vec(7, 1.75), gamemath.NewDisplacement(0, 0.5), gamemath.Vec(7, 3), gamemath.Vec(0, -1), Lethal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newLevel(t)
			hazard := s.AddHazard(tt.hazard.X(), tt.hazard.Y(), 1, 1, "hazard")
			body := s.NewBody(tt.body.X(), tt.body.Y(), 1, 1, nil)

			out := body.Resolve(tt.move)
			assert.Equal(t, tt.move.X(), out.Effective.X(), "sensors never block")

			c, ok := contactWith(body.Contacts(), hazard)
			require.True(t, ok)
			assert.Equal(t, Started, c.Kind)
			assert.Equal(t, tt.normal, c.Normal)
			assert.Equal(t, tt.class, Classify(c.Normal))
			assert.Equal(t, "hazard", c.Other.Data)
		})
	}
}

func TestRemovedBodyMovesFreely(t *testing.T) {
	s, _ := newLevel(t)
	body := s.NewBody(2, 1, 1, 1, nil)
	body.Remove()
	body.Remove()

	out := body.Resolve(gamemath.NewDisplacement(0, -1))
	assert.False(t, out.Grounded)
	assert.InDelta(t, -1, out.Effective.Y(), eps)
}
