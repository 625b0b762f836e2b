package collision

import (
	"math"

	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/gamemath"
	"github.com/BvdVoort/PWS/tags"
	"github.com/solarlune/resolv"
)

// contactSlop absorbs rounding when a body rests exactly against a surface.
const contactSlop = 1e-6

// Space is a resolv space addressed in meters with y pointing up. Positions
// given to it are the bottom-left corner of a box.
type Space struct {
	space    *resolv.Space
	ppm      float64
	skin     float64
	heightPx float64
}

// NewSpace creates a space width by height meters large.
func NewSpace(cfg config.CollisionConfig, width, height float64) *Space {
	w := int(math.Ceil(width * cfg.PixelsPerMeter))
	h := int(math.Ceil(height * cfg.PixelsPerMeter))
	return &Space{
		space:    resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		ppm:      cfg.PixelsPerMeter,
		skin:     cfg.SkinDistance,
		heightPx: float64(h),
	}
}

func (s *Space) Resolv() *resolv.Space { return s.space }

func (s *Space) PixelsPerMeter() float64 { return s.ppm }

// Add places a box with the given resolv tag. data is stored in Object.Data
// and is normally the owning *donburi.Entry.
func (s *Space) Add(x, y, w, h float64, tag string, data any) *resolv.Object {
	px, py, pw, ph := s.toPixels(x, y, w, h)
	obj := resolv.NewObject(px, py, pw, ph, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	obj.Data = data
	s.space.Add(obj)
	return obj
}

func (s *Space) AddSolid(x, y, w, h float64, data any) *resolv.Object {
	return s.Add(x, y, w, h, tags.ResolvSolid, data)
}

func (s *Space) AddHazard(x, y, w, h float64, data any) *resolv.Object {
	return s.Add(x, y, w, h, tags.ResolvHazard, data)
}

func (s *Space) AddGoal(x, y, w, h float64, data any) *resolv.Object {
	return s.Add(x, y, w, h, tags.ResolvGoal, data)
}

// Remove takes obj out of the space. Removing twice is harmless.
func (s *Space) Remove(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	s.space.Remove(obj)
}

// Position is the bottom-left corner of obj in meters.
func (s *Space) Position(obj *resolv.Object) gamemath.Vector2 {
	return gamemath.Vec(obj.X/s.ppm, (s.heightPx-obj.Y-obj.H)/s.ppm)
}

// Size is the extent of obj in meters.
func (s *Space) Size(obj *resolv.Object) gamemath.Vector2 {
	return gamemath.Vec(obj.W/s.ppm, obj.H/s.ppm)
}

func (s *Space) toPixels(x, y, w, h float64) (px, py, pw, ph float64) {
	pw = w * s.ppm
	ph = h * s.ppm
	px = x * s.ppm
	py = s.heightPx - y*s.ppm - ph
	return px, py, pw, ph
}

// spans reports whether [a, a+alen) and [b, b+blen) overlap by more than the slop.
func spans(a, alen, b, blen float64) bool {
	return a+alen > b+contactSlop && b+blen > a+contactSlop
}

// surfaceNormal is the normal of other facing body, in y-up world space,
// taken along the axis of least penetration.
func surfaceNormal(body, other *resolv.Object) gamemath.Vector2 {
	ox := math.Min(body.X+body.W, other.X+other.W) - math.Max(body.X, other.X)
	oy := math.Min(body.Y+body.H, other.Y+other.H) - math.Max(body.Y, other.Y)
	if ox < oy {
		if body.X+body.W/2 < other.X+other.W/2 {
			return gamemath.Vec(-1, 0)
		}
		return gamemath.Vec(1, 0)
	}
	if body.Y+body.H/2 < other.Y+other.H/2 {
		// body is above in screen space
		return gamemath.Vec(0, 1)
	}
	return gamemath.Vec(0, -1)
}
