package terrain

import (
	"math"

	"github.com/adammck/spider/math3d"
)

// Hole is a vertical cylinder (infinitely tall) through which rays fall.
type Hole struct {
	X, Z   float64
	Radius float64
}

func (h Hole) contains(p math3d.Vector3) bool {
	return math.Hypot(p.X-h.X, p.Z-h.Z) < h.Radius
}

// Holed is a surface with holes in it. Rays which would hit the surface inside
// a hole miss instead.
type Holed struct {
	Surface Surface
	Holes   []Hole
}

func (s *Holed) Raycast(origin, dir math3d.Vector3, maxDistance float64, mask Mask) (Hit, bool) {
	h, ok := s.Surface.Raycast(origin, dir, maxDistance, mask)
	if !ok {
		return h, false
	}

	for _, hole := range s.Holes {
		if hole.contains(h.Point) {
			return Hit{}, false
		}
	}

	return h, true
}
