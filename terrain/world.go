package terrain

import (
	"github.com/adammck/spider/math3d"
)

// World is a collection of surfaces. Rays hit whichever is closest.
type World []Surface

func (w World) Raycast(origin, dir math3d.Vector3, maxDistance float64, mask Mask) (Hit, bool) {
	var best Hit
	found := false

	for _, s := range w {
		if h, ok := s.Raycast(origin, dir, maxDistance, mask); ok {
			if !found || h.Distance < best.Distance {
				best = h
				found = true
			}
		}
	}

	return best, found
}
