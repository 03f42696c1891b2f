package terrain

import (
	"math"

	"github.com/adammck/spider/math3d"
)

// Plane is an infinite flat surface.
type Plane struct {
	Point  math3d.Vector3
	Normal math3d.Vector3
	Layer  Layer
}

// Ground returns a horizontal plane at the given height.
func Ground(y float64, l Layer) *Plane {
	return &Plane{
		Point:  math3d.Vector3{Y: y},
		Normal: math3d.Up,
		Layer:  l,
	}
}

func (p *Plane) Raycast(origin, dir math3d.Vector3, maxDistance float64, mask Mask) (Hit, bool) {
	if !mask.Has(p.Layer) {
		return Hit{}, false
	}

	d, ok := dir.Normalize()
	if !ok {
		return Hit{}, false
	}

	n := p.Normal.Unit()
	denom := n.Dot(d)
	if math.Abs(denom) < 1e-9 {
		return Hit{}, false
	}

	t := n.Dot(p.Point.Subtract(origin)) / denom
	if t < 0 || t > maxDistance {
		return Hit{}, false
	}

	// Report the normal facing back along the ray, so it's useful whichever
	// side was hit.
	if denom > 0 {
		n = n.Negate()
	}

	return Hit{
		Point:    origin.Add(d.MultiplyByScalar(t)),
		Normal:   n,
		Distance: t,
	}, true
}
