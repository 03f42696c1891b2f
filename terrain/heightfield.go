package terrain

import (
	"math"

	"github.com/adammck/spider/math3d"
)

const (

	// The default distance between samples while marching along a ray.
	defaultResolution = 0.05

	// The number of bisections to refine a crossing once one is found.
	refinements = 24
)

// HeightFunc returns the height of the ground at the given X/Z coordinates.
type HeightFunc func(x, z float64) float64

// HeightField is a surface with exactly one height at every X/Z position, like
// rolling hills. It has no overhangs.
type HeightField struct {
	Height HeightFunc
	Layer  Layer

	// The distance between samples when marching along a ray. Features much
	// narrower than this may be stepped over.
	Resolution float64
}

func NewHeightField(f HeightFunc, l Layer) *HeightField {
	return &HeightField{
		Height:     f,
		Layer:      l,
		Resolution: defaultResolution,
	}
}

// Hills returns a height field of gentle sine waves around the given base
// height.
func Hills(base, amplitude, wavelength float64, l Layer) *HeightField {
	k := 2 * math.Pi / wavelength
	return NewHeightField(func(x, z float64) float64 {
		return base + amplitude*math.Sin(x*k)*math.Cos(z*k*0.7)
	}, l)
}

func (h *HeightField) Raycast(origin, dir math3d.Vector3, maxDistance float64, mask Mask) (Hit, bool) {
	if !mask.Has(h.Layer) {
		return Hit{}, false
	}

	// The march needs somewhere to stop.
	if !(maxDistance > 0) || math.IsInf(maxDistance, 1) {
		return Hit{}, false
	}

	d, ok := dir.Normalize()
	if !ok {
		return Hit{}, false
	}

	res := h.Resolution
	if res <= 0 {
		res = defaultResolution
	}

	// Rays which start underground don't hit anything, like a backface.
	prev := 0.0
	if h.above(origin) <= 0 {
		return Hit{}, false
	}

	for t := res; ; t += res {
		t = math.Min(t, maxDistance)
		if h.above(origin.Add(d.MultiplyByScalar(t))) <= 0 {
			return h.refine(origin, d, prev, t), true
		}

		if t >= maxDistance {
			return Hit{}, false
		}

		prev = t
	}
}

// above returns how far above the surface the point is.
func (h *HeightField) above(p math3d.Vector3) float64 {
	return p.Y - h.Height(p.X, p.Z)
}

// refine bisects the interval [lo, hi] along the ray, which is known to cross
// the surface, to find the crossing.
func (h *HeightField) refine(origin, d math3d.Vector3, lo, hi float64) Hit {
	for i := 0; i < refinements; i++ {
		mid := (lo + hi) / 2
		if h.above(origin.Add(d.MultiplyByScalar(mid))) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	p := origin.Add(d.MultiplyByScalar(hi))
	return Hit{
		Point:    p,
		Normal:   h.normal(p.X, p.Z),
		Distance: hi,
	}
}

// normal estimates the surface normal by central differences.
func (h *HeightField) normal(x, z float64) math3d.Vector3 {
	e := 1e-4
	dx := (h.Height(x+e, z) - h.Height(x-e, z)) / (2 * e)
	dz := (h.Height(x, z+e) - h.Height(x, z-e)) / (2 * e)
	return math3d.Vector3{X: -dx, Y: 1, Z: -dz}.Unit()
}
