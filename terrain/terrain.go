package terrain

import (
	"fmt"
	"strings"

	"github.com/adammck/spider/math3d"
)

// Layer is the index of a surface layer, between 0 and 31.
type Layer uint8

// Mask is a set of layers which a raycast may hit.
type Mask uint32

const (
	DefaultLayer Layer = 0

	// Everything matches every layer.
	Everything Mask = ^Mask(0)
	Nothing    Mask = 0
)

// MaskOf returns a mask containing only the given layers.
func MaskOf(layers ...Layer) Mask {
	var m Mask
	for _, l := range layers {
		m |= 1 << (l % 32)
	}
	return m
}

// Has returns true if the layer is in the mask.
func (m Mask) Has(l Layer) bool {
	return m&(1<<(l%32)) != 0
}

func (m Mask) String() string {
	if m == Everything {
		return "Mask{*}"
	}

	var ls []string
	for l := Layer(0); l < 32; l++ {
		if m.Has(l) {
			ls = append(ls, fmt.Sprintf("%d", l))
		}
	}
	return fmt.Sprintf("Mask{%s}", strings.Join(ls, ","))
}

// Hit is the point at which a ray touched a surface.
type Hit struct {
	Point  math3d.Vector3
	Normal math3d.Vector3

	// The distance along the ray from its origin.
	Distance float64
}

// Surface is anything which can be walked on.
type Surface interface {

	// Raycast returns the first point along the ray (from origin, towards
	// dir, no further than maxDistance) where it hits this surface, if any of
	// the surface is in the mask. The direction needn't be normalized.
	Raycast(origin, dir math3d.Vector3, maxDistance float64, mask Mask) (Hit, bool)
}
