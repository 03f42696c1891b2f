package terrain

import (
	"math"
	"testing"

	"github.com/adammck/spider/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	m := MaskOf(0, 3)
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(3))
	assert.False(t, m.Has(1))
	assert.Equal(t, "Mask{0,3}", m.String())

	assert.True(t, Everything.Has(31))
	assert.False(t, Nothing.Has(0))
}

func TestPlaneRaycast(t *testing.T) {
	p := Ground(1, 2)
	origin := math3d.Vector3{X: 3, Y: 5, Z: -1}

	h, ok := p.Raycast(origin, math3d.Down, 10, MaskOf(2))
	require.True(t, ok)
	assert.Equal(t, math3d.Vector3{X: 3, Y: 1, Z: -1}, h.Point)
	assert.Equal(t, math3d.Up, h.Normal)
	assert.InDelta(t, 4.0, h.Distance, 1e-12)

	// Unnormalized directions are fine.
	h, ok = p.Raycast(origin, math3d.Vector3{Y: -0.1}, 10, MaskOf(2))
	require.True(t, ok)
	assert.InDelta(t, 1.0, h.Point.Y, 1e-12)
}

func TestPlaneRaycastMisses(t *testing.T) {
	p := Ground(0, 1)
	origin := math3d.Vector3{Y: 5}

	type eg struct {
		dir  math3d.Vector3
		max  float64
		mask Mask
	}

	// Too short, wrong way, parallel, masked out, and no direction at all.
	examples := []eg{
		{math3d.Down, 4.9, MaskOf(1)},
		{math3d.Up, 100, MaskOf(1)},
		{math3d.Vector3{X: 1}, 100, MaskOf(1)},
		{math3d.Down, 100, MaskOf(0)},
		{math3d.ZeroVector3, 100, MaskOf(1)},
	}

	for i, x := range examples {
		_, ok := p.Raycast(origin, x.dir, x.max, x.mask)
		assert.False(t, ok, "example %d", i+1)
	}
}

func TestHeightFieldRaycast(t *testing.T) {
	slope := NewHeightField(func(x, z float64) float64 { return 0.5 * x }, 0)

	h, ok := slope.Raycast(math3d.Vector3{X: 2, Y: 10, Z: 0}, math3d.Down, 20, Everything)
	require.True(t, ok)
	assert.InDelta(t, 1.0, h.Point.Y, 1e-4)
	assert.InDelta(t, 2.0, h.Point.X, 1e-12)
	assert.InDelta(t, 9.0, h.Distance, 1e-4)

	n := math3d.Vector3{X: -0.5, Y: 1}.Unit()
	assert.InDelta(t, n.X, h.Normal.X, 1e-4)
	assert.InDelta(t, n.Y, h.Normal.Y, 1e-4)

	_, ok = slope.Raycast(math3d.Vector3{X: 2, Y: 10, Z: 0}, math3d.Down, 5, Everything)
	assert.False(t, ok, "ray ends above the ground")

	_, ok = slope.Raycast(math3d.Vector3{X: 2, Y: -10, Z: 0}, math3d.Down, 50, Everything)
	assert.False(t, ok, "ray starts underground")

	_, ok = slope.Raycast(math3d.Vector3{X: 2, Y: 10, Z: 0}, math3d.Down, 20, MaskOf(4))
	assert.False(t, ok, "masked out")
}

func TestHeightFieldRaycastUnbounded(t *testing.T) {
	slope := NewHeightField(func(x, z float64) float64 { return 0.5 * x }, 0)

	for _, d := range []float64{math.Inf(1), math.NaN(), 0, -1} {
		_, ok := slope.Raycast(math3d.Vector3{X: 2, Y: 10}, math3d.Up, d, Everything)
		assert.False(t, ok, "max distance %v", d)
	}
}

func TestHills(t *testing.T) {
	h := Hills(1, 0.5, 4, 0)
	for _, x := range []float64{-3, 0, 1, 2.5} {
		for _, z := range []float64{-2, 0, 3} {
			hit, ok := h.Raycast(math3d.Vector3{X: x, Y: 10, Z: z}, math3d.Down, 20, Everything)
			require.True(t, ok)
			assert.InDelta(t, h.Height(x, z), hit.Point.Y, 1e-4)
			assert.True(t, hit.Point.Y >= 0.5-1e-9 && hit.Point.Y <= 1.5+1e-9)
		}
	}
}

func TestWorldPicksClosest(t *testing.T) {
	w := World{
		Ground(0, 0),
		Ground(2, 1),
		Ground(4, 2),
	}

	origin := math3d.Vector3{Y: 10}

	h, ok := w.Raycast(origin, math3d.Down, 100, Everything)
	require.True(t, ok)
	assert.InDelta(t, 4.0, h.Point.Y, 1e-12)

	h, ok = w.Raycast(origin, math3d.Down, 100, MaskOf(0, 1))
	require.True(t, ok)
	assert.InDelta(t, 2.0, h.Point.Y, 1e-12)

	_, ok = w.Raycast(origin, math3d.Down, 100, MaskOf(7))
	assert.False(t, ok)

	_, ok = World{}.Raycast(origin, math3d.Down, 100, Everything)
	assert.False(t, ok)
}

func TestHoled(t *testing.T) {
	s := &Holed{
		Surface: Ground(0, 0),
		Holes:   []Hole{{X: 1, Z: 1, Radius: 0.5}},
	}

	_, ok := s.Raycast(math3d.Vector3{X: 1.2, Y: 5, Z: 1}, math3d.Down, 10, Everything)
	assert.False(t, ok)

	h, ok := s.Raycast(math3d.Vector3{X: 2, Y: 5, Z: 1}, math3d.Down, 10, Everything)
	require.True(t, ok)
	assert.Equal(t, math3d.Vector3{X: 2, Y: 0, Z: 1}, h.Point)
}
