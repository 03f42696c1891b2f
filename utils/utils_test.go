package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegRad(t *testing.T) {
	assert.InDelta(t, 180.0, Deg(Rad(180)), 1e-12)
	assert.InDelta(t, 1.0, Rad(Deg(1)), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}

func TestWrapDegrees(t *testing.T) {
	type eg struct {
		in  float64
		exp float64
	}

	examples := []eg{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{720 + 45, 45},
		{-720 - 45, -45},
	}

	for _, x := range examples {
		assert.InDelta(t, x.exp, WrapDegrees(x.in), 1e-12, "in=%g", x.in)
	}
}
