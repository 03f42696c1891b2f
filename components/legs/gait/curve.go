package gait

import (
	"math"
	"sort"
)

// Curve maps the progress of a step (from 0 to 1) to the height which the foot
// should be lifted above the straight line between its start and end.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts an ordinary function to a Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 {
	return f(t)
}

// Flat never lifts the foot, so it drags along the ground.
var Flat = CurveFunc(func(float64) float64 { return 0 })

// Bell lifts the foot in a bell curve, peaking at Height halfway through the
// step. It's rescaled so that the foot is on the ground at both ends.
type Bell struct {
	Height float64
}

func (b Bell) Evaluate(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}

	edge := bell(0)
	return b.Height * (bell(t) - edge) / (1 - edge)
}

func bell(t float64) float64 {
	return math.Pow(2, -math.Pow((t-0.5)*(math.E*2), 2))
}

// Arch lifts the foot in half a sine wave.
type Arch struct {
	Height float64
}

func (a Arch) Evaluate(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return a.Height * math.Sin(t*math.Pi)
}

type Key struct {
	T float64
	V float64
}

// Keyframes interpolates linearly between keys, and holds the first and last
// values outside of them.
type Keyframes []Key

// NewKeyframes returns the keys sorted by time.
func NewKeyframes(keys ...Key) Keyframes {
	k := make(Keyframes, len(keys))
	copy(k, keys)
	sort.SliceStable(k, func(i, j int) bool { return k[i].T < k[j].T })
	return k
}

func (k Keyframes) Evaluate(t float64) float64 {
	if len(k) == 0 {
		return 0
	}

	if t <= k[0].T {
		return k[0].V
	}

	for i := 1; i < len(k); i++ {
		if t <= k[i].T {
			a, b := k[i-1], k[i]
			if b.T == a.T {
				return b.V
			}
			return a.V + (b.V-a.V)*(t-a.T)/(b.T-a.T)
		}
	}

	return k[len(k)-1].V
}
