package legs

import (
	"math"

	"github.com/adammck/spider/math3d"
)

// Options control how hard Solve tries. The zero value does nothing at all
// except clamp the target; use DefaultOptions.
type Options struct {

	// The number of times to repeat the reach passes. More cycles converge
	// closer to the target, and each one costs two walks of the chain.
	Cycles int

	// How much to raise the initial direction of the leg, per unit of slack
	// between the leg length and the distance to the target. Higher values
	// produce a more arched leg.
	VerticalStart float64

	// Reset lays the chain out straight (and lifted by VerticalStart) before
	// solving, rather than starting from wherever it was last tick.
	Reset bool

	// ReachTarget and ReachBody enable the two halves of each cycle. Both
	// should be on except when debugging the solver.
	ReachTarget bool
	ReachBody   bool
}

func DefaultOptions() Options {
	return Options{
		Cycles:        10,
		VerticalStart: 1,
		Reset:         true,
		ReachTarget:   true,
		ReachBody:     true,
	}
}

// Clamp returns the target, moved towards the body if it's further away than
// length.
func Clamp(body, target math3d.Vector3, length float64) math3d.Vector3 {
	v := target.Subtract(body)
	if v.Magnitude() > length {
		return body.Add(v.Unit().MultiplyByScalar(length))
	}
	return target
}

// Solve moves the segments of the leg such that the chain starts at body and
// ends as close to the target as it can get, without changing the length of
// any segment. Targets further than the leg can reach are clamped first. The
// (possibly clamped) target is returned.
//
// This alternately drags the chain tip-first to the target and root-first back
// to the body, so the result only approximates the target when Cycles is low.
// It always ends attached to the body if ReachBody is enabled.
func Solve(body math3d.Vector3, leg *Leg, target math3d.Vector3, o Options) math3d.Vector3 {
	length := leg.Length()
	target = Clamp(body, target, length)

	if len(leg.Segments) == 0 {
		return target
	}

	if o.Reset {
		reset(body, leg, target, length, o.VerticalStart)
	}

	for c := 0; c < o.Cycles; c++ {
		if o.ReachTarget {
			reachTarget(body, leg, target)
		}

		if o.ReachBody {
			reachBody(body, leg)
		}
	}

	return target
}

// reset lays the leg out in a straight line from the body towards the target,
// tilted upwards in proportion to the slack. A fully extended leg has no slack,
// so it's laid straight at the target.
func reset(body math3d.Vector3, leg *Leg, target math3d.Vector3, length, vertical float64) {
	dir := target.Subtract(body)
	// Lifted on top of the existing Y rather than replacing it, so a clamped target keeps a straight layout.
	dir.Y += math.Max(0, (length-body.Distance(target))*vertical)

	dir, ok := dir.Normalize()
	if !ok {
		dir = leg.Segments[0].Forward()
	}

	end := body
	for _, s := range leg.Segments {
		s.Position = end
		s.look(dir, math3d.Up)
		end = end.Add(dir.MultiplyByScalar(s.Length))
	}
}

// reachTarget walks from the tip to the root, putting the end of each segment
// on its running target and pointing it back where it came from. The start of
// each segment becomes the target of the one before it.
func reachTarget(body math3d.Vector3, leg *Leg, target math3d.Vector3) {
	for i := len(leg.Segments) - 1; i >= 0; i-- {
		s := leg.Segments[i]

		dir, ok := target.Subtract(s.Position).Normalize()
		if !ok {
			dir = s.Forward()
		}

		s.Position = target.Subtract(dir.MultiplyByScalar(s.Length))
		s.look(dir, target.Subtract(body))
		target = s.Position
	}
}

// reachBody walks from the root to the tip, pinning the start of each segment
// to the end of the previous one (or the body), and pointing it at where its
// end was before.
func reachBody(body math3d.Vector3, leg *Leg) {
	anchor := body

	for _, s := range leg.Segments {
		dir, ok := s.End().Subtract(anchor).Normalize()
		if !ok {
			dir = s.Forward()
		}

		s.Position = anchor
		s.look(dir, anchor.Subtract(body))
		anchor = anchor.Add(dir.MultiplyByScalar(s.Length))
	}
}
