package spider

import (
	"github.com/adammck/spider/legs"
	"github.com/adammck/spider/math3d"
)

// State is everything the components share. It's owned by whatever is running
// the tick loop, and only ever touched from that goroutine.
type State struct {
	Body Body

	// The point on the ground which the body should walk towards. This is
	// written by whatever is handling input.
	Target math3d.Vector3

	Feet  []*Foot
	Gates []*Gate

	// How far a gate's feet must be from their targets before it's worth
	// stepping. This is set every tick, depending on whether the body is
	// moving.
	MinStepDistance float64

	// Components can set this to true to indicate that the loop should stop.
	Shutdown bool
}

type Body struct {
	math3d.Pose

	// The distance above the target which the body should hover.
	Height float64

	// Units per second.
	MoveSpeed float64

	// Degrees per second.
	TurnSpeed float64
}

// Foot is a leg, plus the bookkeeping needed to decide where its foot goes.
type Foot struct {
	Name string
	Leg  *legs.Leg

	// The point (in the body space) which the ground probe is cast from, and
	// the direction it's cast in. The direction is usually straight down.
	Aim  math3d.Vector3
	Down math3d.Vector3

	// The point (in the body space) where the foot is placed at boot.
	Home math3d.Vector3

	// The WORLD position of the foot. Only the gait scheduler moves this, so
	// the foot stays planted while the body moves around.
	Position math3d.Vector3

	// The WORLD position where the foot would like to be, which is refreshed
	// from the ground every tick.
	Target math3d.Vector3
}

// Drift returns how far the foot is from where it would like to be.
func (f *Foot) Drift() float64 {
	return f.Position.Distance(f.Target)
}

// Gate is a group of feet which step together.
type Gate struct {
	Name string
	Feet []*Foot
}

// Drift returns the largest drift of any foot in the gate.
func (g *Gate) Drift() float64 {
	d := 0.0
	for _, f := range g.Feet {
		if fd := f.Drift(); fd > d {
			d = fd
		}
	}
	return d
}

// Hip returns the WORLD position where the leg attaches to the body.
func (s *State) Hip(f *Foot) math3d.Vector3 {
	return s.Body.Apply(f.Leg.Origin)
}

// Probe returns the WORLD origin and direction of the ground probe for the
// foot, and how far it should reach. A foot with no leg reaches nowhere.
func (s *State) Probe(f *Foot) (origin, dir math3d.Vector3, length float64) {
	down := f.Down
	if down.Zero() {
		down = math3d.Down
	}
	if f.Leg != nil {
		length = 2 * f.Leg.Length()
	}
	return s.Body.Apply(f.Aim), s.Body.Rotate(down), length
}

// Foot returns the foot with the given name, or nil.
func (s *State) Foot(name string) *Foot {
	for _, f := range s.Feet {
		if f.Name == name {
			return f
		}
	}
	return nil
}
