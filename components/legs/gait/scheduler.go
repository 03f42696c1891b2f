package gait

import (
	"fmt"

	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/utils"
	"github.com/sirupsen/logrus"
)

type Phase int

const (
	Idle Phase = iota
	Stepping
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Stepping:
		return "Stepping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

// step is the progress of one gate through a step. The start positions and
// skip flags are captured when the step begins.
type step struct {
	phase   Phase
	elapsed float64
	start   []math3d.Vector3
	skip    []bool
}

// Scheduler decides when each gate should step, and moves the feet of the
// stepping gate. Only one gate steps at a time, so the others are always
// planted.
type Scheduler struct {

	// Seconds per step. This is also the minimum time between the start of
	// consecutive steps.
	StepTime float64

	// The height to lift feet over the course of a step.
	Lift Curve

	// Seconds since the last step started.
	sinceLastStep float64

	// One per gate in the state, in the same order.
	steps []step

	// The index of the stepping gate, or -1.
	active int
}

func New(stepTime float64, lift Curve) *Scheduler {
	if lift == nil {
		lift = Flat
	}

	return &Scheduler{
		StepTime: stepTime,
		Lift:     lift,
		active:   -1,
	}
}

func (s *Scheduler) Boot(state *spider.State) error {
	if s.StepTime <= 0 {
		return fmt.Errorf("invalid step time: %v", s.StepTime)
	}

	s.sync(state)
	return nil
}

// Tick starts a step if one is due, then advances the stepping gate (if any).
// A step which starts this tick is advanced immediately.
func (s *Scheduler) Tick(dt float64, state *spider.State) error {
	s.sync(state)
	s.sinceLastStep += dt

	if s.active < 0 && s.sinceLastStep > s.StepTime {
		i, drift := s.farthest(state)
		if i >= 0 && drift > state.MinStepDistance {
			s.begin(i, state.Gates[i], state.MinStepDistance/2)
			log.Infof("gate %s stepping (drift=%.3f, min=%.3f)", state.Gates[i].Name, drift, state.MinStepDistance)
		}
	}

	if s.active >= 0 {
		s.advance(dt, state.Gates[s.active])
	}

	return nil
}

// Stepping returns the index of the gate which is currently stepping.
func (s *Scheduler) Stepping() (int, bool) {
	return s.active, s.active >= 0
}

// Phase returns the phase of the gate at the given index.
func (s *Scheduler) Phase(i int) Phase {
	if i < 0 || i >= len(s.steps) {
		return Idle
	}
	return s.steps[i].phase
}

// Progress returns how far (from 0 to 1) the gate at the given index is
// through its step. Idle gates are at zero.
func (s *Scheduler) Progress(i int) float64 {
	if s.Phase(i) != Stepping {
		return 0
	}
	return s.fraction(s.steps[i].elapsed)
}

func (s *Scheduler) SinceLastStep() float64 {
	return s.sinceLastStep
}

// Abandon drops any step in progress, leaving the feet wherever they are.
func (s *Scheduler) Abandon() {
	if s.active >= 0 {
		s.steps[s.active] = step{}
		s.active = -1
	}
}

// sync makes sure there's one step per gate. If the gates have changed, any
// step in progress is abandoned.
func (s *Scheduler) sync(state *spider.State) {
	if len(s.steps) == len(state.Gates) {
		return
	}

	s.steps = make([]step, len(state.Gates))
	s.active = -1
}

// farthest returns the index of the gate whose feet have drifted the furthest,
// and how far. The first gate wins ties. Returns -1 if no feet have drifted.
func (s *Scheduler) farthest(state *spider.State) (int, float64) {
	best, far := -1, 0.0
	for i, g := range state.Gates {
		if d := g.Drift(); d > far {
			best, far = i, d
		}
	}
	return best, far
}

// begin starts a step for the given gate. Feet which are already closer than
// skipDist to their targets stay put.
func (s *Scheduler) begin(i int, g *spider.Gate, skipDist float64) {
	st := step{
		phase: Stepping,
		start: make([]math3d.Vector3, len(g.Feet)),
		skip:  make([]bool, len(g.Feet)),
	}

	for j, f := range g.Feet {
		st.start[j] = f.Position
		st.skip[j] = f.Drift() < skipDist
	}

	s.steps[i] = st
	s.active = i
	s.sinceLastStep = 0
}

// advance moves the feet of the stepping gate along their arcs, and ends the
// step when time is up.
func (s *Scheduler) advance(dt float64, g *spider.Gate) {
	st := &s.steps[s.active]
	st.elapsed += dt
	t := s.fraction(st.elapsed)

	for j, f := range g.Feet {
		if st.skip[j] {
			continue
		}

		p := st.start[j].Lerp(f.Target, t)
		p.Y += s.Lift.Evaluate(t)
		f.Position = p
	}

	if st.elapsed >= s.StepTime {
		log.Debugf("gate %s finished stepping", g.Name)
		*st = step{}
		s.active = -1
	}
}

func (s *Scheduler) fraction(elapsed float64) float64 {
	if s.StepTime <= 0 {
		return 1
	}
	return utils.Clamp(elapsed/s.StepTime, 0, 1)
}
