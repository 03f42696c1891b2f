package legs

import (
	"fmt"

	"github.com/adammck/spider"
	ik "github.com/adammck/spider/legs"
	"github.com/adammck/spider/math3d"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Legs bends every leg so that it reaches from its hip to its foot. It doesn't
// decide where the feet go; that's the gait scheduler.
type Legs struct {
	Options ik.Options

	// Where each leg was last asked to reach, after clamping. This is the
	// foot position unless the body has walked away from it.
	reach map[*spider.Foot]math3d.Vector3
}

func New(o ik.Options) *Legs {
	return &Legs{
		Options: o,
		reach:   map[*spider.Foot]math3d.Vector3{},
	}
}

// Boot checks that every foot has a leg, and solves them all once so the
// segments start out somewhere sensible.
func (l *Legs) Boot(state *spider.State) error {
	for _, f := range state.Feet {
		if f.Leg == nil {
			return fmt.Errorf("foot %s has no leg", f.Name)
		}
	}

	l.solve(state)
	return nil
}

func (l *Legs) Tick(dt float64, state *spider.State) error {
	l.solve(state)
	return nil
}

func (l *Legs) solve(state *spider.State) {
	if l.reach == nil {
		l.reach = map[*spider.Foot]math3d.Vector3{}
	}

	for _, f := range state.Feet {
		if f.Leg == nil {
			continue
		}

		r := ik.Solve(state.Hip(f), f.Leg, f.Position, l.Options)
		if r != f.Position {
			log.Debugf("foot %s out of reach by %.3f", f.Name, r.Distance(f.Position))
		}

		l.reach[f] = r
	}
}

// Reach returns the point which the given foot's leg was last solved towards,
// which is the foot position clamped to the length of the leg.
func (l *Legs) Reach(f *spider.Foot) (math3d.Vector3, bool) {
	r, ok := l.reach[f]
	return r, ok
}
