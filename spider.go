package spider

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "spider",
})

type Spider struct {
	State      *State
	Components []Component
}

// Component is one stage of the per-tick pipeline. Components are ticked in
// the order they were added, so the order matters: the body should be moved
// before the feet are probed, and the legs solved last.
type Component interface {
	Boot(*State) error
	Tick(dt float64, state *State) error
}

// New creates a spider with no components.
func New(body Body, feet []*Foot, gates []*Gate) *Spider {
	return &Spider{
		State: &State{
			Body:   body,
			Target: body.Position,
			Feet:   feet,
			Gates:  gates,
		},
		Components: []Component{},
	}
}

// Add registers a component to receive ticks every frame.
func (s *Spider) Add(c Component) {
	s.Components = append(s.Components, c)
}

// Boot puts every foot at its home position, then calls Boot on each
// component.
func (s *Spider) Boot() error {
	for _, f := range s.State.Feet {
		f.Position = s.State.Body.Apply(f.Home)
		f.Target = f.Position
	}

	for _, c := range s.Components {
		err := c.Boot(s.State)
		if err != nil {
			return fmt.Errorf("%s (while booting %T)", err, c)
		}
	}

	log.Infof("booted with %d feet in %d gates", len(s.State.Feet), len(s.State.Gates))
	return nil
}

// Tick advances every component by dt seconds. Errors are logged, but don't
// stop the other components from ticking; a bad frame is corrected by the
// next one.
func (s *Spider) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	for _, c := range s.Components {
		if err := c.Tick(dt, s.State); err != nil {
			log.Warnf("%T: %s", c, err)
		}
	}
}
