package config

import (
	"fmt"

	"github.com/adammck/spider/terrain"
)

// Validate returns an error wrapping ErrInvalid if the config can't be built.
// Oddities which still work, like a leg which never steps, are only logged.
func (c *Config) Validate() error {
	if len(c.Legs) == 0 {
		return invalid("no legs")
	}

	legs := map[string]bool{}
	for i, l := range c.Legs {
		if l.Name == "" {
			return invalid("leg #%d has no name", i+1)
		}
		if legs[l.Name] {
			return invalid("leg %s: duplicate name", l.Name)
		}
		legs[l.Name] = true

		if len(l.Segments) == 0 {
			return invalid("leg %s: no segments", l.Name)
		}
		for j, s := range l.Segments {
			if s <= 0 {
				return invalid("leg %s: segment #%d has length %g", l.Name, j+1, s)
			}
		}
	}

	if len(c.Gates) == 0 {
		return invalid("no gates")
	}

	gated := map[string]string{}
	for i, g := range c.Gates {
		if g.Name == "" {
			return invalid("gate #%d has no name", i+1)
		}
		if len(g.Legs) == 0 {
			return invalid("gate %s: no legs", g.Name)
		}

		for _, name := range g.Legs {
			if !legs[name] {
				return invalid("gate %s: unknown leg %s", g.Name, name)
			}
			if other, ok := gated[name]; ok {
				log.Warnf("leg %s is in gates %s and %s", name, other, g.Name)
			}
			gated[name] = g.Name
		}
	}

	for _, l := range c.Legs {
		if _, ok := gated[l.Name]; !ok {
			log.Warnf("leg %s is in no gate, so will never step", l.Name)
		}
	}

	if c.Gait.StepTime <= 0 {
		return invalid("step_time must be positive, got %g", c.Gait.StepTime)
	}
	if c.Gait.StepDist < 0 || c.Gait.StandingStepDist < 0 {
		return invalid("step distances must not be negative")
	}
	if _, err := c.Gait.Lift.Curve(); err != nil {
		return invalid("lift: %s", err)
	}

	if c.Solver.Cycles < 0 {
		return invalid("cycles must not be negative, got %d", c.Solver.Cycles)
	}
	if c.Body.MoveSpeed < 0 || c.Body.TurnSpeed < 0 {
		return invalid("speeds must not be negative")
	}

	for name, l := range c.Layers {
		if l < 0 || l > 31 {
			return invalid("layer %s: index %d out of range", name, l)
		}
	}
	if _, err := c.WalkableMask(); err != nil {
		return err
	}

	if _, err := c.Surface(); err != nil {
		return err
	}

	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Layer returns the index of the layer with the given name.
func (c *Config) Layer(name string) (terrain.Layer, error) {
	l, ok := c.Layers[name]
	if !ok {
		return 0, invalid("unknown layer %s", name)
	}
	if l < 0 || l > 31 {
		return 0, invalid("layer %s: index %d out of range", name, l)
	}
	return terrain.Layer(l), nil
}

// WalkableMask returns the mask of layers which feet and targets can be put on.
func (c *Config) WalkableMask() (terrain.Mask, error) {
	if len(c.Walkable) == 0 {
		return terrain.Nothing, invalid("no walkable layers")
	}

	ls := make([]terrain.Layer, len(c.Walkable))
	for i, name := range c.Walkable {
		l, err := c.Layer(name)
		if err != nil {
			return terrain.Nothing, err
		}
		ls[i] = l
	}

	return terrain.MaskOf(ls...), nil
}
