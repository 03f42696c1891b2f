package config

import (
	"fmt"

	"github.com/adammck/spider"
	"github.com/adammck/spider/components/controller"
	complegs "github.com/adammck/spider/components/legs"
	"github.com/adammck/spider/components/legs/gait"
	"github.com/adammck/spider/components/motion"
	"github.com/adammck/spider/components/probe"
	"github.com/adammck/spider/legs"
	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/terrain"
)

// Rig is a spider built from a config, with handles on the components which
// can be tuned while it's running.
type Rig struct {
	Spider  *spider.Spider
	Surface terrain.Surface
	Mask    terrain.Mask

	Motion *motion.Motion
	Probe  *probe.Probe
	Gait   *gait.Scheduler
	Legs   *complegs.Legs
}

// Curve returns the lift curve described.
func (l Lift) Curve() (gait.Curve, error) {
	switch l.Kind {
	case "", "flat":
		return gait.Flat, nil
	case "bell":
		return gait.Bell{Height: l.Height}, nil
	case "arch":
		return gait.Arch{Height: l.Height}, nil
	case "keys":
		if len(l.Keys) == 0 {
			return nil, fmt.Errorf("no keys")
		}
		ks := make([]gait.Key, len(l.Keys))
		for i, k := range l.Keys {
			ks[i] = gait.Key{T: k[0], V: k[1] * l.heightOr(1)}
		}
		return gait.NewKeyframes(ks...), nil
	}

	return nil, fmt.Errorf("unknown kind: %s", l.Kind)
}

// heightOr returns the height, or def if it's unset.
func (l Lift) heightOr(def float64) float64 {
	if l.Height == 0 {
		return def
	}
	return l.Height
}

// Surface returns the ground described by the terrain section.
func (c *Config) Surface() (terrain.Surface, error) {
	t := c.Terrain

	l, err := c.Layer(t.Layer)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	var s terrain.Surface
	switch t.Kind {
	case "", "flat":
		s = terrain.Ground(t.Height, l)
	case "hills":
		if t.Wavelength <= 0 {
			return nil, invalid("terrain: wavelength must be positive")
		}
		s = terrain.Hills(t.Height, t.Amplitude, t.Wavelength, l)
	default:
		return nil, invalid("terrain: unknown kind %s", t.Kind)
	}

	if len(t.Holes) > 0 {
		hs := make([]terrain.Hole, len(t.Holes))
		for i, h := range t.Holes {
			hs[i] = terrain.Hole{X: h.X, Z: h.Z, Radius: h.Radius}
		}
		s = &terrain.Holed{Surface: s, Holes: hs}
	}

	return s, nil
}

// Options returns the solver options.
func (s Solver) Options() legs.Options {
	return legs.Options{
		Cycles:        s.Cycles,
		VerticalStart: s.VerticalStart,
		Reset:         s.StepA,
		ReachTarget:   s.StepB,
		ReachBody:     s.StepC,
	}
}

// Build validates the config and returns a spider with all of the components
// needed to walk, in the order they must tick. If p is not nil, it's used to
// move the target. The spider still needs booting.
func Build(c *Config, p controller.Pointer) (*Rig, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	surface, err := c.Surface()
	if err != nil {
		return nil, err
	}

	mask, err := c.WalkableMask()
	if err != nil {
		return nil, err
	}

	lift, err := c.Gait.Lift.Curve()
	if err != nil {
		return nil, err
	}

	feet := make([]*spider.Foot, len(c.Legs))
	byName := map[string]*spider.Foot{}
	for i, l := range c.Legs {
		f := &spider.Foot{
			Name: l.Name,
			Leg:  legs.NewLeg(l.Name, l.Origin.Vector3(), l.Segments...),
			Aim:  l.Aim.Vector3(),
			Down: math3d.Down,
		}

		if l.Down != nil {
			f.Down = l.Down.Vector3()
		}

		if l.Home != nil {
			f.Home = l.Home.Vector3()
		} else {
			f.Home = f.Aim.Add(math3d.Vector3{Y: -c.Body.Height})
		}

		feet[i] = f
		byName[l.Name] = f
	}

	gates := make([]*spider.Gate, len(c.Gates))
	for i, g := range c.Gates {
		gf := make([]*spider.Foot, len(g.Legs))
		for j, name := range g.Legs {
			gf[j] = byName[name]
		}
		gates[i] = &spider.Gate{Name: g.Name, Feet: gf}
	}

	body := spider.Body{
		Pose: math3d.Pose{
			Position: c.Body.Position.Vector3(),
			Heading:  c.Body.Heading,
		},
		Height:    c.Body.Height,
		MoveSpeed: c.Body.MoveSpeed,
		TurnSpeed: c.Body.TurnSpeed,
	}

	r := &Rig{
		Spider:  spider.New(body, feet, gates),
		Surface: surface,
		Mask:    mask,
		Motion:  motion.New(c.Gait.StepDist, c.Gait.StandingStepDist),
		Probe:   probe.New(surface, mask),
		Gait:    gait.New(c.Gait.StepTime, lift),
		Legs:    complegs.New(c.Solver.Options()),
	}

	// The body stands over the ground, so the target starts on it.
	r.Spider.State.Target = body.Position.Subtract(math3d.Vector3{Y: body.Height})

	if p != nil {
		r.Spider.Add(controller.New(p, surface, mask))
	}

	r.Spider.Add(r.Motion)
	r.Spider.Add(r.Probe)
	r.Spider.Add(r.Gait)
	r.Spider.Add(r.Legs)

	log.Infof("built spider with %d legs in %d gates on %s terrain", len(feet), len(gates), c.Terrain.Kind)
	return r, nil
}

// Apply changes the tunable parts of a running rig.
func (r *Rig) Apply(t Tuning) error {
	lift, err := t.Gait.Lift.Curve()
	if err != nil {
		return fmt.Errorf("lift: %w", err)
	}

	if t.Gait.StepTime <= 0 {
		return fmt.Errorf("step_time must be positive, got %g", t.Gait.StepTime)
	}

	r.Legs.Options = t.Solver.Options()
	r.Gait.StepTime = t.Gait.StepTime
	r.Gait.Lift = lift
	r.Motion.StepDistance = t.Gait.StepDist
	r.Motion.StandingStepDistance = t.Gait.StandingStepDist

	b := &r.Spider.State.Body
	b.MoveSpeed = t.MoveSpeed
	b.TurnSpeed = t.TurnSpeed

	return nil
}
