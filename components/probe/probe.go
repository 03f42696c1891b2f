package probe

import (
	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/terrain"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "probe",
})

// Probe finds where each foot would like to be, by casting a ray down from
// its aim point (which moves with the body) to the ground.
type Probe struct {
	Surface terrain.Surface

	// The layers which feet may stand on.
	Mask terrain.Mask

	// Feet whose last probe missed. Only used to avoid logging every tick.
	lost map[*spider.Foot]bool
}

func New(s terrain.Surface, mask terrain.Mask) *Probe {
	return &Probe{
		Surface: s,
		Mask:    mask,
		lost:    map[*spider.Foot]bool{},
	}
}

// Update returns the point where the ray from origin (towards down, no further
// than maxDistance) hits the ground. If it doesn't hit anything in the mask,
// the previous point is returned unchanged, so the foot keeps its last target
// rather than reaching into the void.
func (p *Probe) Update(origin, down math3d.Vector3, maxDistance float64, mask terrain.Mask, previous math3d.Vector3) math3d.Vector3 {
	if h, ok := p.cast(origin, down, maxDistance, mask); ok {
		return h.Point
	}
	return previous
}

func (p *Probe) cast(origin, down math3d.Vector3, maxDistance float64, mask terrain.Mask) (terrain.Hit, bool) {
	if p.Surface == nil {
		return terrain.Hit{}, false
	}
	return p.Surface.Raycast(origin, down, maxDistance, mask)
}

// Boot puts every foot straight onto the ground under its aim point. Feet with
// no ground under them stay where they were put, as do feet with no leg.
func (p *Probe) Boot(state *spider.State) error {
	for _, f := range state.Feet {
		if f.Leg == nil {
			continue
		}
		f.Target = p.probe(state, f)
		f.Position = f.Target
	}

	return nil
}

func (p *Probe) Tick(dt float64, state *spider.State) error {
	for _, f := range state.Feet {
		f.Target = p.probe(state, f)
	}

	return nil
}

func (p *Probe) probe(state *spider.State, f *spider.Foot) math3d.Vector3 {
	if f.Leg == nil {
		return f.Target
	}

	origin, dir, length := state.Probe(f)

	h, ok := p.cast(origin, dir, length, p.Mask)
	if ok == p.lost[f] {
		if p.lost == nil {
			p.lost = map[*spider.Foot]bool{}
		}
		p.lost[f] = !ok

		if ok {
			log.Debugf("foot %s found the ground at %s", f.Name, h.Point)
		} else {
			log.Debugf("foot %s lost the ground under %s", f.Name, origin)
		}
	}

	if !ok {
		return f.Target
	}
	return h.Point
}
