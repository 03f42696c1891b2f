package controller

import (
	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/terrain"
	"github.com/sirupsen/logrus"
)

const (

	// How far from the pointer a target can be picked.
	maxDistance = 1000.0
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

// Pointer is anything which can point at the world, like a mouse cursor
// projected through a camera.
type Pointer interface {

	// Held returns true while the pointer is pressed.
	Held() bool

	// Ray returns the WORLD origin and direction of the line under the pointer.
	Ray() (origin, dir math3d.Vector3)
}

// Quitter is implemented by pointers which can also ask for the spider to shut
// down, e.g. when a key is pressed.
type Quitter interface {
	Quit() bool
}

// Controller moves the target to wherever the pointer is pressed on the
// walkable ground.
type Controller struct {
	Pointer Pointer
	Surface terrain.Surface

	// The layers which the target may be placed on.
	Mask terrain.Mask
}

func New(p Pointer, s terrain.Surface, mask terrain.Mask) *Controller {
	return &Controller{
		Pointer: p,
		Surface: s,
		Mask:    mask,
	}
}

func (c *Controller) Boot(state *spider.State) error {
	return nil
}

func (c *Controller) Tick(dt float64, state *spider.State) error {
	if c.Pointer == nil {
		return nil
	}

	// At any time, quitting shuts down the spider.
	if q, ok := c.Pointer.(Quitter); ok && q.Quit() {
		if !state.Shutdown {
			log.Infof("shutting down")
		}
		state.Shutdown = true
	}

	if c.Surface == nil || !c.Pointer.Held() {
		return nil
	}

	origin, dir := c.Pointer.Ray()
	h, ok := c.Surface.Raycast(origin, dir, maxDistance, c.Mask)
	if !ok {
		return nil
	}

	if h.Point != state.Target {
		log.Debugf("target=%s", h.Point)
		state.Target = h.Point
	}

	return nil
}
