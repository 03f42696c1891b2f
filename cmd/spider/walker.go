package main

import (
	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
)

const (

	// How close (horizontally) the body must get to a waypoint before moving
	// on to the next one.
	arriveDistance = 0.1

	// How high above a waypoint to cast the ray down from, to find the ground.
	skyHeight = 100.0
)

// walker is a pointer which clicks on each waypoint in turn, once the body has
// arrived at the last one.
type walker struct {
	state  *spider.State
	points []math3d.Vector3
	loop   bool

	i       int
	pressed bool
}

func (w *walker) Held() bool {
	if w.state == nil || w.i >= len(w.points) {
		return false
	}

	// Click once on each waypoint, so the controller can find the ground.
	if !w.pressed {
		w.pressed = true
		return true
	}

	d := w.points[w.i].Subtract(w.state.Body.Position).Horizontal().Magnitude()
	if d > arriveDistance {
		return false
	}

	log.Infof("arrived at waypoint %d", w.i)
	w.i++
	if w.i >= len(w.points) && w.loop {
		w.i = 0
	}

	w.pressed = false
	return false
}

func (w *walker) Ray() (math3d.Vector3, math3d.Vector3) {
	if w.i >= len(w.points) {
		return math3d.ZeroVector3, math3d.Down
	}

	p := w.points[w.i]
	return math3d.Vector3{X: p.X, Y: skyHeight, Z: p.Z}, math3d.Down
}
