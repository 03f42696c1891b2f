package debug

import (
	"image/color"

	"github.com/adammck/spider/math3d"
)

type Line struct {
	A, B  math3d.Vector3
	Color color.Color
}

type Point struct {
	P     math3d.Vector3
	Color color.Color
}

// Recorder is a Drawer which remembers what it was asked to draw, so it can be
// drawn later (or somewhere else) by replaying it.
type Recorder struct {
	Lines  []Line
	Points []Point
}

func (r *Recorder) Line(a, b math3d.Vector3, c color.Color) {
	r.Lines = append(r.Lines, Line{a, b, c})
}

func (r *Recorder) Point(p math3d.Vector3, c color.Color) {
	r.Points = append(r.Points, Point{p, c})
}

// Reset forgets everything, keeping the memory for next time.
func (r *Recorder) Reset() {
	r.Lines = r.Lines[:0]
	r.Points = r.Points[:0]
}

// Replay draws everything recorded onto d, lines first.
func (r *Recorder) Replay(d Drawer) {
	for _, l := range r.Lines {
		d.Line(l.A, l.B, l.Color)
	}
	for _, p := range r.Points {
		d.Point(p.P, p.Color)
	}
}

// Bounds returns the smallest box containing everything recorded. If nothing
// was, ok is false.
func (r *Recorder) Bounds() (lo, hi math3d.Vector3, ok bool) {
	add := func(v math3d.Vector3) {
		if !ok {
			lo, hi, ok = v, v, true
			return
		}
		lo = math3d.Vector3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = math3d.Vector3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}

	for _, l := range r.Lines {
		add(l.A)
		add(l.B)
	}
	for _, p := range r.Points {
		add(p.P)
	}

	return
}
