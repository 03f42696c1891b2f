package legs

import (
	"fmt"

	"github.com/adammck/spider/math3d"
)

// Leg is an ordered chain of segments, from the body to the foot.
type Leg struct {
	Name string

	// The point (in the body coordinate space) which the first segment is
	// attached to.
	Origin math3d.Vector3

	Segments []*Segment
}

// NewLeg returns a leg with one segment per length, all starting out folded up
// at the origin. They'll be laid out by the first solve.
func NewLeg(name string, origin math3d.Vector3, lengths ...float64) *Leg {
	segs := make([]*Segment, len(lengths))
	for i, l := range lengths {
		segs[i] = MakeSegment(l)
	}

	return &Leg{
		Name:     name,
		Origin:   origin,
		Segments: segs,
	}
}

func (leg *Leg) String() string {
	return fmt.Sprintf("&Leg{%s len=%.2f segs=%d}", leg.Name, leg.Length(), len(leg.Segments))
}

// Length returns the distance the leg can reach when fully extended, which is
// the sum of the length of its segments.
func (leg *Leg) Length() float64 {
	l := 0.0
	for _, s := range leg.Segments {
		l += s.Length
	}
	return l
}

// Tip returns the end of the last segment, i.e. where the foot actually is.
// For a leg with no segments, this is the zero vector.
func (leg *Leg) Tip() math3d.Vector3 {
	if len(leg.Segments) == 0 {
		return math3d.ZeroVector3
	}
	return leg.Segments[len(leg.Segments)-1].End()
}

// Joints returns the start of every segment, followed by the tip.
func (leg *Leg) Joints() []math3d.Vector3 {
	if len(leg.Segments) == 0 {
		return nil
	}

	j := make([]math3d.Vector3, 0, len(leg.Segments)+1)
	for _, s := range leg.Segments {
		j = append(j, s.Position)
	}
	return append(j, leg.Tip())
}
