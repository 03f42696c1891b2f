package legs

import (
	"fmt"

	"github.com/adammck/spider/math3d"
)

// Segment is one rigid part of a leg. Position is the joint at the start of the
// segment (the end nearest the body), and the segment extends Length along the
// forward axis of Orientation from there.
type Segment struct {
	Length      float64
	Position    math3d.Vector3
	Orientation math3d.Quaternion
}

func MakeSegment(length float64) *Segment {
	return &Segment{
		Length:      length,
		Orientation: math3d.IdentityOrientation,
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("&Seg{%.2f: %s -> %s}", s.Length, s.Position, s.End())
}

// Forward returns the (unit) direction which the segment points in.
func (s *Segment) Forward() math3d.Vector3 {
	return s.Orientation.Forward()
}

// Start returns the world coordinates of the start of this segment.
func (s *Segment) Start() math3d.Vector3 {
	return s.Position
}

// End returns the world coordinates of the end of this segment, which is where
// the next segment (or the foot) should be attached.
func (s *Segment) End() math3d.Vector3 {
	return s.Position.Add(s.Forward().MultiplyByScalar(s.Length))
}

// look points the segment along fwd, with its up axis towards up. If fwd has no
// direction, the current orientation is kept.
func (s *Segment) look(fwd, up math3d.Vector3) {
	if q, ok := math3d.LookRotation(fwd, up); ok {
		s.Orientation = q
	}
}
