package math3d

import (
	"fmt"

	"github.com/adammck/spider/utils"
)

// Pose is a position plus a heading (in degrees, around the Y axis). Bodies
// never pitch or roll, so this is all that's needed to place things relative
// to them.
type Pose struct {
	Position Vector3
	Heading  float64
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, r=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}

// Add returns pp (which is relative to p) in the space that p is in.
func (p Pose) Add(pp Pose) Pose {
	return Pose{
		Position: p.Apply(pp.Position),
		Heading:  p.Heading + pp.Heading,
	}
}

// Out returns pp (which is in the same space as p) relative to p. It is the
// inverse of Add, such that p.Add(p.Out(pp)) == pp.
func (p Pose) Out(pp Pose) Pose {
	return Pose{
		Position: Yaw(-p.Heading).Rotate(pp.Position.Subtract(p.Position)),
		Heading:  utils.WrapDegrees(pp.Heading - p.Heading),
	}
}

// Apply transforms a point in the pose's local space into the parent space.
func (p Pose) Apply(v Vector3) Vector3 {
	return p.Position.Add(p.Rotate(v))
}

// Rotate rotates a direction from the pose's local space into the parent
// space. Unlike Apply, the position is ignored.
func (p Pose) Rotate(v Vector3) Vector3 {
	return p.Orientation().Rotate(v)
}

func (p Pose) Orientation() Quaternion {
	return Yaw(p.Heading)
}
