package motion

import (
	"math"

	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/utils"
	"github.com/sirupsen/logrus"
)

const (

	// The body only turns to face its direction of travel when the target is
	// at least this far away horizontally. Without this, it spins around on
	// the spot as it arrives.
	rotateDeadzone = 0.2

	// The body is considered to be standing still when it's this close to
	// where it wants to be.
	movingEpsilon = 0.001
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "motion",
})

// Motion walks the body towards the target, and decides how far the feet must
// drift before they're worth moving.
type Motion struct {

	// The minimum step distance while walking. This should be fairly large,
	// so that steps are decisive.
	StepDistance float64

	// The minimum step distance while standing. This should be small, so the
	// feet settle, but not zero, or they jitter forever.
	StandingStepDistance float64

	moving bool
}

func New(stepDistance, standingStepDistance float64) *Motion {
	return &Motion{
		StepDistance:         stepDistance,
		StandingStepDistance: standingStepDistance,
	}
}

func (m *Motion) Boot(state *spider.State) error {
	state.MinStepDistance = m.StandingStepDistance
	return nil
}

func (m *Motion) Tick(dt float64, state *spider.State) error {
	b := &state.Body

	goal := state.Target.Add(math3d.Vector3{Y: b.Height})
	vecToGoal := goal.Subtract(b.Position)
	distToGoal := vecToGoal.Magnitude()

	// Never move further than the goal, or the body would oscillate around it.
	vecMove := vecToGoal
	if maxMove := b.MoveSpeed * dt; distToGoal > maxMove {
		vecMove = vecToGoal.Unit().MultiplyByScalar(maxMove)
	}

	if look := vecToGoal.Horizontal(); look.Magnitude() > rotateDeadzone {
		b.Heading = Turn(b.Heading, Heading(look), b.TurnSpeed*dt)
	}

	b.Position = b.Position.Add(vecMove)

	moving := distToGoal > movingEpsilon
	if moving {
		state.MinStepDistance = m.StepDistance
	} else {
		state.MinStepDistance = m.StandingStepDistance
	}

	if moving != m.moving {
		log.Infof("moving=%v pos=%s", moving, b.Position)
		m.moving = moving
	}

	return nil
}

// Heading returns the heading (in degrees) which points the forward axis along
// the X/Z components of the given vector.
func Heading(v math3d.Vector3) float64 {
	return utils.Deg(math.Atan2(v.X, v.Z))
}

// Turn returns the heading from, rotated towards the heading to by no more
// than maxDelta degrees, the short way around.
func Turn(from, to, maxDelta float64) float64 {
	d := utils.WrapDegrees(to - from)
	d = utils.Clamp(d, -maxDelta, maxDelta)
	return utils.WrapDegrees(from + d)
}
