package config

import (
	"testing"

	"github.com/adammck/spider/components/controller"
	complegs "github.com/adammck/spider/components/legs"
	"github.com/adammck/spider/components/legs/gait"
	"github.com/adammck/spider/components/motion"
	"github.com/adammck/spider/components/probe"
	"github.com/adammck/spider/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stillPointer struct{}

func (stillPointer) Held() bool {
	return false
}

func (stillPointer) Ray() (math3d.Vector3, math3d.Vector3) {
	return math3d.ZeroVector3, math3d.Down
}

func TestBuildOrdersComponents(t *testing.T) {
	r, err := Build(Default(), stillPointer{})
	require.NoError(t, err)

	cs := r.Spider.Components
	require.Len(t, cs, 5)
	assert.IsType(t, &controller.Controller{}, cs[0])
	assert.IsType(t, &motion.Motion{}, cs[1])
	assert.IsType(t, &probe.Probe{}, cs[2])
	assert.IsType(t, &gait.Scheduler{}, cs[3])
	assert.IsType(t, &complegs.Legs{}, cs[4])

	// Without a pointer, there's no controller.
	r, err = Build(Default(), nil)
	require.NoError(t, err)
	assert.Len(t, r.Spider.Components, 4)
}

func TestBuildFeet(t *testing.T) {
	c := Default()
	home := Vec{2, -1, 0}
	c.Legs[0].Home = &home

	r, err := Build(c, nil)
	require.NoError(t, err)

	st := r.Spider.State
	require.Len(t, st.Feet, 8)
	require.Len(t, st.Gates, 2)
	assert.Equal(t, math3d.ZeroVector3, st.Target)

	l1 := st.Foot("L1")
	require.NotNil(t, l1)
	assert.Equal(t, math3d.Vector3{X: 2, Y: -1}, l1.Home)
	assert.InDelta(t, 2.3, l1.Leg.Length(), 1e-12)
	assert.Same(t, l1, st.Gates[0].Feet[0])

	// Home defaults to the ground under the aim point.
	r1 := st.Foot("R1")
	assert.Equal(t, r1.Aim.Add(math3d.Vector3{Y: -1}), r1.Home)
	assert.Equal(t, math3d.Down, r1.Down)
}

func TestBuildInvalid(t *testing.T) {
	c := Default()
	c.Gates = nil
	_, err := Build(c, nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWalkAndSettle(t *testing.T) {
	r, err := Build(Default(), nil)
	require.NoError(t, err)
	require.NoError(t, r.Spider.Boot())

	st := r.Spider.State
	for _, f := range st.Feet {
		assert.InDelta(t, 0.0, f.Position.Y, 1e-9, "foot %s", f.Name)
		assert.Equal(t, f.Position, f.Target, "foot %s", f.Name)
	}

	st.Target = math3d.Vector3{X: 3}
	for i := 0; i < 600; i++ {
		r.Spider.Tick(1.0 / 60)
	}

	assert.InDelta(t, 0.0, st.Body.Position.Distance(math3d.Vector3{X: 3, Y: 1}), 1e-9)
	assert.InDelta(t, 90.0, st.Body.Heading, 1e-6)
	assert.Equal(t, 0.05, st.MinStepDistance)

	_, stepping := r.Gait.Stepping()
	assert.False(t, stepping)

	for _, f := range st.Feet {
		assert.Less(t, f.Drift(), st.MinStepDistance, "foot %s", f.Name)
		assert.InDelta(t, 0.0, f.Position.Y, 1e-9, "foot %s", f.Name)

		j := f.Leg.Joints()
		assert.InDelta(t, 0.0, j[0].Distance(st.Hip(f)), 1e-9, "foot %s", f.Name)
		assert.InDelta(t, 0.0, j[len(j)-1].Distance(f.Position), 1e-3, "foot %s", f.Name)
	}
}

func TestApplyTuning(t *testing.T) {
	c := Default()
	r, err := Build(c, nil)
	require.NoError(t, err)

	tu := c.Tuning()
	tu.Solver.StepA = false
	tu.Solver.Cycles = 3
	tu.Gait.StepTime = 1.5
	tu.Gait.StepDist = 0.7
	tu.Gait.Lift = Lift{Kind: "bell", Height: 1}
	tu.MoveSpeed = 4

	require.NoError(t, r.Apply(tu))
	assert.False(t, r.Legs.Options.Reset)
	assert.True(t, r.Legs.Options.ReachTarget)
	assert.Equal(t, 3, r.Legs.Options.Cycles)
	assert.Equal(t, 1.5, r.Gait.StepTime)
	assert.Equal(t, gait.Bell{Height: 1}, r.Gait.Lift)
	assert.Equal(t, 0.7, r.Motion.StepDistance)
	assert.Equal(t, 4.0, r.Spider.State.Body.MoveSpeed)

	tu.Gait.StepTime = 0
	assert.Error(t, r.Apply(tu))
	assert.Equal(t, 1.5, r.Gait.StepTime)
}
