package gait

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/adammck/spider"
	"github.com/adammck/spider/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeGate returns a gate with one foot per drift, each of which is that far
// (along the X axis) from its target.
func makeGate(name string, drifts ...float64) *spider.Gate {
	g := &spider.Gate{Name: name}
	for i, d := range drifts {
		p := math3d.Vector3{X: float64(i), Z: float64(len(name))}
		g.Feet = append(g.Feet, &spider.Foot{
			Name:     fmt.Sprintf("%s%d", name, i),
			Position: p,
			Target:   p.Add(math3d.Vector3{X: d}),
		})
	}
	return g
}

func bootScheduler(t *testing.T, stepTime float64, lift Curve, min float64, gates ...*spider.Gate) (*Scheduler, *spider.State) {
	st := &spider.State{
		Gates:           gates,
		MinStepDistance: min,
	}

	s := New(stepTime, lift)
	require.NoError(t, s.Boot(st))
	return s, st
}

func TestPicksFarthestGate(t *testing.T) {
	s, st := bootScheduler(t, 1.0, Flat, 0.1, makeGate("A", 0.05), makeGate("B", 0.2))

	// No step until more than the step time has passed.
	for i := 0; i < 4; i++ {
		require.NoError(t, s.Tick(0.25, st))
		_, ok := s.Stepping()
		assert.False(t, ok, "tick %d", i+1)
	}

	require.NoError(t, s.Tick(0.25, st))
	i, ok := s.Stepping()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, Idle, s.Phase(0))
	assert.Equal(t, Stepping, s.Phase(1))
	assert.Equal(t, 0.0, s.SinceLastStep())
}

func TestTiesGoToFirstGate(t *testing.T) {
	s, st := bootScheduler(t, 0.5, Flat, 0.1, makeGate("A", 0.3, 0.1), makeGate("B", 0.3), makeGate("C", 0.2))

	require.NoError(t, s.Tick(0.6, st))
	i, ok := s.Stepping()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestNoStepBelowMinimum(t *testing.T) {
	s, st := bootScheduler(t, 0.5, Flat, 0.1, makeGate("A", 0.1), makeGate("B", 0.02, 0.05))

	for i := 0; i < 100; i++ {
		require.NoError(t, s.Tick(0.1, st))
		_, ok := s.Stepping()
		assert.False(t, ok)
	}

	// But the timer keeps running, so a step starts as soon as it's needed.
	st.MinStepDistance = 0.01
	require.NoError(t, s.Tick(0.01, st))
	i, ok := s.Stepping()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestStepArc(t *testing.T) {
	g := makeGate("A", 1)
	f := g.Feet[0]
	s, st := bootScheduler(t, 1.0, Arch{Height: 0.5}, 10, g)

	// Let the timer run out while nothing needs to move.
	require.NoError(t, s.Tick(1.01, st))
	assert.Equal(t, math3d.Vector3{X: 0, Z: 1}, f.Position)

	st.MinStepDistance = 0.1
	exp := []math3d.Vector3{
		{X: 0.25, Y: 0.35355339059327373, Z: 1},
		{X: 0.50, Y: 0.5, Z: 1},
		{X: 0.75, Y: 0.35355339059327373, Z: 1},
		{X: 1.00, Y: 0, Z: 1},
	}

	for i, e := range exp {
		require.NoError(t, s.Tick(0.25, st))
		assert.InDelta(t, e.X, f.Position.X, 1e-9, "tick %d", i+1)
		assert.InDelta(t, e.Y, f.Position.Y, 1e-9, "tick %d", i+1)
		assert.InDelta(t, e.Z, f.Position.Z, 1e-9, "tick %d", i+1)
	}

	// Step is over, and the foot is exactly on its target.
	_, ok := s.Stepping()
	assert.False(t, ok)
	assert.Equal(t, f.Target, f.Position)
	assert.Equal(t, Idle, s.Phase(0))
}

func TestStepFollowsMovingTarget(t *testing.T) {
	g := makeGate("A", 1)
	f := g.Feet[0]
	s, st := bootScheduler(t, 1.0, Bell{Height: 1}, 0.1, g)

	require.NoError(t, s.Tick(1.01, &spider.State{Gates: st.Gates, MinStepDistance: 100}))
	require.NoError(t, s.Tick(0.5, st))
	assert.Equal(t, Stepping, s.Phase(0))
	assert.InDelta(t, 0.5, s.Progress(0), 1e-12)

	// The target moves mid-step, and the foot lands on the new one.
	f.Target = math3d.Vector3{X: 2, Z: 2}
	require.NoError(t, s.Tick(0.5, st))
	assert.Equal(t, Idle, s.Phase(0))
	assert.Equal(t, f.Target, f.Position)
}

func TestSkipsFeetAlreadyInPlace(t *testing.T) {
	g := makeGate("A", 0.04, 1)
	still, moving := g.Feet[0], g.Feet[1]
	s, st := bootScheduler(t, 1.0, Arch{Height: 1}, 0.1, g)

	before := still.Position
	require.NoError(t, s.Tick(1.01, &spider.State{Gates: st.Gates, MinStepDistance: 100}))

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Tick(0.1, st))
		assert.Equal(t, Stepping, s.Phase(0), "tick %d", i+1)
		assert.Equal(t, before, still.Position, "tick %d", i+1)
		assert.NotEqual(t, moving.Target, moving.Position, "tick %d", i+1)
	}

	require.NoError(t, s.Tick(0.1, st))
	assert.Equal(t, Idle, s.Phase(0))
	assert.Equal(t, before, still.Position)
	assert.Equal(t, moving.Target, moving.Position)
}

func TestOneGateStepsAtATime(t *testing.T) {
	gates := []*spider.Gate{
		makeGate("A", 0, 0),
		makeGate("BB", 0, 0, 0),
		makeGate("CCC", 0),
	}

	s, st := bootScheduler(t, 0.3, Bell{Height: 0.2}, 0.05, gates...)
	r := rand.New(rand.NewSource(42))
	steps := 0

	for tick := 0; tick < 5000; tick++ {

		// Jiggle the targets, as though the ground (or body) moved.
		for _, g := range gates {
			for _, f := range g.Feet {
				f.Target = f.Target.Add(math3d.Vector3{X: r.Float64()*0.1 - 0.05, Z: r.Float64()*0.1 - 0.05})
			}
		}

		before := map[*spider.Foot]math3d.Vector3{}
		for _, g := range gates {
			for _, f := range g.Feet {
				before[f] = f.Position
			}
		}

		wasStepping, _ := s.Stepping()
		require.NoError(t, s.Tick(0.01+r.Float64()*0.1, st))

		n := 0
		for i := range gates {
			if s.Phase(i) == Stepping {
				n++
			}
		}
		require.LessOrEqual(t, n, 1, "tick %d", tick)

		active, ok := s.Stepping()
		if ok {
			require.Equal(t, Stepping, s.Phase(active))
			if active != wasStepping {
				steps++
			}
		}

		// Only the feet of a gate which was stepping during this tick may have
		// moved.
		for i, g := range gates {
			if i == active || i == wasStepping {
				continue
			}
			for _, f := range g.Feet {
				require.Equal(t, before[f], f.Position, "tick %d: foot %s moved while gate %s was idle", tick, f.Name, g.Name)
			}
		}
	}

	assert.Greater(t, steps, 10)
}

func TestAbandon(t *testing.T) {
	g := makeGate("A", 1)
	s, st := bootScheduler(t, 1.0, Flat, 0.1, g)
	require.NoError(t, s.Tick(1.01, &spider.State{Gates: st.Gates, MinStepDistance: 100}))
	require.NoError(t, s.Tick(0.5, st))

	mid := g.Feet[0].Position
	s.Abandon()

	_, ok := s.Stepping()
	assert.False(t, ok)
	assert.Equal(t, Idle, s.Phase(0))
	assert.Equal(t, mid, g.Feet[0].Position)
}

func TestBootRejectsBadStepTime(t *testing.T) {
	s := New(0, nil)
	assert.Error(t, s.Boot(&spider.State{}))
}
