package config

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	m, err := gdata.Open(gdata.Config{
		AppName: "spider_test",
	})
	require.NoError(t, err)
	return m
}

func TestStoreWithoutManager(t *testing.T) {
	def := Default().Tuning()
	s := NewStore(nil, def)
	assert.Equal(t, def, s.Tuning())

	tu := def
	tu.TurnSpeed = 10
	s.Set(tu)
	require.NoError(t, s.Save())
	assert.Equal(t, 10.0, s.Tuning().TurnSpeed)

	// Nothing was really saved.
	require.NoError(t, s.Load())
	assert.Equal(t, def, s.Tuning())
}

func TestStoreSaveAndLoad(t *testing.T) {
	m := openManager(t)
	def := Default().Tuning()

	s := NewStore(m, def)
	assert.Equal(t, def, s.Tuning())

	tu := def
	tu.Solver.Cycles = 4
	tu.Gait.Lift = Lift{Kind: "keys", Keys: [][2]float64{{0, 0}, {0.5, 0.2}, {1, 0}}}
	s.Set(tu)
	require.NoError(t, s.Save())

	other := NewStore(m, def)
	assert.Equal(t, tu, other.Tuning())

	other.Reset()
	assert.Equal(t, def, other.Tuning())
}

func TestStoreKeepsDefaultsForMissingFields(t *testing.T) {
	m := openManager(t)
	require.NoError(t, m.SaveObjectProp(tuningObject, tuningProperty, []byte("move_speed: 3\n")))

	def := Default().Tuning()
	s := NewStore(m, def)
	assert.Equal(t, 3.0, s.Tuning().MoveSpeed)
	assert.Equal(t, def.Gait, s.Tuning().Gait)
}

func TestStoreBadData(t *testing.T) {
	m := openManager(t)
	require.NoError(t, m.SaveObjectProp(tuningObject, tuningProperty, []byte("move_speed: [\n")))

	def := Default().Tuning()
	s := NewStore(m, def)
	assert.Equal(t, def, s.Tuning())
	assert.ErrorContains(t, s.Load(), "failed to unmarshal tuning")
}
