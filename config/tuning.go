package config

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	tuningObject   = "tuning"
	tuningProperty = "current"
)

// Tuning is the part of the config which can be changed while the spider is
// running, and is remembered between runs.
type Tuning struct {
	Solver    Solver  `yaml:"solver"`
	Gait      Gait    `yaml:"gait"`
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

func (c *Config) Tuning() Tuning {
	return Tuning{
		Solver:    c.Solver,
		Gait:      c.Gait,
		MoveSpeed: c.Body.MoveSpeed,
		TurnSpeed: c.Body.TurnSpeed,
	}
}

// Store keeps the tuning in the user's data directory. Without a manager it
// still works, but forgets everything on exit.
type Store struct {
	manager  *gdata.Manager
	defaults Tuning
	tuning   Tuning
}

// OpenStore opens the data directory for the named app.
func OpenStore(app string, defaults Tuning) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: app,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir: %w", err)
	}

	return NewStore(m, defaults), nil
}

// NewStore returns a store loaded from the given manager, which may be nil.
// If nothing was saved, or it can't be read, the defaults are used.
func NewStore(m *gdata.Manager, defaults Tuning) *Store {
	s := &Store{
		manager:  m,
		defaults: defaults,
		tuning:   defaults,
	}

	if err := s.Load(); err != nil {
		log.Warnf("%s (using defaults)", err)
	}

	return s
}

func (s *Store) Load() error {
	s.tuning = s.defaults

	if s.manager == nil || !s.manager.ObjectPropExists(tuningObject, tuningProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(tuningObject, tuningProperty)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	// Fields missing from the saved tuning keep their defaults.
	t := s.defaults
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to unmarshal tuning: %w", err)
	}

	s.tuning = t
	log.Infof("loaded tuning")
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.tuning)
	if err != nil {
		return fmt.Errorf("failed to marshal tuning: %w", err)
	}

	if err := s.manager.SaveObjectProp(tuningObject, tuningProperty, data); err != nil {
		return fmt.Errorf("failed to save tuning: %w", err)
	}

	log.Infof("saved tuning")
	return nil
}

func (s *Store) Tuning() Tuning {
	return s.tuning
}

// Set replaces the tuning in memory. Call Save to keep it.
func (s *Store) Set(t Tuning) {
	s.tuning = t
}

// Reset forgets any changes, and goes back to the defaults.
func (s *Store) Reset() {
	s.tuning = s.defaults
}
