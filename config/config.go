package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/adammck/spider/math3d"
	"github.com/adammck/spider/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "config",
})

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Vec is a vector written as [x, y, z].
type Vec [3]float64

func (v *Vec) UnmarshalYAML(n *yaml.Node) error {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return err
	}

	if len(xs) != 3 {
		return fmt.Errorf("line %d: expected [x, y, z], got %d values", n.Line, len(xs))
	}

	copy(v[:], xs)
	return nil
}

func (v Vec) Vector3() math3d.Vector3 {
	return math3d.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type Config struct {
	Body   Body   `yaml:"body"`
	Solver Solver `yaml:"solver"`
	Gait   Gait   `yaml:"gait"`

	// Names for the terrain layers, and which of them can be walked on.
	Layers   map[string]int `yaml:"layers"`
	Walkable []string       `yaml:"walkable"`

	Terrain Terrain `yaml:"terrain"`
	Legs    []Leg   `yaml:"legs"`
	Gates   []Gate  `yaml:"gates"`
}

type Body struct {
	Position  Vec     `yaml:"position"`
	Heading   float64 `yaml:"heading"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

type Solver struct {
	Cycles        int     `yaml:"cycles"`
	VerticalStart float64 `yaml:"vertical_start"`

	// Turn the individual passes of the solver on and off. Only useful while
	// debugging it.
	StepA bool `yaml:"step_a"`
	StepB bool `yaml:"step_b"`
	StepC bool `yaml:"step_c"`
}

type Gait struct {
	StepTime         float64 `yaml:"step_time"`
	StepDist         float64 `yaml:"step_dist"`
	StandingStepDist float64 `yaml:"standing_step_dist"`
	Lift             Lift    `yaml:"lift"`
}

// Lift is the shape of the arc which feet follow while stepping. Kind is one
// of flat, bell, arch or keys. Keys are [t, height] pairs, only used by keys.
type Lift struct {
	Kind   string       `yaml:"kind"`
	Height float64      `yaml:"height"`
	Keys   [][2]float64 `yaml:"keys,omitempty"`
}

// Terrain is the ground. Kind is flat or hills. Height is the base height;
// amplitude and wavelength only apply to hills.
type Terrain struct {
	Kind       string  `yaml:"kind"`
	Height     float64 `yaml:"height"`
	Amplitude  float64 `yaml:"amplitude,omitempty"`
	Wavelength float64 `yaml:"wavelength,omitempty"`
	Layer      string  `yaml:"layer"`
	Holes      []Hole  `yaml:"holes,omitempty"`
}

type Hole struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

// Leg positions are all in the body space. Down defaults to straight down, and
// Home to the ground directly under Aim.
type Leg struct {
	Name     string    `yaml:"name"`
	Origin   Vec       `yaml:"origin"`
	Aim      Vec       `yaml:"aim"`
	Down     *Vec      `yaml:"down,omitempty"`
	Home     *Vec      `yaml:"home,omitempty"`
	Segments []float64 `yaml:"segments"`
}

type Gate struct {
	Name string   `yaml:"name"`
	Legs []string `yaml:"legs"`
}

// Default returns an eight legged spider, whose legs step in two alternating
// groups of four, on flat ground.
func Default() *Config {
	c := &Config{
		Body: Body{
			Position:  Vec{0, 1, 0},
			Height:    1,
			MoveSpeed: 1,
			TurnSpeed: 90,
		},
		Solver: Solver{
			Cycles:        10,
			VerticalStart: 1,
			StepA:         true,
			StepB:         true,
			StepC:         true,
		},
		Gait: Gait{
			StepTime:         0.25,
			StepDist:         0.3,
			StandingStepDist: 0.05,
			Lift:             Lift{Kind: "arch", Height: 0.3},
		},
		Layers: map[string]int{
			"ground": 0,
			"water":  4,
		},
		Walkable: []string{"ground"},
		Terrain: Terrain{
			Kind:  "flat",
			Layer: "ground",
		},
	}

	// Angles from the front, clockwise when looking down.
	angles := []float64{35, 75, 105, 145}
	for i, a := range angles {
		for _, side := range []struct {
			name string
			sign float64
		}{{"L", -1}, {"R", 1}} {
			c.Legs = append(c.Legs, Leg{
				Name:     fmt.Sprintf("%s%d", side.name, i+1),
				Origin:   ring(0.4, side.sign*a),
				Aim:      ring(1.6, side.sign*a),
				Segments: []float64{0.6, 0.8, 0.9},
			})
		}
	}

	c.Gates = []Gate{
		{Name: "A", Legs: []string{"L1", "R2", "L3", "R4"}},
		{Name: "B", Legs: []string{"R1", "L2", "R3", "L4"}},
	}

	return c
}

// ring returns the point at the given distance from the center of the body,
// at the given heading.
func ring(r, deg float64) Vec {
	rad := utils.Rad(deg)
	return Vec{r * math.Sin(rad), 0, r * math.Cos(rad)}
}

// Load reads the YAML file at the given path over the defaults, and validates
// the result. Lists in the file replace the default lists entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
