package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type AgentSpec struct {
	Name          string        `yaml:"name"`
	MaxSpeed      float64       `yaml:"max_speed"`
	MaxForce      float64       `yaml:"max_force"`
	ArrivalRadius float64       `yaml:"arrival_radius"`
	IdleDecay     float64       `yaml:"idle_decay"`
	Radius        float64       `yaml:"radius"`
	Animation     AnimationSpec `yaml:"animation"`
}

// Defaults fills zero fields with the stock unit values.
func (s *AgentSpec) Defaults() {
	if s.Name == "" {
		s.Name = "unit"
	}
	if s.MaxSpeed <= 0 {
		s.MaxSpeed = 100
	}
	if s.MaxForce <= 0 {
		s.MaxForce = 250
	}
	if s.ArrivalRadius <= 0 {
		s.ArrivalRadius = 6
	}
	if s.IdleDecay < 0 {
		s.IdleDecay = 0
	}
	if s.Radius <= 0 {
		s.Radius = 12
	}
}

func LoadAgentSpec() (*AgentSpec, error) {
	spec, err := LoadSpec[AgentSpec]("agent.yaml")
	if err != nil {
		return nil, err
	}
	spec.Defaults()
	return &spec, nil
}

type AnimationSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
	Playing bool                        `yaml:"playing"`
}

type AnimationDefSpec struct {
	Name       string  `yaml:"name"`
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type NavigationSpec struct {
	Level     string `yaml:"level"`
	CostModel string `yaml:"cost_model"`
	Origin    string `yaml:"origin"`
}

const (
	OriginCentered = "centered"
	OriginCorner   = "corner"
)

func (s *NavigationSpec) Validate() error {
	if s.Level == "" {
		s.Level = "arena.yaml"
	}
	if s.CostModel == "" {
		s.CostModel = "octile"
	}
	switch strings.ToLower(s.Origin) {
	case "":
		s.Origin = OriginCentered
	case OriginCentered, OriginCorner:
		s.Origin = strings.ToLower(s.Origin)
	default:
		return fmt.Errorf("prefabs: unknown origin %q", s.Origin)
	}
	return nil
}

// Centered reports whether the grid origin puts the map centre at (0,0).
func (s *NavigationSpec) Centered() bool {
	return s.Origin != OriginCorner
}

func LoadNavigationSpec() (*NavigationSpec, error) {
	spec, err := LoadSpec[NavigationSpec]("navigation.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
