package sim

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/ecs/entity"
	"github.com/milk9111/tilenav/ecs/system"
	"github.com/milk9111/tilenav/navgrid"
	"github.com/milk9111/tilenav/pathfinding"
	"github.com/milk9111/tilenav/prefabs"
)

// DefaultAgents are the spawn points used when none are given. All of them
// are open ground on the arena level.
var DefaultAgents = []cp.Vector{
	{X: -144, Y: -144},
	{X: 0, Y: 0},
	{X: 23, Y: 42},
	{X: 176, Y: 144},
}

type Config struct {
	// Level overrides the level named in navigation.yaml.
	Level string
	// CostModel overrides the cost model named in navigation.yaml.
	CostModel string
	// Scenario is an optional tengo script name or path.
	Scenario string
	Agents   []cp.Vector
	// DT is the fixed step in seconds. Zero uses common.FixedDT.
	DT     float64
	Logger *log.Logger
}

// Simulation owns a world and the fixed system order that drives it.
type Simulation struct {
	cfg       Config
	world     *ecs.World
	scheduler *ecs.Scheduler
	scenario  *system.ScenarioSystem
	nav       *pathfinding.Navigator
	level     string
	logger    *log.Logger
}

func New(cfg Config) (*Simulation, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.DT <= 0 {
		cfg.DT = common.FixedDT
	}
	if cfg.Agents == nil {
		cfg.Agents = DefaultAgents
	}

	s := &Simulation{cfg: cfg, world: ecs.NewWorld(), logger: cfg.Logger}
	nav, level, err := s.loadNavigation()
	if err != nil {
		return nil, err
	}
	s.nav, s.level = nav, level
	if _, err := entity.NewLevel(s.world, level, nav); err != nil {
		return nil, err
	}
	if _, err := entity.NewInput(s.world); err != nil {
		return nil, err
	}

	spec, err := prefabs.LoadAgentSpec()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	for _, p := range cfg.Agents {
		if !nav.Grid().Contains(p) {
			s.logger.Warn("agent spawn outside grid", "pos", p)
		}
		if _, err := entity.NewAgentAt(s.world, spec, p); err != nil {
			return nil, err
		}
	}

	if cfg.Scenario != "" {
		src, err := prefabs.LoadScript(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		s.scenario, err = system.NewScenarioSystem(cfg.Scenario, src)
		if err != nil {
			return nil, err
		}
		s.scenario.Logger = s.logger
	}

	steer := system.NewSteeringSystem()
	steer.DT = cfg.DT
	s.scheduler = ecs.NewScheduler(
		system.NewSelectionSystem(),
		system.NewOrderSystem(),
	)
	if s.scenario != nil {
		s.scheduler.Add(s.scenario)
	}
	s.scheduler.Add(system.NewPathfindingSystem())
	s.scheduler.Add(steer)
	s.scheduler.Add(system.NewAnimationSystem())
	return s, nil
}

func (s *Simulation) loadNavigation() (*pathfinding.Navigator, string, error) {
	spec, err := prefabs.LoadNavigationSpec()
	if err != nil {
		return nil, "", err
	}
	if s.cfg.CostModel != "" {
		spec.CostModel = s.cfg.CostModel
	}
	level := s.cfg.Level
	if level == "" {
		level = spec.Level
	}
	_, nav, err := entity.LoadNavigation(spec, level, s.logger)
	if err != nil {
		return nil, "", err
	}
	return nav, level, nil
}

func (s *Simulation) World() *ecs.World                 { return s.world }
func (s *Simulation) Navigator() *pathfinding.Navigator { return s.nav }
func (s *Simulation) Grid() *navgrid.Grid               { return s.nav.Grid() }
func (s *Simulation) Level() string                     { return s.level }
func (s *Simulation) DT() float64                       { return s.cfg.DT }

// Step runs every system once and returns the events they pushed.
func (s *Simulation) Step() []ecs.Event {
	s.scheduler.Update(s.world)
	events := s.world.Events().Drain()
	for _, ev := range events {
		switch ev.Type {
		case ecs.EventArrived:
			s.logger.Info("agent arrived", "agent", ev.Entity, "pos", ev.Data, "tick", s.world.Tick())
		case ecs.EventPathFailed:
			if f, ok := ev.Data.(ecs.PathFailure); ok {
				s.logger.Warn("path failed", "agent", ev.Entity, "goal", f.Goal, "err", f.Err)
			}
		case ecs.EventPathPlanned:
			s.logger.Debug("path planned", "agent", ev.Entity, "waypoints", ev.Data)
		}
	}
	return events
}

// Agents lists agents in spawn order.
func (s *Simulation) Agents() []ecs.Entity {
	var out []ecs.Entity
	for _, e := range ecs.Entities(s.world) {
		if ecs.Has(s.world, e, component.AgentComponent.Kind()) {
			out = append(out, e)
		}
	}
	return out
}

// Command sends agent i to goal through the pathfinding system.
func (s *Simulation) Command(i int, goal cp.Vector) error {
	agents := s.Agents()
	if i < 0 || i >= len(agents) {
		return fmt.Errorf("sim: no agent %d", i)
	}
	return ecs.Add(s.world, agents[i], component.MoveRequestComponent.Kind(), &component.MoveRequest{Goal: goal})
}

// Reload reacts to a changed file. The active level and navigation.yaml
// rebuild the grid and re-plan active orders, agent.yaml retunes agents and
// the running scenario script is recompiled. It reports whether anything
// changed.
func (s *Simulation) Reload(path string) (bool, error) {
	switch prefabs.ClassifyPath(path) {
	case prefabs.ChangeLevel:
		if !sameFile(path, s.level) {
			return false, nil
		}
		s.cfg.Level = path
		return changed(s.reloadGrid())
	case prefabs.ChangeSpec:
		switch filepath.Base(path) {
		case "navigation.yaml":
			return changed(s.reloadGrid())
		case "agent.yaml":
			return changed(s.reloadAgents())
		}
		return false, nil
	case prefabs.ChangeScript:
		if s.scenario == nil || !sameFile(path, s.cfg.Scenario) {
			return false, nil
		}
		src, err := prefabs.LoadScript(path)
		if err != nil {
			return false, err
		}
		if err := s.scenario.Reload(s.cfg.Scenario, src); err != nil {
			return false, err
		}
		s.logger.Info("scenario reloaded", "script", s.cfg.Scenario)
		return true, nil
	}
	return false, nil
}

func (s *Simulation) reloadGrid() error {
	nav, level, err := s.loadNavigation()
	if err != nil {
		return err
	}
	n, err := entity.ReplaceGrid(s.world, level, nav)
	if err != nil {
		return err
	}
	s.nav, s.level = nav, level
	s.logger.Info("grid reloaded", "level", level, "replanned", n)
	return nil
}

func (s *Simulation) reloadAgents() error {
	spec, err := prefabs.LoadAgentSpec()
	if err != nil {
		return err
	}
	spec.Defaults()
	ecs.ForEach2(s.world, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(_ ecs.Entity, a *component.Agent, sel *component.Selectable) {
		a.MaxSpeed = spec.MaxSpeed
		a.MaxForce = spec.MaxForce
		a.Controller.ArrivalRadius = spec.ArrivalRadius
		a.Controller.IdleDecay = spec.IdleDecay
		sel.Radius = spec.Radius
	})
	s.logger.Info("agent spec reloaded", "max_speed", spec.MaxSpeed, "max_force", spec.MaxForce)
	return nil
}

func changed(err error) (bool, error) {
	return err == nil, err
}

func sameFile(changed, name string) bool {
	base := func(p string) string {
		return strings.TrimSuffix(filepath.Base(p), ".tengo")
	}
	return base(changed) == base(name)
}
