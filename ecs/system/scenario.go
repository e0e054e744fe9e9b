package system

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
)

var scenarioModules = []string{"math", "rand", "text", "fmt"}

// ScenarioSystem runs a tengo script every tick. The script sees `tick` and
// `agents` and may set `orders` to an array of {agent, x, y} maps; each order
// becomes a MoveRequest for the agent with that index.
type ScenarioSystem struct {
	Logger *log.Logger

	mu       sync.Mutex
	name     string
	compiled *tengo.Compiled
}

func NewScenarioSystem(name string, src []byte) (*ScenarioSystem, error) {
	s := &ScenarioSystem{Logger: log.Default()}
	if err := s.Reload(name, src); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload compiles src and swaps it in. The old script keeps running when
// compilation fails.
func (s *ScenarioSystem) Reload(name string, src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("agents", 0)
	script.SetImports(stdlib.GetModuleMap(scenarioModules...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("scenario %s: compile: %w", name, err)
	}

	s.mu.Lock()
	s.name = name
	s.compiled = compiled
	s.mu.Unlock()
	return nil
}

func (s *ScenarioSystem) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *ScenarioSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.mu.Lock()
	compiled := s.compiled
	name := s.name
	s.mu.Unlock()
	if compiled == nil {
		return
	}

	agents := agentsInOrder(w)
	orders, err := runScenario(compiled, int(w.Tick()), len(agents))
	if err != nil {
		s.logger().Error("scenario failed", "script", name, "tick", w.Tick(), "err", err)
		return
	}
	for _, o := range orders {
		if o.agent < 0 || o.agent >= len(agents) {
			s.logger().Warn("scenario order for unknown agent", "script", name, "agent", o.agent)
			continue
		}
		if err := ecs.Add(w, agents[o.agent], component.MoveRequestComponent.Kind(), &component.MoveRequest{Goal: o.goal}); err != nil {
			panic("scenario: add move request: " + err.Error())
		}
	}
}

func (s *ScenarioSystem) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

type scenarioOrder struct {
	agent int
	goal  cp.Vector
}

func runScenario(compiled *tengo.Compiled, tick, agents int) ([]scenarioOrder, error) {
	if err := compiled.Set("tick", tick); err != nil {
		return nil, err
	}
	if err := compiled.Set("agents", agents); err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("orders") {
		return nil, nil
	}

	raw := compiled.Get("orders").Array()
	out := make([]scenarioOrder, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("orders[%d]: want map, got %T", i, item)
		}
		idx, okA := asNumber(m["agent"])
		x, okX := asNumber(m["x"])
		y, okY := asNumber(m["y"])
		if !okA || !okX || !okY {
			return nil, fmt.Errorf("orders[%d]: need numeric agent, x and y", i)
		}
		out = append(out, scenarioOrder{agent: int(idx), goal: cp.Vector{X: x, Y: y}})
	}
	return out, nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// agentsInOrder lists agents by entity slot so script indices stay stable.
func agentsInOrder(w *ecs.World) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.AgentComponent.Kind()) {
			out = append(out, e)
		}
	}
	return out
}
