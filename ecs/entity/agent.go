package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/prefabs"
	"github.com/milk9111/tilenav/steering"
)

// NewAgent spawns an agent from prefabs/agent.yaml at pos.
func NewAgent(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	spec, err := prefabs.LoadAgentSpec()
	if err != nil {
		return 0, fmt.Errorf("agent: %w", err)
	}
	return NewAgentAt(w, spec, pos)
}

func NewAgentAt(w *ecs.World, spec *prefabs.AgentSpec, pos cp.Vector) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("agent: world is nil")
	}
	if spec == nil {
		spec = &prefabs.AgentSpec{}
	}
	s := *spec
	s.Defaults()

	e := ecs.CreateEntity(w)
	agent := &component.Agent{
		Agent: *steering.NewAgent(pos, s.MaxSpeed, s.MaxForce),
		Name:  s.Name,
		Controller: steering.Controller{
			ArrivalRadius: s.ArrivalRadius,
			IdleDecay:     s.IdleDecay,
		},
	}
	if err := ecs.Add(w, e, component.AgentComponent.Kind(), agent); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("agent: add agent: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("agent: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SelectableComponent.Kind(), &component.Selectable{Radius: s.Radius}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("agent: add selectable: %w", err)
	}
	if anim := animationFromSpec(s.Animation); anim != nil {
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("agent: add animation: %w", err)
		}
	}
	return e, nil
}

func animationFromSpec(spec prefabs.AnimationSpec) *component.Animation {
	if len(spec.Defs) == 0 {
		return nil
	}
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		if d.Name == "" {
			d.Name = name
		}
		defs[name] = component.AnimationDef{
			Name:       d.Name,
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	current := spec.Current
	if _, ok := defs[current]; !ok {
		current = ""
		for name := range defs {
			if current == "" || name < current {
				current = name
			}
		}
	}
	return &component.Animation{Defs: defs, Current: current, Playing: true}
}

// SetPosition moves an agent and drops its order.
func SetPosition(w *ecs.World, e ecs.Entity, pos cp.Vector) error {
	a, ok := ecs.Get(w, e, component.AgentComponent.Kind())
	if !ok {
		return fmt.Errorf("agent: entity %s has no agent", e)
	}
	a.Position = pos
	a.Command(nil)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Set(pos)
	}
	return nil
}
