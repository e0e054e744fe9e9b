package system

import (
	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/steering"
)

// SteeringSystem advances every agent by one fixed step and mirrors the
// result into its Transform.
type SteeringSystem struct {
	DT float64
}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{DT: common.FixedDT}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := s.DT
	if dt <= 0 {
		dt = common.FixedDT
	}

	ecs.ForEach(w, component.AgentComponent.Kind(), func(e ecs.Entity, a *component.Agent) {
		switch a.Controller.Advance(&a.Agent, dt) {
		case steering.WaypointReached:
			w.Events().Push(ecs.Event{Type: ecs.EventWaypointReached, Entity: e, Data: a.Position})
		case steering.Arrived:
			w.Events().Push(ecs.Event{Type: ecs.EventArrived, Entity: e, Data: a.Position})
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Set(a.Position)
		}
	})
}
