package system

import (
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
)

// OrderSystem turns a right click into a move request for every selected
// agent.
type OrderSystem struct{}

func NewOrderSystem() *OrderSystem {
	return &OrderSystem{}
}

func (o *OrderSystem) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	ptr, ok := pointer(w)
	if !ok || !ptr.RightPressed {
		return
	}
	goal := ptr.World
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(e ecs.Entity, _ *component.Agent, sel *component.Selectable) {
		if !sel.Selected {
			return
		}
		if err := ecs.Add(w, e, component.MoveRequestComponent.Kind(), &component.MoveRequest{Goal: goal}); err != nil {
			panic("order: add move request: " + err.Error())
		}
	})
}
