package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
)

// clickSlop is the drag distance below which a left release counts as a
// click rather than a box.
const clickSlop = 4.0

type SelectionSystem struct{}

func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{}
}

func (s *SelectionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ptr, ok := pointer(w)
	if !ok {
		return
	}
	boxEnt, ok := ecs.First(w, component.SelectionBoxComponent.Kind())
	if !ok {
		return
	}
	box, _ := ecs.Get(w, boxEnt, component.SelectionBoxComponent.Kind())

	if ptr.LeftPressed {
		box.Active = true
		box.Start = ptr.World
		box.End = ptr.World
	}
	if !box.Active {
		return
	}
	box.End = ptr.World
	if ptr.LeftDown && !ptr.LeftReleased {
		return
	}

	box.Active = false
	rect := box.Rect()
	if rect.R-rect.L < clickSlop && rect.T-rect.B < clickSlop {
		selectAt(w, ptr.World, ptr.Additive)
		return
	}
	selectIn(w, rect, ptr.Additive)
}

func selectIn(w *ecs.World, rect cp.BB, additive bool) {
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(e ecs.Entity, a *component.Agent, sel *component.Selectable) {
		inside := rect.ContainsVect(a.Position)
		if additive {
			sel.Selected = sel.Selected || inside
			return
		}
		sel.Selected = inside
	})
}

func selectAt(w *ecs.World, p cp.Vector, additive bool) {
	var (
		best     ecs.Entity
		bestDist = -1.0
	)
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.SelectableComponent.Kind(), func(e ecs.Entity, a *component.Agent, sel *component.Selectable) {
		d := a.Position.Distance(p)
		if d <= sel.Radius && (bestDist < 0 || d < bestDist) {
			best, bestDist = e, d
		}
	})
	ecs.ForEach(w, component.SelectableComponent.Kind(), func(e ecs.Entity, sel *component.Selectable) {
		if e == best && bestDist >= 0 {
			sel.Selected = true
			return
		}
		if !additive {
			sel.Selected = false
		}
	})
}

func pointer(w *ecs.World) (*component.Pointer, bool) {
	e, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.PointerComponent.Kind())
}

func navGrid(w *ecs.World) (*component.NavGrid, bool) {
	e, ok := ecs.First(w, component.NavGridComponent.Kind())
	if !ok {
		return nil, false
	}
	ng, ok := ecs.Get(w, e, component.NavGridComponent.Kind())
	if !ok || ng.Navigator == nil {
		return nil, false
	}
	return ng, true
}
