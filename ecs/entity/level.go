package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
	"github.com/milk9111/tilenav/levels"
	"github.com/milk9111/tilenav/navgrid"
	"github.com/milk9111/tilenav/pathfinding"
	"github.com/milk9111/tilenav/prefabs"
)

// LoadNavigation builds the grid and navigator described by spec.
func LoadNavigation(spec *prefabs.NavigationSpec, levelPath string, logger *log.Logger) (*navgrid.Grid, *pathfinding.Navigator, error) {
	if spec == nil {
		spec = &prefabs.NavigationSpec{}
	}
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}
	if levelPath == "" {
		levelPath = spec.Level
	}
	lvl, err := levels.LoadLevel(levelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", levelPath, err)
	}
	grid, err := navgrid.FromLevel(lvl, spec.Centered())
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", levelPath, err)
	}
	costs, err := pathfinding.ParseCostModel(spec.CostModel)
	if err != nil {
		return nil, nil, err
	}
	opts := []pathfinding.Option{pathfinding.WithCostModel(costs)}
	if logger != nil {
		opts = append(opts, pathfinding.WithLogger(logger))
	}
	return grid, pathfinding.NewNavigator(grid, opts...), nil
}

// NewLevel creates the NavGrid singleton.
func NewLevel(w *ecs.World, name string, nav *pathfinding.Navigator) (ecs.Entity, error) {
	if w == nil || nav == nil || nav.Grid() == nil {
		return 0, fmt.Errorf("level: world and navigator are required")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NavGridComponent.Kind(), &component.NavGrid{
		Level:     name,
		Grid:      nav.Grid(),
		Navigator: nav,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("level: add nav grid: %w", err)
	}
	return e, nil
}

// ReplaceGrid swaps in a new navigator and asks every agent with a pending
// order to re-plan to its final waypoint. It returns the number of agents
// re-planned.
func ReplaceGrid(w *ecs.World, name string, nav *pathfinding.Navigator) (int, error) {
	e, ok := ecs.First(w, component.NavGridComponent.Kind())
	if !ok {
		_, err := NewLevel(w, name, nav)
		return 0, err
	}
	ng, _ := ecs.Get(w, e, component.NavGridComponent.Kind())
	ng.Level = name
	ng.Grid = nav.Grid()
	ng.Navigator = nav

	replanned := 0
	ecs.ForEach(w, component.AgentComponent.Kind(), func(ae ecs.Entity, a *component.Agent) {
		if a.Order.Len() == 0 || ecs.Has(w, ae, component.MoveRequestComponent.Kind()) {
			return
		}
		goal := a.Order.Waypoints[a.Order.Len()-1]
		if err := ecs.Add(w, ae, component.MoveRequestComponent.Kind(), &component.MoveRequest{Goal: goal}); err == nil {
			replanned++
		}
	})
	return replanned, nil
}

// NewInput creates the Pointer and SelectionBox singletons.
func NewInput(w *ecs.World) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("input: world is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("input: add pointer: %w", err)
	}
	if err := ecs.Add(w, e, component.SelectionBoxComponent.Kind(), &component.SelectionBox{}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("input: add selection box: %w", err)
	}
	return e, nil
}
