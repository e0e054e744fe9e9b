package system

import (
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
)

// PathfindingSystem consumes move requests and replaces the agent's order
// with the planned waypoints.
type PathfindingSystem struct{}

func NewPathfindingSystem() *PathfindingSystem {
	return &PathfindingSystem{}
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ng, ok := navGrid(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.AgentComponent.Kind(), component.MoveRequestComponent.Kind(), func(e ecs.Entity, a *component.Agent, req *component.MoveRequest) {
		goal := req.Goal
		ecs.Remove(w, e, component.MoveRequestComponent.Kind())

		plan, err := ng.Navigator.Plan(a.Position, goal)
		debug := &component.PathDebug{
			Goal:      goal,
			Corridor:  plan.Corridor,
			Explored:  plan.Explored,
			Portals:   plan.Portals,
			Waypoints: plan.Waypoints,
			Failed:    err != nil,
		}
		if addErr := ecs.Add(w, e, component.PathDebugComponent.Kind(), debug); addErr != nil {
			panic("pathfinding: add path debug: " + addErr.Error())
		}

		if err != nil {
			a.Stop()
			w.Events().Push(ecs.Event{
				Type:   ecs.EventPathFailed,
				Entity: e,
				Data:   ecs.PathFailure{Goal: goal, Err: err},
			})
			return
		}

		// The first waypoint is where the agent already stands.
		a.Command(plan.Waypoints[1:])
		w.Events().Push(ecs.Event{Type: ecs.EventPathPlanned, Entity: e, Data: len(plan.Waypoints)})
	})
}
