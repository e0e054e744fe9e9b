package pathfinding

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/navgrid"
)

// Plan is the full result of a path request. Corridor, Portals and Explored
// are kept for debug drawing.
type Plan struct {
	Start     cp.Vector
	Goal      cp.Vector
	Corridor  []navgrid.Cell
	Explored  []navgrid.Cell
	Portals   []Portal
	Waypoints []cp.Vector
}

// Navigator turns world-space requests into smoothed waypoint paths over a
// single grid.
type Navigator struct {
	grid   *navgrid.Grid
	finder *Pathfinder
	logger *log.Logger
}

type Option func(*Navigator)

func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

func WithCostModel(c CostModel) Option {
	return func(n *Navigator) {
		n.finder = NewPathfinder(c)
	}
}

func NewNavigator(grid *navgrid.Grid, opts ...Option) *Navigator {
	n := &Navigator{
		grid:   grid,
		finder: NewPathfinder(OctileCost),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Navigator) Grid() *navgrid.Grid {
	if n == nil {
		return nil
	}
	return n.grid
}

func (n *Navigator) CostModel() CostModel {
	return n.finder.Costs
}

// RequestPath returns waypoints from start to goal. The first point is start
// and the last is goal, exactly.
func (n *Navigator) RequestPath(start, goal cp.Vector) ([]cp.Vector, error) {
	plan, err := n.Plan(start, goal)
	if err != nil {
		return nil, err
	}
	return plan.Waypoints, nil
}

func (n *Navigator) Plan(start, goal cp.Vector) (Plan, error) {
	if n == nil || n.grid == nil {
		return Plan{}, fmt.Errorf("pathfinding: navigator has no grid: %w", ErrPathNotFound)
	}
	startCell, ok := n.grid.WorldToGrid(start)
	if !ok {
		n.logger.Warn("path request start outside grid", "start", start)
		return Plan{}, fmt.Errorf("pathfinding: start %v: %w", start, navgrid.ErrOutOfBounds)
	}
	goalCell, ok := n.grid.WorldToGrid(goal)
	if !ok {
		n.logger.Warn("path request goal outside grid", "goal", goal)
		return Plan{}, fmt.Errorf("pathfinding: goal %v: %w", goal, navgrid.ErrOutOfBounds)
	}

	res, err := n.finder.Search(n.grid, startCell, goalCell)
	if err != nil {
		n.logger.Warn("no corridor", "from", startCell, "to", goalCell, "explored", len(res.Explored), "err", err)
		return Plan{Start: start, Goal: goal, Explored: res.Explored}, err
	}

	funnel := NewFunnel(start, goal, res.Corridor, n.grid.TileSize(), n.grid.Origin())
	waypoints := funnel.StringPull()
	n.logger.Debug("path planned",
		"from", startCell,
		"to", goalCell,
		"corridor", len(res.Corridor),
		"portals", len(funnel.Portals),
		"waypoints", len(waypoints),
	)
	return Plan{
		Start:     start,
		Goal:      goal,
		Corridor:  res.Corridor,
		Explored:  res.Explored,
		Portals:   funnel.Portals,
		Waypoints: waypoints,
	}, nil
}
