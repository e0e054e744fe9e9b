package pathfinding

import (
	"fmt"

	"github.com/milk9111/tilenav/navgrid"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Pathfinder runs A* over a navigation grid. It keeps no state between
// calls, so one value may serve any number of requests.
type Pathfinder struct {
	Costs CostModel
}

func NewPathfinder(costs CostModel) *Pathfinder {
	return &Pathfinder{Costs: costs}
}

// SearchResult is a corridor plus the cells the search closed, in order.
type SearchResult struct {
	Corridor []navgrid.Cell
	Explored []navgrid.Cell
}

type openNode struct {
	cell navgrid.Cell
	g    int
	h    int
}

func (n openNode) f() int { return n.g + n.h }

// lessNode orders by f, then h, then Y, then X.
func lessNode(a, b openNode) bool {
	if af, bf := a.f(), b.f(); af != bf {
		return af < bf
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.cell.Y != b.cell.Y {
		return a.cell.Y < b.cell.Y
	}
	return a.cell.X < b.cell.X
}

// FindCorridor returns the cells from start to goal inclusive, each adjacent
// to the next.
func (p *Pathfinder) FindCorridor(g *navgrid.Grid, start, goal navgrid.Cell) ([]navgrid.Cell, error) {
	res, err := p.Search(g, start, goal)
	if err != nil {
		return nil, err
	}
	return res.Corridor, nil
}

func (p *Pathfinder) Search(g *navgrid.Grid, start, goal navgrid.Cell) (SearchResult, error) {
	if g == nil {
		return SearchResult{}, fmt.Errorf("pathfinding: nil grid: %w", ErrPathNotFound)
	}
	if _, err := g.At(start); err != nil {
		return SearchResult{}, fmt.Errorf("pathfinding: start: %w", err)
	}
	if _, err := g.At(goal); err != nil {
		return SearchResult{}, fmt.Errorf("pathfinding: goal: %w", err)
	}
	if start == goal {
		return SearchResult{Corridor: []navgrid.Cell{start}, Explored: []navgrid.Cell{start}}, nil
	}
	if !g.Walkable(goal) {
		return SearchResult{}, fmt.Errorf("pathfinding: goal %s unwalkable: %w", goal, ErrPathNotFound)
	}

	costs := OctileCost
	if p != nil && p.Costs.valid() {
		costs = p.Costs
	}

	open := heap.New[openNode](lessNode)
	closed := mapset.New[navgrid.Cell]()
	gScore := map[navgrid.Cell]int{start: 0}
	cameFrom := make(map[navgrid.Cell]navgrid.Cell)
	var explored []navgrid.Cell

	open.Push(openNode{cell: start, h: costs.heuristic(start, goal)})
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.cell) || cur.g > gScore[cur.cell] {
			continue
		}
		closed.Put(cur.cell)
		explored = append(explored, cur.cell)

		if cur.cell == goal {
			return SearchResult{Corridor: reconstruct(cameFrom, start, goal), Explored: explored}, nil
		}

		for _, next := range g.AccessibleNeighbors(cur.cell) {
			if closed.Has(next) {
				continue
			}
			tentative := cur.g + costs.step(cur.cell, next)
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.cell
			open.Push(openNode{cell: next, g: tentative, h: costs.heuristic(next, goal)})
		}
	}

	return SearchResult{Explored: explored}, fmt.Errorf("pathfinding: %s to %s: %w", start, goal, ErrPathNotFound)
}

func reconstruct(cameFrom map[navgrid.Cell]navgrid.Cell, start, goal navgrid.Cell) []navgrid.Cell {
	path := []navgrid.Cell{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
