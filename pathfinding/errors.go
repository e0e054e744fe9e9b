package pathfinding

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilenav/navgrid"
)

var ErrPathNotFound = errors.New("pathfinding: no path to goal")

// NonAdjacentSegmentError is the panic value raised when a corridor holds two
// consecutive cells that are not 8-neighbours. A* never produces one.
type NonAdjacentSegmentError struct {
	From navgrid.Cell
	To   navgrid.Cell
}

func (e NonAdjacentSegmentError) Error() string {
	return fmt.Sprintf("pathfinding: corridor cells %s and %s are not adjacent", e.From, e.To)
}

// FunnelOverrunError is the panic value raised when string pulling exceeds
// its iteration bound.
type FunnelOverrunError struct {
	Portals    int
	Iterations int
}

func (e FunnelOverrunError) Error() string {
	return fmt.Sprintf("pathfinding: funnel exceeded %d iterations over %d portals", e.Iterations, e.Portals)
}
