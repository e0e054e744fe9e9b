package component

import "github.com/jakecoffman/cp"

// MoveRequest asks the pathfinding system to plan a route to Goal. It is
// removed once handled.
type MoveRequest struct {
	Goal cp.Vector
}

var MoveRequestComponent = NewComponent[MoveRequest]()
