package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilenav/navgrid"
	"github.com/milk9111/tilenav/pathfinding"
)

// PathDebug keeps the last plan of an agent for debug drawing.
type PathDebug struct {
	Goal      cp.Vector
	Corridor  []navgrid.Cell
	Explored  []navgrid.Cell
	Portals   []pathfinding.Portal
	Waypoints []cp.Vector
	Failed    bool
}

var PathDebugComponent = NewComponent[PathDebug]()

// NavGrid is the singleton holding the active grid and its navigator.
type NavGrid struct {
	Level     string
	Grid      *navgrid.Grid
	Navigator *pathfinding.Navigator
}

var NavGridComponent = NewComponent[NavGrid]()
