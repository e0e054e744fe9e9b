package component

import "github.com/milk9111/tilenav/steering"

// Agent is a unit that follows move orders. The embedded steering state is
// the source of truth for position; Transform mirrors it for rendering.
type Agent struct {
	steering.Agent
	Name       string
	Controller steering.Controller
}

var AgentComponent = NewComponent[Agent]()

// Selectable marks an agent that the selection box can pick.
type Selectable struct {
	Selected bool
	Radius   float64
}

var SelectableComponent = NewComponent[Selectable]()
