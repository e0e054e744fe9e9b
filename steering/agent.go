package steering

import (
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
)

const (
	DefaultMaxSpeed = 100.0
	DefaultMaxForce = 250.0
)

// MoveOrder is the queue of waypoints an agent still has to reach.
type MoveOrder struct {
	Waypoints []cp.Vector
}

// Replace discards the remaining waypoints and takes a copy of wp.
func (o *MoveOrder) Replace(wp []cp.Vector) {
	o.Waypoints = append([]cp.Vector(nil), wp...)
}

func (o *MoveOrder) Peek() (cp.Vector, bool) {
	if o == nil || len(o.Waypoints) == 0 {
		return cp.Vector{}, false
	}
	return o.Waypoints[0], true
}

func (o *MoveOrder) Pop() (cp.Vector, bool) {
	p, ok := o.Peek()
	if ok {
		o.Waypoints = o.Waypoints[1:]
	}
	return p, ok
}

func (o *MoveOrder) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Waypoints)
}

func (o *MoveOrder) Clear() {
	o.Waypoints = nil
}

// Agent is the kinematic state driven by a Controller.
type Agent struct {
	Position cp.Vector
	Velocity cp.Vector
	MaxSpeed float64
	MaxForce float64
	Order    MoveOrder

	decay    *gween.Tween
	decayDir cp.Vector
}

func NewAgent(pos cp.Vector, maxSpeed, maxForce float64) *Agent {
	return &Agent{Position: pos, MaxSpeed: maxSpeed, MaxForce: maxForce}
}

// Command replaces the agent's order and zeroes its velocity.
func (a *Agent) Command(waypoints []cp.Vector) {
	a.Order.Replace(waypoints)
	a.Velocity = cp.Vector{}
	a.decay = nil
}

// Stop clears the order. The velocity decays on the following ticks.
func (a *Agent) Stop() {
	a.Order.Clear()
}

func (a *Agent) Speed() float64 {
	return a.Velocity.Length()
}

func (a *Agent) Moving() bool {
	return a.Order.Len() > 0 || a.Velocity.LengthSq() > 0
}
