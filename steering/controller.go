package steering

import (
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	DefaultArrivalRadius = 6.0
	DefaultIdleDecay     = 0.25
)

type Status int

const (
	Idle Status = iota
	Moving
	WaypointReached
	Arrived
)

func (s Status) String() string {
	switch s {
	case Moving:
		return "moving"
	case WaypointReached:
		return "waypoint_reached"
	case Arrived:
		return "arrived"
	}
	return "idle"
}

// Controller applies seek steering toward an agent's next waypoint.
type Controller struct {
	// ArrivalRadius is the distance at which a waypoint counts as reached.
	ArrivalRadius float64
	// IdleDecay is how long, in seconds, the velocity takes to reach zero once
	// the order is empty. Zero stops the agent immediately.
	IdleDecay float64
}

func NewController() *Controller {
	return &Controller{ArrivalRadius: DefaultArrivalRadius, IdleDecay: DefaultIdleDecay}
}

func (c *Controller) arrivalRadius() float64 {
	if c == nil || c.ArrivalRadius <= 0 {
		return DefaultArrivalRadius
	}
	return c.ArrivalRadius
}

// Advance moves a by one tick of dt seconds.
func (c *Controller) Advance(a *Agent, dt float64) Status {
	if a == nil {
		return Idle
	}
	target, ok := a.Order.Peek()
	if !ok {
		c.settle(a, dt)
		return Idle
	}
	a.decay = nil

	diff := target.Sub(a.Position)
	length := diff.Length()
	if length == 0 {
		a.Order.Pop()
		return popped(a)
	}
	if a.MaxSpeed <= 0 || dt <= 0 {
		if a.MaxSpeed <= 0 {
			a.Velocity = cp.Vector{}
		}
		return Moving
	}

	desired := diff.Mult(a.MaxSpeed / length)
	force := desired.Sub(a.Velocity).Mult(a.MaxForce / a.MaxSpeed)
	a.Velocity = a.Velocity.Add(force.Mult(dt)).Clamp(a.MaxSpeed)
	a.Position = a.Position.Add(a.Velocity.Mult(dt))

	if a.Position.Distance(target) < c.arrivalRadius() {
		a.Order.Pop()
		return popped(a)
	}
	return Moving
}

func popped(a *Agent) Status {
	if a.Order.Len() == 0 {
		return Arrived
	}
	return WaypointReached
}

// settle winds the velocity down without moving the agent.
func (c *Controller) settle(a *Agent, dt float64) {
	speed := a.Velocity.Length()
	if speed == 0 {
		a.decay = nil
		return
	}
	if c == nil || c.IdleDecay <= 0 {
		a.Velocity = cp.Vector{}
		a.decay = nil
		return
	}
	if a.decay == nil {
		a.decay = gween.New(float32(speed), 0, float32(c.IdleDecay), ease.OutQuad)
		a.decayDir = a.Velocity.Mult(1 / speed)
	}
	current, done := a.decay.Update(float32(dt))
	if done || current <= 0 {
		a.Velocity = cp.Vector{}
		a.decay = nil
		return
	}
	a.Velocity = a.decayDir.Mult(float64(current))
}
