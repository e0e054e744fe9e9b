package ecs

import "github.com/jakecoffman/cp"

type EventType string

const (
	EventPathPlanned     EventType = "path_planned"
	EventPathFailed      EventType = "path_failed"
	EventWaypointReached EventType = "waypoint_reached"
	EventArrived         EventType = "arrived"
)

// Event is a notification pushed by a system. Data holds an event-specific
// payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// PathFailure is the payload of EventPathFailed.
type PathFailure struct {
	Goal cp.Vector
	Err  error
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
