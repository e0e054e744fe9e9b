package component

import "github.com/jakecoffman/cp"

// Pointer is the singleton mouse state in world coordinates, written by the
// host once per frame.
type Pointer struct {
	World        cp.Vector
	LeftDown     bool
	LeftPressed  bool
	LeftReleased bool
	RightPressed bool
	Additive     bool
}

var PointerComponent = NewComponent[Pointer]()

// SelectionBox is the drag rectangle of the selection system.
type SelectionBox struct {
	Active bool
	Start  cp.Vector
	End    cp.Vector
}

// Rect returns the box normalised so any drag direction works.
func (s *SelectionBox) Rect() cp.BB {
	return cp.BB{
		L: min(s.Start.X, s.End.X),
		B: min(s.Start.Y, s.End.Y),
		R: max(s.Start.X, s.End.X),
		T: max(s.Start.Y, s.End.Y),
	}
}

var SelectionBoxComponent = NewComponent[SelectionBox]()
