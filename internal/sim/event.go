package sim

import "fmt"

// FrameEvent is the single input-derived event broadcast to every tank in a
// frame. The set is closed: SelectionFinalized, GoalIssued and NoEvent.
type FrameEvent interface {
	frameEvent()
	String() string
}

// SelectionFinalized is produced the frame the primary button is released
// over an active drag-selection.
type SelectionFinalized struct {
	Rect Rect
}

// GoalIssued is produced by a fresh secondary press while no drag is active.
type GoalIssued struct {
	Target Vec2
}

// NoEvent is the default frame event. Only this event integrates movement.
type NoEvent struct{}

func (SelectionFinalized) frameEvent() {}
func (GoalIssued) frameEvent()         {}
func (NoEvent) frameEvent()            {}

func (e SelectionFinalized) String() string {
	lo, hi := e.Rect.MinPoint(), e.Rect.MaxPoint()
	return fmt.Sprintf("select (%.0f,%.0f)-(%.0f,%.0f)", lo.X, lo.Y, hi.X, hi.Y)
}

func (e GoalIssued) String() string {
	return fmt.Sprintf("goal (%.0f,%.0f)", e.Target.X, e.Target.Y)
}

func (NoEvent) String() string { return "none" }
