package sim

// Input is one frame's sample of the pointer and keyboard. Pressed/Released
// are edge-triggered: true only on the frame the transition happened.
type Input struct {
	Pointer          Vec2
	PrimaryPressed   bool // selection button
	PrimaryReleased  bool
	SecondaryPressed bool // issue-goal button
	SpawnPressed     bool
}

// dragState is either dragIdle or *dragActive; at most one drag exists.
type dragState interface {
	dragState()
}

type dragIdle struct{}

type dragActive struct {
	start Vec2
	end   Vec2
}

func (dragIdle) dragState()    {}
func (*dragActive) dragState() {}

// Selector turns raw pointer input into frame events and tracks the
// in-progress drag rectangle across frames.
type Selector struct {
	drag dragState
}

// NewSelector returns a selector with no drag in progress.
func NewSelector() *Selector {
	return &Selector{drag: dragIdle{}}
}

// Dragging reports whether a drag-selection is in progress.
func (s *Selector) Dragging() bool {
	_, ok := s.drag.(*dragActive)
	return ok
}

// DragPoints returns the live start and end points of the active drag.
func (s *Selector) DragPoints() (start, end Vec2, ok bool) {
	d, ok := s.drag.(*dragActive)
	if !ok {
		return Vec2{}, Vec2{}, false
	}
	return d.start, d.end, true
}

// DragRect returns the normalised rectangle of the active drag.
func (s *Selector) DragRect() (Rect, bool) {
	start, end, ok := s.DragPoints()
	if !ok {
		return Rect{}, false
	}
	return RectFromPoints(start, end), true
}

// Translate consumes one frame of input and returns exactly one event.
//
// A drag started this frame is immediately live, so a press and release in
// the same frame finalizes a degenerate rectangle at the pointer. The
// secondary button is ignored while a drag is active.
func (s *Selector) Translate(in Input) FrameEvent {
	if _, idle := s.drag.(dragIdle); idle && in.PrimaryPressed {
		s.drag = &dragActive{start: in.Pointer, end: in.Pointer}
	}

	switch d := s.drag.(type) {
	case *dragActive:
		d.end = in.Pointer
		if !in.PrimaryReleased {
			return NoEvent{}
		}
		rect := RectFromPoints(d.start, d.end)
		s.drag = dragIdle{}
		return SelectionFinalized{Rect: rect}
	default:
		if in.SecondaryPressed {
			return GoalIssued{Target: in.Pointer}
		}
		return NoEvent{}
	}
}
