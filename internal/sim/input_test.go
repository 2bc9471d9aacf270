package sim

import "testing"

func TestSelector_IdleProducesNoEvent(t *testing.T) {
	s := NewSelector()
	ev := s.Translate(Input{Pointer: V(10, 10)})
	if _, ok := ev.(NoEvent); !ok {
		t.Fatalf("expected none, got %s", ev)
	}
	if s.Dragging() {
		t.Fatal("no drag should start without a press")
	}
}

func TestSelector_DragLifecycle(t *testing.T) {
	s := NewSelector()

	ev := s.Translate(Input{Pointer: V(10, 20), PrimaryPressed: true})
	if _, ok := ev.(NoEvent); !ok {
		t.Fatalf("press frame should emit none, got %s", ev)
	}
	start, end, ok := s.DragPoints()
	if !ok || start != V(10, 20) || end != V(10, 20) {
		t.Fatalf("expected drag at (10,20)-(10,20), got %v-%v ok=%v", start, end, ok)
	}

	s.Translate(Input{Pointer: V(40, 60)})
	if _, end, _ := s.DragPoints(); end != V(40, 60) {
		t.Fatalf("end point should follow the pointer, got %v", end)
	}
	if r, ok := s.DragRect(); !ok || r != RectFromPoints(V(10, 20), V(40, 60)) {
		t.Fatalf("unexpected live drag rect %+v", r)
	}

	ev = s.Translate(Input{Pointer: V(5, 80), PrimaryReleased: true})
	sel, ok := ev.(SelectionFinalized)
	if !ok {
		t.Fatalf("release should finalize the selection, got %s", ev)
	}
	if sel.Rect != RectFromPoints(V(10, 20), V(5, 80)) {
		t.Fatalf("finalized rect should use the release position, got %+v", sel.Rect)
	}
	if s.Dragging() {
		t.Fatal("drag should be gone after release")
	}
}

func TestSelector_PressAndReleaseSameFrame(t *testing.T) {
	s := NewSelector()
	ev := s.Translate(Input{Pointer: V(7, 7), PrimaryPressed: true, PrimaryReleased: true})
	sel, ok := ev.(SelectionFinalized)
	if !ok {
		t.Fatalf("expected immediate finalize, got %s", ev)
	}
	if sel.Rect.HalfExtents != V(0, 0) || sel.Rect.Center != V(7, 7) {
		t.Fatalf("expected degenerate rect at (7,7), got %+v", sel.Rect)
	}
}

func TestSelector_SecondaryIssuesGoal(t *testing.T) {
	s := NewSelector()
	ev := s.Translate(Input{Pointer: V(200, 150), SecondaryPressed: true})
	g, ok := ev.(GoalIssued)
	if !ok {
		t.Fatalf("expected goal, got %s", ev)
	}
	if g.Target != V(200, 150) {
		t.Fatalf("expected target (200,150), got %v", g.Target)
	}
}

func TestSelector_SecondaryIgnoredWhileDragging(t *testing.T) {
	s := NewSelector()
	s.Translate(Input{Pointer: V(0, 0), PrimaryPressed: true})
	ev := s.Translate(Input{Pointer: V(50, 50), SecondaryPressed: true})
	if _, ok := ev.(NoEvent); !ok {
		t.Fatalf("secondary press during a drag should be ignored, got %s", ev)
	}
	if !s.Dragging() {
		t.Fatal("drag should still be active")
	}
}

func TestSelector_ReleaseWithoutDragIsNone(t *testing.T) {
	s := NewSelector()
	ev := s.Translate(Input{Pointer: V(3, 3), PrimaryReleased: true})
	if _, ok := ev.(NoEvent); !ok {
		t.Fatalf("a stray release should produce none, got %s", ev)
	}
}

func TestSelector_PressWhileDraggingKeepsStart(t *testing.T) {
	s := NewSelector()
	s.Translate(Input{Pointer: V(1, 1), PrimaryPressed: true})
	s.Translate(Input{Pointer: V(9, 9), PrimaryPressed: true})
	start, _, _ := s.DragPoints()
	if start != V(1, 1) {
		t.Fatalf("a second press must not restart the drag, start=%v", start)
	}
}
