package sim

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndLastOf(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "T0", "spawn", "tank", "at (50,150)", 0)
	sl.Add(2, "T0", "select", "selected", "hitbox (50,150)", 0)
	sl.Add(3, "T1", "select", "selected", "hitbox (80,150)", 0)

	if n := sl.CountCategory("select", ""); n != 2 {
		t.Fatalf("expected 2 select entries, got %d", n)
	}
	last, ok := sl.LastOf("select", "selected")
	if !ok || last.Unit != "T1" {
		t.Fatalf("expected last selection by T1, got %+v ok=%v", last, ok)
	}
	if _, ok := sl.LastOf("goal", "goal_set"); ok {
		t.Fatal("no goal entries were recorded")
	}
	if got := len(sl.FilterUnit("T0")); got != 2 {
		t.Fatalf("expected 2 entries for T0, got %d", got)
	}
	if !sl.HasEntry("spawn", "", "(50,150)") {
		t.Fatal("expected spawn entry mentioning (50,150)")
	}
}

func TestSimLog_Tail(t *testing.T) {
	sl := NewSimLog(false)
	for i := 0; i < 5; i++ {
		sl.Add(i, "--", "drag", "start", "", 0)
	}
	if got := sl.Tail(2); len(got) != 2 || got[0].Tick != 3 {
		t.Fatalf("expected last 2 entries starting at tick 3, got %+v", got)
	}
	if got := sl.Tail(0); len(got) != 5 {
		t.Fatalf("Tail(0) should return everything, got %d", len(got))
	}
}

func TestSimLog_EntryFormat(t *testing.T) {
	e := SimLogEntry{Tick: 42, Unit: "T0", Category: "goal", Key: "goal_set", Value: "(0,0) -> (200,150)"}
	s := e.String()
	if !strings.HasPrefix(s, "[T=042] T0") || !strings.Contains(s, "goal_set") {
		t.Fatalf("unexpected format: %q", s)
	}
}

func TestSimLog_VerboseRecordsMovement(t *testing.T) {
	quiet := NewTestSim(WithTank(50, 150))
	quiet.Idle(3)
	if n := quiet.SimLog.CountCategory("move", ""); n != 0 {
		t.Fatalf("non-verbose log should have no move entries, got %d", n)
	}

	loud := NewTestSim(WithVerbose(true), WithTank(50, 150))
	loud.Idle(3)
	if n := loud.SimLog.CountCategory("move", "position"); n != 3 {
		t.Fatalf("verbose log should have one move entry per frame, got %d", n)
	}
}

func TestSimLog_SummaryCountsStates(t *testing.T) {
	ts := NewTestSim(WithTank(50, 150), WithTank(300, 300))
	ts.Drag(V(20, 120), V(80, 180))
	ts.IssueGoal(V(200, 150))

	summary := ts.SimLog.Summary(ts.World.Tick(), ts.Tanks())
	for _, want := range []string{"Tanks: 2", "idle=1", "moving=1", "T0 → goal (200,150)", "select=1 goal=1"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}
