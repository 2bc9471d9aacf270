package sim

import (
	"fmt"
	"strings"
)

// DebugReport renders the world state as plain text: the drag in progress,
// every tank, then the tail of the sim log when one is attached.
func (w *World) DebugReport(lastEntries int) string {
	if lastEntries <= 0 {
		lastEntries = 40
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- rts-tanks debug report ---\n")
	fmt.Fprintf(&b, "tick=%d tanks=%d selected=%d last_event=%s\n",
		w.tick, len(w.tanks), len(w.Selected()), w.last)

	if start, end, ok := w.selector.DragPoints(); ok {
		fmt.Fprintf(&b, "drag: (%.0f,%.0f) -> (%.0f,%.0f)\n", start.X, start.Y, end.X, end.Y)
	} else {
		b.WriteString("drag: none\n")
	}
	b.WriteByte('\n')

	for _, t := range w.tanks {
		writeTank(&b, t)
	}

	if w.simLog == nil {
		return b.String()
	}
	tail := w.simLog.Tail(lastEntries)
	fmt.Fprintf(&b, "\n== log (last %d of %d) ==\n", len(tail), w.simLog.Len())
	for _, e := range tail {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func writeTank(b *strings.Builder, t *Tank) {
	hb := t.hitbox
	lo, hi := hb.MinPoint(), hb.MaxPoint()
	fmt.Fprintf(b, "== %s (%s) ==\n", t.label, t.id)
	fmt.Fprintf(b, "  state=%s dir=%s selected=%v\n", t.State(), t.Direction(), t.selected)
	fmt.Fprintf(b, "  pos=(%.2f,%.2f) vel=(%.2f,%.2f)\n", t.position.X, t.position.Y, t.velocity.X, t.velocity.Y)
	if t.HasGoal() {
		fmt.Fprintf(b, "  goal=(%.0f,%.0f) dist=%.2f\n", t.goal.X, t.goal.Y, t.goal.Dist(t.position))
	} else {
		b.WriteString("  goal=none\n")
	}
	fmt.Fprintf(b, "  hitbox=(%.1f,%.1f)-(%.1f,%.1f) range=%.0f\n", lo.X, lo.Y, hi.X, hi.Y, t.attackRange.R())
}
