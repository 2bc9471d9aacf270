package sim

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// UnitID identifies a tank for the lifetime of the process.
type UnitID string

// NewUnitID returns a fresh, time-ordered identifier.
func NewUnitID() UnitID {
	return UnitID(ksuid.New().String())
}

// WorldConfig holds the tunables the world needs from the outside.
type WorldConfig struct {
	SpawnPoint   Vec2      // where the spawn key drops a tank
	Sprites      SpriteSet // pixel size of each directional sprite
	AttackRadius float64
	MarkerRadius float64 // selection marker drawn on selected tanks
}

// DefaultWorldConfig mirrors the stock assets: 32px sprites, spawn at (50,150).
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		SpawnPoint:   Vec2{50, 150},
		Sprites:      UniformSprites(32, 32),
		MarkerRadius: 5,
	}
}

// World owns every tank and the drag-selection, and steps them one frame at
// a time. It is not safe for concurrent use.
type World struct {
	cfg      WorldConfig
	tanks    []*Tank
	index    map[UnitID]int
	selector *Selector
	simLog   *SimLog
	tick     int
	last     FrameEvent
	newID    func() UnitID
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	return &World{
		cfg:      cfg,
		index:    make(map[UnitID]int),
		selector: NewSelector(),
		last:     NoEvent{},
		newID:    NewUnitID,
	}
}

// SetSimLog attaches a structured event log. nil disables logging.
func (w *World) SetSimLog(sl *SimLog) { w.simLog = sl }

// SimLog returns the attached log, or nil.
func (w *World) SimLog() *SimLog { return w.simLog }

func (w *World) Config() WorldConfig { return w.cfg }

// Tick is the number of frames stepped so far.
func (w *World) Tick() int { return w.tick }

// LastEvent is the event dispatched by the most recent Step.
func (w *World) LastEvent() FrameEvent { return w.last }

// Spawn appends a new tank at pos and returns it. Insertion order is kept.
func (w *World) Spawn(pos Vec2) *Tank {
	t := NewTank(w.newID(), pos, w.cfg.Sprites, w.cfg.AttackRadius)
	t.label = fmt.Sprintf("T%d", len(w.tanks))
	w.index[t.id] = len(w.tanks)
	w.tanks = append(w.tanks, t)
	w.logf(t.label, "spawn", "tank", fmt.Sprintf("at (%.0f,%.0f) id=%s", pos.X, pos.Y, t.id), 0)
	return t
}

// Tank looks a tank up by id.
func (w *World) Tank(id UnitID) (*Tank, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.tanks[i], true
}

// Tanks returns the tanks in spawn order. The slice must not be modified.
func (w *World) Tanks() []*Tank { return w.tanks }

// Len is the number of tanks.
func (w *World) Len() int { return len(w.tanks) }

// Selected returns the currently selected tanks in spawn order.
func (w *World) Selected() []*Tank {
	var out []*Tank
	for _, t := range w.tanks {
		if t.selected {
			out = append(out, t)
		}
	}
	return out
}

// DragRect returns the live drag-selection rectangle, if any.
func (w *World) DragRect() (Rect, bool) { return w.selector.DragRect() }

// Step runs one frame: spawn, translate input into one event, then update
// every tank with that event. It returns the event that was dispatched.
func (w *World) Step(dt float64, in Input) FrameEvent {
	if dt < 0 {
		dt = 0
	}
	w.tick++

	if in.SpawnPressed {
		w.Spawn(w.cfg.SpawnPoint)
	}

	wasDragging := w.selector.Dragging()
	ev := w.selector.Translate(in)
	w.last = ev
	w.logEvent(wasDragging, ev, in.Pointer)

	for _, t := range w.tanks {
		wasSelected, oldGoal := t.selected, t.goal
		t.Update(dt, ev)
		w.logTank(t, wasSelected, oldGoal)
	}
	return ev
}

// DrawCommands lists what to render this frame, back to front.
func (w *World) DrawCommands() []DrawCommand {
	cmds := make([]DrawCommand, 0, 2+2*len(w.tanks))
	cmds = append(cmds, Blit{Texture: TextureBackground})

	if r, ok := w.selector.DragRect(); ok {
		cmds = append(cmds, RectOutline{Rect: r, Width: dragOutlineWidth, Color: dragOutlineColor})
	}

	for _, t := range w.tanks {
		cmds = append(cmds, Blit{
			Texture: TankTexture(t.Direction()),
			At:      t.position.Sub(t.SpriteSize().Scale(0.5)),
		})
		if t.selected {
			cmds = append(cmds, FilledCircle{Center: t.position, Radius: w.cfg.MarkerRadius, Color: markerColor})
		}
	}
	return cmds
}

func (w *World) logEvent(wasDragging bool, ev FrameEvent, pointer Vec2) {
	if w.simLog == nil {
		return
	}
	if !wasDragging && w.selector.Dragging() {
		w.logf("--", "drag", "start", fmt.Sprintf("at (%.0f,%.0f)", pointer.X, pointer.Y), 0)
	}
	switch e := ev.(type) {
	case SelectionFinalized:
		ext := e.Rect.Extents()
		w.logf("--", "drag", "finalize", e.String(), ext.X*ext.Y)
	case GoalIssued:
		w.logf("--", "order", "goal_issued", e.String(), 0)
	}
}

func (w *World) logTank(t *Tank, wasSelected bool, oldGoal Vec2) {
	if w.simLog == nil {
		return
	}
	if !wasSelected && t.selected {
		lo, hi := t.hitbox.MinPoint(), t.hitbox.MaxPoint()
		w.logf(t.label, "select", "selected", fmt.Sprintf("hitbox (%.0f,%.0f)-(%.0f,%.0f)", lo.X, lo.Y, hi.X, hi.Y), 0)
	}
	if t.goal != oldGoal {
		w.logf(t.label, "goal", "goal_set", fmt.Sprintf("(%.0f,%.0f) -> (%.0f,%.0f)", oldGoal.X, oldGoal.Y, t.goal.X, t.goal.Y), t.goal.Dist(t.position))
	}
	if wasSelected && !t.selected {
		w.logf(t.label, "select", "deselected", "order received", 0)
	}
	if w.simLog.verbose {
		w.logf(t.label, "move", "position", fmt.Sprintf("(%.2f,%.2f) v=(%.2f,%.2f) %s", t.position.X, t.position.Y, t.velocity.X, t.velocity.Y, t.Direction()), t.velocity.Len())
	}
}

func (w *World) logf(unit, category, key, value string, num float64) {
	if w.simLog == nil {
		return
	}
	w.simLog.Add(w.tick, unit, category, key, value, num)
}
