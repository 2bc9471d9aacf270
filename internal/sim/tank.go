package sim

// TankState is the coarse behaviour state derived from the selection flag,
// the goal and the velocity. It is never stored; Tank.State computes it.
type TankState int

const (
	TankStateIdle     TankState = iota // no goal, not selected
	TankStateSelected                  // frozen, awaiting an order
	TankStateMoving                    // approaching its goal
)

func (ts TankState) String() string {
	switch ts {
	case TankStateIdle:
		return "idle"
	case TankStateSelected:
		return "selected"
	case TankStateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Tank is a selectable unit that drives toward the last goal it was given.
type Tank struct {
	id       UnitID
	label    string
	position Vec2
	velocity Vec2
	selected bool
	// goal is the zero vector when the tank has no destination.
	goal Vec2

	sprites     SpriteSet
	hitbox      Rect
	attackRange Circle
}

// NewTank creates an unselected, stationary tank at pos with no goal.
// attackRadius sizes the attack range circle, which nothing evaluates yet.
func NewTank(id UnitID, pos Vec2, sprites SpriteSet, attackRadius float64) *Tank {
	t := &Tank{
		id:          id,
		position:    pos,
		sprites:     sprites,
		attackRange: NewCircle(pos, attackRadius),
	}
	t.hitbox = NewRect(pos, sprites.HalfExtents(t.Direction()))
	return t
}

func (t *Tank) ID() UnitID           { return t.id }
func (t *Tank) Label() string        { return t.label }
func (t *Tank) Position() Vec2       { return t.position }
func (t *Tank) Velocity() Vec2       { return t.velocity }
func (t *Tank) Selected() bool       { return t.selected }
func (t *Tank) Goal() Vec2           { return t.goal }
func (t *Tank) HasGoal() bool        { return !t.goal.IsZero() }
func (t *Tank) Hitbox() Rect         { return t.hitbox }
func (t *Tank) AttackRange() Circle  { return t.attackRange }
func (t *Tank) Direction() Direction { return SpriteIndex(t.velocity) }
func (t *Tank) SpriteSize() Vec2     { return t.sprites.Size(t.Direction()) }

// State summarises the tank for logs and reports.
func (t *Tank) State() TankState {
	switch {
	case t.selected:
		return TankStateSelected
	case t.HasGoal():
		return TankStateMoving
	default:
		return TankStateIdle
	}
}

// Update advances the tank by one frame.
//
// The hitbox is rebuilt first from the velocity stored last frame, so a
// change of heading shows up in the hitbox one frame late. Only NoEvent
// frames move the tank; a selected tank keeps its velocity but stays put.
func (t *Tank) Update(dt float64, ev FrameEvent) {
	t.hitbox = NewRect(t.position, t.sprites.HalfExtents(t.Direction()))
	t.attackRange.Center = t.position

	switch e := ev.(type) {
	case SelectionFinalized:
		if t.hitbox.Overlaps(e.Rect) {
			t.selected = true
		}
	case GoalIssued:
		if t.selected {
			t.goal = e.Target
			t.selected = false
		}
	case NoEvent:
		if t.selected {
			return
		}
		t.velocity = approachVelocity(t.position, t.goal)
		t.position = t.position.Add(t.velocity.Scale(dt))
	}
}

// approachVelocity is the raw displacement to goal. It shrinks as the tank
// closes in but never reaches zero on its own, so tanks creep forever.
func approachVelocity(pos, goal Vec2) Vec2 {
	if goal.IsZero() {
		return Vec2{}
	}
	return goal.Sub(pos)
}
