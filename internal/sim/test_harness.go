package sim

// TestSim is a headless simulation harness used by tests and the headless
// report. It drives a World with scripted input instead of a real pointer,
// and always records a SimLog.
type TestSim struct {
	World  *World
	SimLog *SimLog
	DT     float64 // frame delta fed to every Step

	cfg     WorldConfig
	pointer Vec2
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // sprites, spawn point, dt, verbose; applied first
	simOptTank                       // tanks; applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSpriteSize gives every direction the same w×h sprite.
func WithSpriteSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Sprites = UniformSprites(w, h)
	}}
}

// WithSprites sets per-direction sprite sizes.
func WithSprites(s SpriteSet) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Sprites = s
	}}
}

// WithSpawnPoint moves the point used by the spawn key.
func WithSpawnPoint(x, y float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.SpawnPoint = Vec2{x, y}
	}}
}

// WithAttackRadius sets the attack range of spawned tanks.
func WithAttackRadius(r float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.AttackRadius = r
	}}
}

// WithDT sets the frame delta used by every scripted frame.
func WithDT(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.DT = dt
	}}
}

// WithVerbose enables per-frame position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTank places a tank at (x,y) before the first frame.
func WithTank(x, y float64) SimOption {
	return SimOption{simOptTank, func(ts *TestSim) {
		ts.World.Spawn(Vec2{x, y})
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (sprites, spawn point, dt, verbose)
//  2. Tanks
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		DT:     1.0 / 60,
		cfg:    DefaultWorldConfig(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.cfg)
	ts.World.SetSimLog(ts.SimLog)
	for _, o := range opts {
		if o.kind == simOptTank {
			o.fn(ts)
		}
	}
	return ts
}

// Tanks returns the world's tanks in spawn order.
func (ts *TestSim) Tanks() []*Tank { return ts.World.Tanks() }

// Pointer is where the scripted pointer currently rests.
func (ts *TestSim) Pointer() Vec2 { return ts.pointer }

// Frame steps one frame with in exactly as given, pointer included.
func (ts *TestSim) Frame(in Input) FrameEvent {
	ts.pointer = in.Pointer
	return ts.World.Step(ts.DT, in)
}

// Hold steps one frame with no buttons, leaving the pointer where it is.
func (ts *TestSim) Hold() FrameEvent {
	return ts.Frame(Input{Pointer: ts.pointer})
}

// Idle runs n frames with no buttons and a resting pointer.
func (ts *TestSim) Idle(n int) {
	for i := 0; i < n; i++ {
		ts.Hold()
	}
}

// MoveTo glides the pointer to p over one frame, with no buttons.
func (ts *TestSim) MoveTo(p Vec2) FrameEvent {
	return ts.Frame(Input{Pointer: p})
}

// Drag presses the primary button at from and releases it at to on the next
// frame. It returns the event dispatched on release.
func (ts *TestSim) Drag(from, to Vec2) FrameEvent {
	ts.Frame(Input{Pointer: from, PrimaryPressed: true})
	return ts.Frame(Input{Pointer: to, PrimaryReleased: true})
}

// IssueGoal clicks the secondary button at p.
func (ts *TestSim) IssueGoal(p Vec2) FrameEvent {
	return ts.Frame(Input{Pointer: p, SecondaryPressed: true})
}

// SpawnTank presses the spawn key for one frame and returns the new tank.
func (ts *TestSim) SpawnTank() *Tank {
	ts.Frame(Input{Pointer: ts.pointer, SpawnPressed: true})
	tanks := ts.World.Tanks()
	return tanks[len(tanks)-1]
}

// RunUntil steps idle frames up to maxFrames, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Hold()
		if predicate(ts) {
			return ts.World.Tick()
		}
	}
	return -1
}

// TankSnapshot is a lightweight copy of a tank's state at a tick.
type TankSnapshot struct {
	ID       UnitID
	Label    string
	Position Vec2
	Velocity Vec2
	Goal     Vec2
	Selected bool
	State    TankState
}

// SimSnapshot captures every tank at one tick.
type SimSnapshot struct {
	Tick  int
	Tanks []TankSnapshot
}

// Snapshot returns the current state of all tanks.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.World.Tick()}
	for _, t := range ts.World.Tanks() {
		snap.Tanks = append(snap.Tanks, TankSnapshot{
			ID:       t.id,
			Label:    t.label,
			Position: t.position,
			Velocity: t.velocity,
			Goal:     t.goal,
			Selected: t.selected,
			State:    t.State(),
		})
	}
	return snap
}
