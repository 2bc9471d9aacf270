package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/rts-tanks/internal/sim"
)

// arrivalRadius is the distance (px) at which a tank counts as arrived for
// reporting purposes. The simulation itself never stops approaching.
const arrivalRadius = 1.0

// tankSpacing separates the column of tanks placed by the scenarios.
const tankSpacing = 40.0

type tankStats struct {
	label       string
	start       sim.Vec2
	final       sim.Vec2
	selectTick  int
	goalTick    int
	arrivalTick int
	finalDist   float64
	finalState  sim.TankState
}

type runStats struct {
	scenario string
	frames   int
	dt       float64
	goal     sim.Vec2

	dragStarts     int
	finalizes      int
	goalsIssued    int
	selected       int
	deselected     int
	goalsSet       int
	firstGoalTick  int
	lastArriveTick int

	tanks   []tankStats
	summary string
	log     string
}

func main() {
	var tanks int
	var frames int
	var dt float64
	var goalX, goalY float64
	var scenario string
	var showLog bool

	flag.IntVar(&tanks, "tanks", 3, "number of tanks placed before the first frame")
	flag.IntVar(&frames, "frames", 600, "idle frames simulated after the order")
	flag.Float64Var(&dt, "dt", 1.0/60, "frame delta in seconds")
	flag.Float64Var(&goalX, "goal-x", 300, "goal x coordinate")
	flag.Float64Var(&goalY, "goal-y", 300, "goal y coordinate")
	flag.StringVar(&scenario, "scenario", "select-and-move", "scenario name")
	flag.BoolVar(&showLog, "log", true, "print the full sim log")
	flag.Parse()

	if err := validateFlags(tanks, frames, dt, scenario); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("=== Headless Movement Report ===\n")
	fmt.Printf("scenario=%s tanks=%d frames=%d dt=%.4f goal=(%.0f,%.0f)\n\n", scenario, tanks, frames, dt, goalX, goalY)

	rs := runScenario(scenario, tanks, frames, dt, sim.V(goalX, goalY))
	printRun(rs)
	if showLog {
		fmt.Println("=== Sim Log ===")
		fmt.Print(rs.log)
	}
}

var scenarios = map[string]func(ts *sim.TestSim, goal sim.Vec2){
	"select-and-move": scenarioSelectAndMove,
	"select-one":      scenarioSelectOne,
	"no-selection":    scenarioNoSelection,
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func validateFlags(tanks, frames int, dt float64, scenario string) error {
	if tanks <= 0 {
		return fmt.Errorf("-tanks must be > 0")
	}
	if frames <= 0 {
		return fmt.Errorf("-frames must be > 0")
	}
	if dt <= 0 {
		return fmt.Errorf("-dt must be > 0")
	}
	if _, ok := scenarios[scenario]; !ok {
		return fmt.Errorf("unsupported scenario %q (supported: %s)", scenario, strings.Join(scenarioNames(), ", "))
	}
	return nil
}

// columnOpts places n tanks in a vertical column starting at the spawn point.
func columnOpts(n int, dt float64) []sim.SimOption {
	spawn := sim.DefaultWorldConfig().SpawnPoint
	opts := []sim.SimOption{sim.WithDT(dt)}
	for i := 0; i < n; i++ {
		opts = append(opts, sim.WithTank(spawn.X, spawn.Y+float64(i)*tankSpacing))
	}
	return opts
}

// boundsOf returns a rect enclosing every tank hitbox with some padding.
func boundsOf(tanks []*sim.Tank, pad float64) (sim.Vec2, sim.Vec2) {
	lo, hi := tanks[0].Hitbox().MinPoint(), tanks[0].Hitbox().MaxPoint()
	for _, t := range tanks[1:] {
		lo = lo.Min(t.Hitbox().MinPoint())
		hi = hi.Max(t.Hitbox().MaxPoint())
	}
	p := sim.V(pad, pad)
	return lo.Sub(p), hi.Add(p)
}

func scenarioSelectAndMove(ts *sim.TestSim, goal sim.Vec2) {
	from, to := boundsOf(ts.Tanks(), 10)
	ts.Drag(from, to)
	ts.IssueGoal(goal)
}

func scenarioSelectOne(ts *sim.TestSim, goal sim.Vec2) {
	first := ts.Tanks()[0].Position()
	ts.Drag(first.Sub(sim.V(2, 2)), first.Add(sim.V(2, 2)))
	ts.IssueGoal(goal)
}

// scenarioNoSelection issues an order with nothing selected; no tank moves.
func scenarioNoSelection(ts *sim.TestSim, goal sim.Vec2) {
	ts.IssueGoal(goal)
}

func runScenario(name string, tanks, frames int, dt float64, goal sim.Vec2) runStats {
	ts := sim.NewTestSim(columnOpts(tanks, dt)...)
	starts := make([]sim.Vec2, 0, tanks)
	for _, t := range ts.Tanks() {
		starts = append(starts, t.Position())
	}

	scenarios[name](ts, goal)

	arrivals := make([]int, tanks)
	for i := range arrivals {
		arrivals[i] = -1
	}
	for f := 0; f < frames; f++ {
		ts.Hold()
		for i, t := range ts.Tanks() {
			if arrivals[i] < 0 && t.HasGoal() && t.Position().Dist(t.Goal()) <= arrivalRadius {
				arrivals[i] = ts.World.Tick()
			}
		}
	}

	sl := ts.SimLog
	rs := runStats{
		scenario:       name,
		frames:         frames,
		dt:             dt,
		goal:           goal,
		dragStarts:     sl.CountCategory("drag", "start"),
		finalizes:      sl.CountCategory("drag", "finalize"),
		goalsIssued:    sl.CountCategory("order", "goal_issued"),
		selected:       sl.CountCategory("select", "selected"),
		deselected:     sl.CountCategory("select", "deselected"),
		goalsSet:       sl.CountCategory("goal", "goal_set"),
		firstGoalTick:  firstTick(sl.Entries(), "", "goal", "goal_set"),
		lastArriveTick: maxTick(arrivals),
		summary:        sl.Summary(ts.World.Tick(), ts.Tanks()),
		log:            sl.Format(),
	}
	for i, t := range ts.Tanks() {
		st := tankStats{
			label:       t.Label(),
			start:       starts[i],
			final:       t.Position(),
			selectTick:  firstTick(sl.Entries(), t.Label(), "select", "selected"),
			goalTick:    firstTick(sl.Entries(), t.Label(), "goal", "goal_set"),
			arrivalTick: arrivals[i],
			finalState:  t.State(),
		}
		if t.HasGoal() {
			st.finalDist = t.Position().Dist(t.Goal())
		}
		rs.tanks = append(rs.tanks, st)
	}
	return rs
}

// firstTick returns the tick of the first entry matching unit (empty for
// any unit), category and key, or -1.
func firstTick(entries []sim.SimLogEntry, unit, category, key string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if unit == "" || e.Unit == unit {
			return e.Tick
		}
	}
	return -1
}

// maxTick is the latest tick in vals, or -1 if any value is unset.
func maxTick(vals []int) int {
	best := -1
	for _, v := range vals {
		if v < 0 {
			return -1
		}
		if v > best {
			best = v
		}
	}
	return best
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", t)
}

func printRun(rs runStats) {
	fmt.Printf("--- Run (%s) ---\n", rs.scenario)
	fmt.Printf("event_totals: drag_start=%d drag_finalize=%d goal_issued=%d selected=%d deselected=%d goal_set=%d\n",
		rs.dragStarts, rs.finalizes, rs.goalsIssued, rs.selected, rs.deselected, rs.goalsSet)
	fmt.Printf("phase_markers: first_goal=%s all_arrived=%s\n", tickString(rs.firstGoalTick), tickString(rs.lastArriveTick))
	for _, t := range rs.tanks {
		fmt.Printf("  %s  start=(%.0f,%.0f) final=(%.2f,%.2f) state=%s select=%s goal=%s arrive=%s dist=%.2f\n",
			t.label, t.start.X, t.start.Y, t.final.X, t.final.Y, t.finalState,
			tickString(t.selectTick), tickString(t.goalTick), tickString(t.arrivalTick), t.finalDist)
	}
	fmt.Println()
	fmt.Print(rs.summary)
	fmt.Println()
}
