package game

import (
	"fmt"
	"log"
	"time"

	"github.com/Garsondee/rts-tanks/internal/config"
	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation to ebiten: it samples input, measures frame
// time, steps the world and renders its draw list.
type Game struct {
	cfg      *config.Config
	assets   *Assets
	world    *sim.World
	spawnKey ebiten.Key

	lastUpdate time.Time
	showHUD    bool
	notice     string
	noticeTill time.Time
}

// New builds the world from cfg, sizing hitboxes from the loaded sprites.
func New(cfg *config.Config, assets *Assets) (*Game, error) {
	spawnKey, err := parseKey(cfg.Spawn.Key)
	if err != nil {
		return nil, err
	}
	world := sim.NewWorld(worldConfig(cfg, assets.Sprites()))
	world.SetSimLog(sim.NewSimLog(false))
	return &Game{
		cfg:      cfg,
		assets:   assets,
		world:    world,
		spawnKey: spawnKey,
		showHUD:  true,
	}, nil
}

func worldConfig(cfg *config.Config, sprites sim.SpriteSet) sim.WorldConfig {
	return sim.WorldConfig{
		SpawnPoint:   sim.V(cfg.Spawn.X, cfg.Spawn.Y),
		Sprites:      sprites,
		AttackRadius: cfg.Unit.AttackRadius,
		MarkerRadius: cfg.Unit.MarkerRadius,
	}
}

// frameDelta returns the seconds since the previous update, clamped to
// [0, maxDelta]. The first frame has a zero delta.
func frameDelta(last, now time.Time, maxDelta float64) float64 {
	if last.IsZero() {
		return 0
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

func (g *Game) Update() error {
	now := time.Now()
	dt := frameDelta(g.lastUpdate, now, g.cfg.Frame.MaxDelta)
	g.lastUpdate = now

	g.handleKeys(now)
	g.world.Step(dt, sampleInput(g.spawnKey))
	return nil
}

func (g *Game) handleKeys(now time.Time) {
	if inpututil.IsKeyJustPressed(hudToggleKey) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(reportKey) {
		report := g.world.DebugReport(reportLogTail)
		if err := setClipboardText(report); err != nil {
			log.Printf("copy report: %v", err)
			g.flash(now, "clipboard unavailable")
		} else {
			g.flash(now, fmt.Sprintf("report copied (%d tanks)", g.world.Len()))
		}
	}
	if !g.noticeTill.IsZero() && now.After(g.noticeTill) {
		g.notice = ""
		g.noticeTill = time.Time{}
	}
}

func (g *Game) flash(now time.Time, msg string) {
	g.notice = msg
	g.noticeTill = now.Add(hudFlashMS * time.Millisecond)
}

func (g *Game) Draw(screen *ebiten.Image) {
	renderCommands(screen, g.assets, g.world.DrawCommands())
	if g.showHUD {
		drawHUD(screen, hudLines(g.world, g.spawnKey, g.notice))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// World exposes the simulation, mainly for tooling.
func (g *Game) World() *sim.World { return g.world }
