package game

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/rts-tanks/internal/config"
	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKey_KnownAndUnknown(t *testing.T) {
	k, err := parseKey("S")
	if err != nil {
		t.Fatalf("expected S to parse, got %v", err)
	}
	if k != ebiten.KeyS {
		t.Fatalf("expected KeyS, got %v", k)
	}
	if _, err := parseKey("NotAKey"); err == nil {
		t.Fatal("expected error for unknown key name")
	}
}

func TestTextureFiles_DirectionMapping(t *testing.T) {
	cfg := config.Default()
	files := textureFiles(cfg)
	want := map[sim.Texture]string{
		sim.TextureBackground: "background.png",
		sim.TextureTankRight:  "tank1.png",
		sim.TextureTankDown:   "tank2.png",
		sim.TextureTankLeft:   "tank3.png",
		sim.TextureTankUp:     "tank4.png",
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d textures, got %d", len(want), len(files))
	}
	for tex, name := range want {
		if got := files[tex]; got != filepath.Join("images", name) {
			t.Fatalf("expected %s -> images/%s, got %s", tex, name, got)
		}
	}
}

func TestLoadAssets_MissingFileFails(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	if _, err := LoadAssets(cfg); err == nil {
		t.Fatal("expected error when images are missing")
	}
}

func TestFrameDelta_Clamped(t *testing.T) {
	now := time.Now()
	if got := frameDelta(time.Time{}, now, 0.1); got != 0 {
		t.Fatalf("expected 0 on first frame, got %f", got)
	}
	if got := frameDelta(now, now.Add(16*time.Millisecond), 0.1); got < 0.0159 || got > 0.0161 {
		t.Fatalf("expected ~0.016, got %f", got)
	}
	if got := frameDelta(now, now.Add(2*time.Second), 0.1); got != 0.1 {
		t.Fatalf("expected clamp to 0.1, got %f", got)
	}
	if got := frameDelta(now, now.Add(-time.Second), 0.1); got != 0 {
		t.Fatalf("expected 0 for clock going backwards, got %f", got)
	}
}

func TestNew_BadSpawnKey(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Key = "Bogus"
	if _, err := New(cfg, &Assets{}); err == nil {
		t.Fatal("expected error for bad spawn key")
	}
}

func TestNew_WorldUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.X, cfg.Spawn.Y = 10, 20
	cfg.Unit.AttackRadius = 7
	g, err := New(cfg, &Assets{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc := g.World().Config()
	if wc.SpawnPoint != sim.V(10, 20) {
		t.Fatalf("expected spawn (10,20), got %v", wc.SpawnPoint)
	}
	if wc.AttackRadius != 7 || wc.MarkerRadius != 5 {
		t.Fatalf("expected radii 7/5, got %v/%v", wc.AttackRadius, wc.MarkerRadius)
	}
	w, h := g.Layout(0, 0)
	if w != 420 || h != 420 {
		t.Fatalf("expected 420x420 layout, got %dx%d", w, h)
	}
}

func TestHUDLines_CountsAndNotice(t *testing.T) {
	w := sim.NewWorld(sim.DefaultWorldConfig())
	w.Spawn(sim.V(50, 150))
	w.Spawn(sim.V(90, 150))

	lines := hudLines(w, ebiten.KeyS, "")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines without notice, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "tanks: 2") || !strings.Contains(lines[0], "selected: 0") {
		t.Fatalf("unexpected count line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[S] spawn") {
		t.Fatalf("expected spawn key help, got %q", lines[1])
	}
	if got := hudLines(w, ebiten.KeyS, "copied"); len(got) != 3 || got[2] != "copied" {
		t.Fatalf("expected notice as third line, got %v", got)
	}
}
