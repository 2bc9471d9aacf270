package game

import (
	"fmt"

	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	selectButton = ebiten.MouseButtonLeft
	goalButton   = ebiten.MouseButtonRight

	hudToggleKey = ebiten.KeyH
	reportKey    = ebiten.KeyC
)

// parseKey resolves a key name from the config ("S", "Space", "F1").
func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// sampleInput reads this frame's edge-triggered pointer and key state.
func sampleInput(spawnKey ebiten.Key) sim.Input {
	mx, my := ebiten.CursorPosition()
	return sim.Input{
		Pointer:          sim.V(float64(mx), float64(my)),
		PrimaryPressed:   inpututil.IsMouseButtonJustPressed(selectButton),
		PrimaryReleased:  inpututil.IsMouseButtonJustReleased(selectButton),
		SecondaryPressed: inpututil.IsMouseButtonJustPressed(goalButton),
		SpawnPressed:     inpututil.IsKeyJustPressed(spawnKey),
	}
}
