package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPad     = 4
	hudLineH   = 14
	hudFlashMS = 1500 // how long the "report copied" notice stays up
)

var (
	hudFace    = text.NewGoXFace(basicfont.Face7x13)
	hudBgColor = color.RGBA{R: 10, G: 12, B: 10, A: 180}
)

// hudLines is the text shown in the top-left overlay.
func hudLines(w *sim.World, spawnKey ebiten.Key, notice string) []string {
	lines := []string{
		fmt.Sprintf("tanks: %d  selected: %d", w.Len(), len(w.Selected())),
		fmt.Sprintf("[%s] spawn  [%s] report  [%s] hud", spawnKey, reportKey, hudToggleKey),
	}
	if notice != "" {
		lines = append(lines, notice)
	}
	return lines
}

func drawHUD(screen *ebiten.Image, lines []string) {
	widest := 0
	for _, l := range lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	w := float32(widest*basicfont.Face7x13.Advance + 2*hudPad)
	h := float32(len(lines)*hudLineH + 2*hudPad)
	vector.FillRect(screen, 0, 0, w, h, hudBgColor, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPad, float64(hudPad+i*hudLineH))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, hudFace, op)
	}
}
