package game

import (
	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// renderCommands executes the world's draw list in order.
func renderCommands(screen *ebiten.Image, assets *Assets, cmds []sim.DrawCommand) {
	for _, c := range cmds {
		switch c := c.(type) {
		case sim.Blit:
			img := assets.Image(c.Texture)
			if img == nil {
				continue
			}
			opts := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
			opts.GeoM.Translate(c.At.X, c.At.Y)
			screen.DrawImage(img, opts)

		case sim.RectOutline:
			lo, ext := c.Rect.MinPoint(), c.Rect.Extents()
			vector.StrokeRect(screen, float32(lo.X), float32(lo.Y), float32(ext.X), float32(ext.Y),
				float32(c.Width), c.Color, false)

		case sim.FilledCircle:
			vector.FillCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), c.Color, true)
		}
	}
}
