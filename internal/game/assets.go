package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/Garsondee/rts-tanks/internal/config"
	"github.com/Garsondee/rts-tanks/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Assets caches every texture for the lifetime of the process.
type Assets struct {
	images map[sim.Texture]*ebiten.Image
}

// textureFiles maps each texture to its file under the asset directory.
func textureFiles(cfg *config.Config) map[sim.Texture]string {
	a := cfg.Assets
	return map[sim.Texture]string{
		sim.TextureBackground: cfg.AssetPath(a.Background),
		sim.TextureTankUp:     cfg.AssetPath(a.TankUp),
		sim.TextureTankDown:   cfg.AssetPath(a.TankDown),
		sim.TextureTankLeft:   cfg.AssetPath(a.TankLeft),
		sim.TextureTankRight:  cfg.AssetPath(a.TankRight),
	}
}

// LoadAssets reads and decodes every texture. Any failure is returned; the
// game cannot run without its sprites.
func LoadAssets(cfg *config.Config) (*Assets, error) {
	a := &Assets{images: make(map[sim.Texture]*ebiten.Image)}
	for tex, path := range textureFiles(cfg) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", tex, err)
		}
		decoded, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s (%s): %w", tex, path, err)
		}
		a.images[tex] = ebiten.NewImageFromImage(decoded)
	}
	return a, nil
}

// Image returns the texture, or nil if it was never loaded.
func (a *Assets) Image(tex sim.Texture) *ebiten.Image {
	return a.images[tex]
}

// Sprites reports the pixel size of each tank sprite for hitbox math.
func (a *Assets) Sprites() sim.SpriteSet {
	var s sim.SpriteSet
	for _, d := range sim.Directions() {
		img := a.images[sim.TankTexture(d)]
		if img == nil {
			continue
		}
		b := img.Bounds()
		s[d] = sim.V(float64(b.Dx()), float64(b.Dy()))
	}
	return s
}
