package sim

import "image/color"

// Texture names an image the presentation layer has loaded.
type Texture int

const (
	TextureBackground Texture = iota
	TextureTankUp
	TextureTankDown
	TextureTankLeft
	TextureTankRight
)

// TankTexture returns the sprite texture for a heading.
func TankTexture(d Direction) Texture {
	if d < 0 || d >= directionCount {
		d = DefaultDirection
	}
	return TextureTankUp + Texture(d)
}

func (t Texture) String() string {
	switch t {
	case TextureBackground:
		return "background"
	case TextureTankUp, TextureTankDown, TextureTankLeft, TextureTankRight:
		return "tank-" + Direction(t-TextureTankUp).String()
	default:
		return "unknown"
	}
}

var (
	dragOutlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	markerColor      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

const dragOutlineWidth = 1.0

// DrawCommand is one primitive the presentation layer must render, in order.
type DrawCommand interface {
	drawCommand()
}

// Blit draws a texture with its top-left corner at At, unscaled.
type Blit struct {
	Texture Texture
	At      Vec2
}

// RectOutline strokes the border of Rect.
type RectOutline struct {
	Rect  Rect
	Width float64
	Color color.RGBA
}

// FilledCircle draws a solid disc.
type FilledCircle struct {
	Center Vec2
	Radius float64
	Color  color.RGBA
}

func (Blit) drawCommand()         {}
func (RectOutline) drawCommand()  {}
func (FilledCircle) drawCommand() {}
