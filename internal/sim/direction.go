package sim

import "math"

// Direction selects one of the four pre-rendered tank sprites.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	directionCount
)

// DefaultDirection is used whenever neither axis dominates, which includes a
// stationary tank.
const DefaultDirection = DirUp

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Directions lists every sprite direction in index order.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// SpriteIndex maps a velocity to the sprite the tank should show. The axis
// with the larger magnitude wins; on an exact tie DefaultDirection is used.
func SpriteIndex(velocity Vec2) Direction {
	ax, ay := math.Abs(velocity.X), math.Abs(velocity.Y)
	switch {
	case ax > ay:
		if velocity.X > 0 {
			return DirRight
		}
		return DirLeft
	case ay > ax:
		if velocity.Y > 0 {
			return DirDown
		}
		return DirUp
	default:
		return DefaultDirection
	}
}

// SpriteSet holds the pixel size of each directional sprite. It is the only
// thing the simulation needs to know about the textures.
type SpriteSet [directionCount]Vec2

// UniformSprites returns a set where every direction has the same size.
func UniformSprites(w, h float64) SpriteSet {
	var s SpriteSet
	for i := range s {
		s[i] = Vec2{w, h}
	}
	return s
}

// Size returns the sprite dimensions for d.
func (s SpriteSet) Size(d Direction) Vec2 {
	if d < 0 || d >= directionCount {
		d = DefaultDirection
	}
	return s[d]
}

// HalfExtents returns half the sprite size for d.
func (s SpriteSet) HalfExtents(d Direction) Vec2 {
	return s.Size(d).Scale(0.5)
}
