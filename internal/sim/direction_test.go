package sim

import (
	"math"
	"testing"
)

func TestSpriteIndex_DominantAxis(t *testing.T) {
	cases := []struct {
		v    Vec2
		want Direction
	}{
		{V(5, 0), DirRight},
		{V(-5, 0), DirLeft},
		{V(0, 5), DirDown},
		{V(0, -5), DirUp},
		{V(10, -3), DirRight},
		{V(-10, 9.99), DirLeft},
		{V(2, 3), DirDown},
		{V(-2, -3), DirUp},
		{V(150, 0), DirRight},
	}
	for _, c := range cases {
		if got := SpriteIndex(c.v); got != c.want {
			t.Fatalf("SpriteIndex(%v): expected %s, got %s", c.v, c.want, got)
		}
	}
}

func TestSpriteIndex_TieDefaultsUp(t *testing.T) {
	for _, v := range []Vec2{V(0, 0), V(3, 3), V(-3, 3), V(3, -3), V(-4, -4)} {
		if got := SpriteIndex(v); got != DefaultDirection {
			t.Fatalf("SpriteIndex(%v): expected default %s, got %s", v, DefaultDirection, got)
		}
	}
	if DefaultDirection != DirUp {
		t.Fatalf("default direction should be up, got %s", DefaultDirection)
	}
}

func TestSpriteIndex_TotalOverExtremes(t *testing.T) {
	vs := []Vec2{
		V(math.MaxFloat64, 0),
		V(0, -math.MaxFloat64),
		V(math.SmallestNonzeroFloat64, 0),
		V(math.Inf(1), math.Inf(-1)),
	}
	for _, v := range vs {
		d := SpriteIndex(v)
		if d < DirUp || d > DirRight {
			t.Fatalf("SpriteIndex(%v) returned out-of-range %d", v, d)
		}
	}
}

func TestSpriteSet_HalfExtents(t *testing.T) {
	s := SpriteSet{
		DirUp:    V(20, 40),
		DirDown:  V(20, 40),
		DirLeft:  V(40, 20),
		DirRight: V(40, 20),
	}
	if s.HalfExtents(DirRight) != V(20, 10) {
		t.Fatalf("expected right half extents (20,10), got %v", s.HalfExtents(DirRight))
	}
	if s.Size(Direction(99)) != s.Size(DefaultDirection) {
		t.Fatal("out-of-range direction should fall back to the default sprite")
	}
}

func TestTankTexture_MapsEveryDirection(t *testing.T) {
	seen := map[Texture]bool{}
	for _, d := range Directions() {
		tex := TankTexture(d)
		if tex == TextureBackground {
			t.Fatalf("direction %s mapped to background", d)
		}
		if seen[tex] {
			t.Fatalf("direction %s shares texture %s", d, tex)
		}
		seen[tex] = true
	}
	if TankTexture(DirLeft).String() != "tank-left" {
		t.Fatalf("expected tank-left, got %s", TankTexture(DirLeft))
	}
}
