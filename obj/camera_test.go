package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(640, 480, 1)
	c.SetSmooth(0)
	c.SnapTo(cp.Vector{X: 10, Y: 5})

	x, y := c.WorldToScreen(cp.Vector{X: 10, Y: 5})
	if x != 320 || y != 240 {
		t.Fatalf("center maps to (%v, %v), want (320, 240)", x, y)
	}

	// one unit up is TileSize pixels toward the top of the screen
	_, y = c.WorldToScreen(cp.Vector{X: 10, Y: 6})
	if y != 240-32 {
		t.Fatalf("y = %v, want %v", y, 240-32)
	}

	p := c.ScreenToWorld(100, 50)
	bx, by := c.WorldToScreen(p)
	if math.Abs(bx-100) > 1e-9 || math.Abs(by-50) > 1e-9 {
		t.Fatalf("round trip = (%v, %v)", bx, by)
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	// 640x480 at 32px per unit is 20x15 units
	c := NewCamera(640, 480, 1)
	c.SetWorldBounds(cp.BB{L: 0, B: 0, R: 48, T: 10})

	c.SnapTo(cp.Vector{X: 1, Y: 1})
	if c.PosX != 10 {
		t.Fatalf("PosX = %v, want 10", c.PosX)
	}
	// world shorter than the view is centered
	if c.PosY != 5 {
		t.Fatalf("PosY = %v, want 5", c.PosY)
	}

	c.SnapTo(cp.Vector{X: 100, Y: 1})
	if c.PosX != 38 {
		t.Fatalf("PosX = %v, want 38", c.PosX)
	}
}

func TestCameraSmoothFollow(t *testing.T) {
	c := NewCamera(640, 480, 1)
	c.SetSmooth(0.5)
	c.SnapTo(cp.Vector{})
	c.Update(cp.Vector{X: 4, Y: -2})
	if c.PosX != 2 || c.PosY != -1 {
		t.Fatalf("pos = (%v, %v), want (2, -1)", c.PosX, c.PosY)
	}
}

func TestTileVerts(t *testing.T) {
	tests := []struct {
		tile int
		want int
	}{
		{tile: 1, want: 4},
		{tile: 2, want: 3},
		{tile: 3, want: 3},
		{tile: 5, want: 4},
		{tile: 6, want: 4},
	}
	for _, tt := range tests {
		if got := tileVerts(tt.tile, 0, 0); len(got) != tt.want {
			t.Fatalf("tile %d: %d verts, want %d", tt.tile, len(got), tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c := parseHexColor("#102030")
	if c.R != 0x10 || c.G != 0x20 || c.B != 0x30 || c.A != 0xff {
		t.Fatalf("color = %v", c)
	}
	if c := parseHexColor("nope"); c.B != 0xff {
		t.Fatalf("fallback = %v", c)
	}
}
