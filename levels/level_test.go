package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range []string{"", "slopes", "slopes.json", "levels/slopes.json"} {
		lvl, err := LoadLevelFromFS(name)
		if err != nil {
			t.Fatalf("LoadLevelFromFS(%q): %v", name, err)
		}
		if _, _, ok := lvl.Spawn("player"); !ok {
			t.Fatalf("%q: no player spawn", name)
		}
	}
}

func TestParseRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty size", src: `{"width":0,"height":2}`},
		{name: "short layer", src: `{"width":2,"height":2,"layers":[[1,1,1]]}`},
		{name: "unknown tile", src: `{"width":1,"height":1,"layers":[[99]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.name, []byte(tt.src)); !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("err = %v, want ErrInvalidLevel", err)
			}
		})
	}
	if _, err := Parse("junk", []byte("{")); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestCoordinates(t *testing.T) {
	lvl, err := Parse("grid", []byte(`{"width":3,"height":2,"layers":[[0,0,2,1,1,1]],
		"entities":[{"type":"player","x":1,"y":0}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := lvl.TileAt(0, 2, 0); got != TileSlopeUp {
		t.Fatalf("TileAt(2,0) = %d", got)
	}
	if got := lvl.TileAt(0, 5, 0); got != TileEmpty {
		t.Fatalf("out of range tile = %d", got)
	}
	if x, y := lvl.TileOrigin(2, 0); x != 2 || y != 1 {
		t.Fatalf("TileOrigin(2,0) = %v,%v", x, y)
	}
	if x, y, _ := lvl.Spawn("player"); x != 1.5 || y != 1 {
		t.Fatalf("spawn = %v,%v", x, y)
	}
	if m := lvl.Meta(0); !m.Physics || m.Category != 1 {
		t.Fatalf("default meta = %+v", m)
	}
}

func TestSlopeHeights(t *testing.T) {
	tests := []struct {
		tile        int
		left, right float64
		ok          bool
	}{
		{TileSolid, 0, 0, false},
		{TileSlopeUp, 0, 1, true},
		{TileSlopeDown, 1, 0, true},
		{TileGentleUpLow, 0, 0.5, true},
		{TileGentleUpHigh, 0.5, 1, true},
		{TileGentleDownHigh, 1, 0.5, true},
		{TileGentleDownLow, 0.5, 0, true},
	}
	for _, tt := range tests {
		l, r, ok := SlopeHeights(tt.tile)
		if l != tt.left || r != tt.right || ok != tt.ok {
			t.Fatalf("SlopeHeights(%d) = %v,%v,%t", tt.tile, l, r, ok)
		}
	}
}
