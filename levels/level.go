package levels

import (
	"errors"
	"fmt"
)

var ErrInvalidLevel = errors.New("levels: invalid level")

// Tile values. Slopes are solid below a straight edge between their left and
// right heights; the gentle pieces come in pairs spanning two tiles.
const (
	TileEmpty = iota
	TileSolid
	TileSlopeUp
	TileSlopeDown
	TileGentleUpLow
	TileGentleUpHigh
	TileGentleDownHigh
	TileGentleDownLow
	tileKinds
)

// Level is a tile grid. Rows are stored top to bottom; the bottom row sits
// on y=0 in world space and every tile is one unit square.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color,omitempty"`
	// Category is the collision layer bit of the layer's tiles. Zero means 1.
	Category uint `json:"category,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d tiles, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height)
		}
		for j, v := range layer {
			if v < 0 || v >= tileKinds {
				return fmt.Errorf("%w: layer %d tile %d has unknown value %d", ErrInvalidLevel, i, j, v)
			}
		}
	}
	return nil
}

// Meta returns the metadata of a layer, defaulting to a solid physics layer.
func (l *Level) Meta(layer int) LayerMeta {
	if layer >= 0 && layer < len(l.LayerMeta) {
		m := l.LayerMeta[layer]
		if m.Category == 0 {
			m.Category = 1
		}
		return m
	}
	return LayerMeta{Physics: true, Category: 1}
}

// TileAt returns the tile of a layer at grid column x and row y (row 0 on top).
func (l *Level) TileAt(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileEmpty
	}
	return l.Layers[layer][y*l.Width+x]
}

// TileOrigin is the world-space bottom-left corner of a grid cell.
func (l *Level) TileOrigin(x, y int) (float64, float64) {
	return float64(x), float64(l.Height - 1 - y)
}

// SlopeHeights returns the surface height at the left and right edge of a
// slope tile as fractions of a tile. ok is false for tiles that are not slopes.
func SlopeHeights(tile int) (left, right float64, ok bool) {
	switch tile {
	case TileSlopeUp:
		return 0, 1, true
	case TileSlopeDown:
		return 1, 0, true
	case TileGentleUpLow:
		return 0, 0.5, true
	case TileGentleUpHigh:
		return 0.5, 1, true
	case TileGentleDownHigh:
		return 1, 0.5, true
	case TileGentleDownLow:
		return 0.5, 0, true
	}
	return 0, 0, false
}

// Spawn returns the world position of the first entity of the given type,
// centered on its tile's bottom edge.
func (l *Level) Spawn(entityType string) (float64, float64, bool) {
	for _, e := range l.Entities {
		if e.Type != entityType {
			continue
		}
		x, y := l.TileOrigin(e.X, e.Y)
		return x + 0.5, y, true
	}
	return 0, 0, false
}
