package common

const (
	// TileSize is the number of screen pixels per world unit. One tile is one unit.
	TileSize = 32

	BaseWidth  = 1280
	BaseHeight = 720
)
