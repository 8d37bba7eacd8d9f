package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
)

// Camera maps y-up world units onto the y-down screen, centered on a world
// point, with zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	bounds cp.BB
	// bounds are ignored until SetWorldBounds is called
	hasBounds bool
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds limits the view to bb, in world units.
func (c *Camera) SetWorldBounds(bb cp.BB) {
	c.bounds = bb
	c.hasBounds = true
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Scale is the number of screen pixels per world unit.
func (c *Camera) Scale() float64 {
	return c.zoom * common.TileSize
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	s := c.Scale()
	return (p.X-c.PosX)*s + float64(c.screenW)/2, float64(c.screenH)/2 - (p.Y-c.PosY)*s
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float64) cp.Vector {
	s := c.Scale()
	return cp.Vector{
		X: c.PosX + (x-float64(c.screenW)/2)/s,
		Y: c.PosY - (y-float64(c.screenH)/2)/s,
	}
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 {
		c.PosX = target.X
		c.PosY = target.Y
	} else {
		c.PosX = common.Lerp(c.PosX, target.X, c.smooth)
		c.PosY = common.Lerp(c.PosY, target.Y, c.smooth)
	}
	c.constrain()
}

// SnapTo immediately centers the camera on p. Use this after a level load or
// a teleport.
func (c *Camera) SnapTo(p cp.Vector) {
	c.PosX = p.X
	c.PosY = p.Y
	c.constrain()
}

func (c *Camera) constrain() {
	// snap to the pixel grid so tiles don't shimmer
	s := c.Scale()
	c.PosX = math.Round(c.PosX*s) / s
	c.PosY = math.Round(c.PosY*s) / s

	if !c.hasBounds {
		return
	}
	halfW := float64(c.screenW) / s / 2
	halfH := float64(c.screenH) / s / 2
	c.PosX = clampView(c.PosX, c.bounds.L, c.bounds.R, halfW)
	c.PosY = clampView(c.PosY, c.bounds.B, c.bounds.T, halfH)
}

// clampView keeps a view of half extent half inside [lo, hi], centering it
// when the range is smaller than the view.
func clampView(v, lo, hi, half float64) float64 {
	if hi-lo < 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}
