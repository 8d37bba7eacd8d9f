package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
	"github.com/milk9111/jank/controller"
	"golang.org/x/image/colornames"
)

var (
	rayHitColor  = colornames.Red
	rayMissColor = colornames.Dodgerblue
	boundsColor  = colornames.Yellow
)

const (
	minRayLength = 0.25
	maxRayLength = 2
)

// DebugDraw renders the static shapes of a chipmunk space through cam.
func DebugDraw(screen *ebiten.Image, space *cp.Space, cam *Camera) {
	if space == nil || screen == nil || cam == nil {
		return
	}
	cp.DrawSpace(space, &chipmunkDrawer{screen: screen, cam: cam})
}

// DrawRays draws the probes of the last resolve, red where they hit and blue
// where they did not.
func DrawRays(screen *ebiten.Image, cam *Camera, rays []controller.Ray) {
	for _, r := range rays {
		c := rayMissColor
		if r.Hit {
			c = rayHitColor
		}
		// probes are a skin width long; stretch them so they can be seen
		end := r.Origin.Add(r.Dir.Mult(common.Clamp(r.Length, minRayLength, maxRayLength)))
		ax, ay := cam.WorldToScreen(r.Origin)
		bx, by := cam.WorldToScreen(end)
		ebitenutil.DrawLine(screen, ax, ay, bx, by, c)
	}
}

// DrawBounds outlines a box given in world units.
func DrawBounds(screen *ebiten.Image, cam *Camera, bb cp.BB) {
	corners := []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}}
	for i := range corners {
		ax, ay := cam.WorldToScreen(corners[i])
		bx, by := cam.WorldToScreen(corners[(i+1)%len(corners)])
		ebitenutil.DrawLine(screen, ax, ay, bx, by, boundsColor)
	}
}

type chipmunkDrawer struct {
	screen *ebiten.Image
	cam    *Camera
}

func (d *chipmunkDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.cam.WorldToScreen(a)
	bx, by := d.cam.WorldToScreen(b)
	ebitenutil.DrawLine(d.screen, ax, ay, bx, by, c)
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
	// angle indicator
	d.line(pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, c)
}

func (d *chipmunkDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
	if radius > 0 {
		d.DrawCircle(a, 0, radius, outline, fill, data)
		d.DrawCircle(b, 0, radius, outline, fill, data)
	}
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *chipmunkDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.cam.WorldToScreen(pos)
	c := fcolorToRGBA(fill)
	l := size / 2
	ebitenutil.DrawLine(d.screen, x-l, y, x+l, y, c)
	ebitenutil.DrawLine(d.screen, x, y-l, x, y+l, c)
}

func (d *chipmunkDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *chipmunkDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *chipmunkDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *chipmunkDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
