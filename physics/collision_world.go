package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/levels"
)

// CollisionWorld is the static environment as a chipmunk space. It only
// answers ray queries; nothing in it is ever simulated.
type CollisionWorld struct {
	space     *cp.Space
	bounds    cp.BB
	hasBounds bool
	shapes    int
}

func NewCollisionWorld() *CollisionWorld {
	return &CollisionWorld{space: cp.NewSpace()}
}

// NewCollisionWorldFromLevel builds static shapes for every physics layer of
// lvl. Runs of solid tiles are merged into boxes and slope tiles become
// polygons.
func NewCollisionWorldFromLevel(lvl *levels.Level) *CollisionWorld {
	cw := NewCollisionWorld()
	if lvl == nil {
		return cw
	}
	for layerIdx := range lvl.Layers {
		meta := lvl.Meta(layerIdx)
		if !meta.Physics {
			continue
		}
		cw.addLayer(lvl, layerIdx, meta.Category)
	}
	return cw
}

func (cw *CollisionWorld) addLayer(lvl *levels.Level, layerIdx int, category uint) {
	solid := func(x, y int) bool {
		return lvl.TileAt(layerIdx, x, y) == levels.TileSolid
	}

	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] {
				continue
			}
			processed[idx] = true

			tile := lvl.TileAt(layerIdx, x, y)
			if left, right, ok := levels.SlopeHeights(tile); ok {
				x0, y0 := lvl.TileOrigin(x, y)
				cw.AddPolygon(slopeVerts(x0, y0, left, right), category)
				continue
			}
			if tile != levels.TileSolid {
				continue
			}

			// grow the box right, then down, over unclaimed solid tiles
			w := 1
			for x+w < lvl.Width && !processed[idx+w] && solid(x+w, y) {
				w++
			}
			h := 1
		heightLoop:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*lvl.Width+xi] || !solid(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}
			for yi := y; yi < y+h; yi++ {
				for xi := x; xi < x+w; xi++ {
					processed[yi*lvl.Width+xi] = true
				}
			}

			left, top := lvl.TileOrigin(x, y)
			top++
			cw.AddBox(cp.BB{L: left, B: top - float64(h), R: left + float64(w), T: top}, category)
		}
	}
}

// slopeVerts returns the counter-clockwise outline of a tile solid below the
// edge from (x, y+left) to (x+1, y+right).
func slopeVerts(x, y, left, right float64) []cp.Vector {
	verts := []cp.Vector{{X: x, Y: y}, {X: x + 1, Y: y}}
	if right > 0 {
		verts = append(verts, cp.Vector{X: x + 1, Y: y + right})
	}
	if left > 0 {
		verts = append(verts, cp.Vector{X: x, Y: y + left})
	}
	return verts
}

func (cw *CollisionWorld) AddBox(bb cp.BB, category uint) *cp.Shape {
	shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
	return cw.add(shape, category, bb)
}

// AddPolygon adds a convex polygon. Vertices may be in either winding.
func (cw *CollisionWorld) AddPolygon(verts []cp.Vector, category uint) *cp.Shape {
	if len(verts) < 3 {
		return nil
	}
	verts = counterClockwise(verts)
	shape := cp.NewPolyShapeRaw(cw.space.StaticBody, len(verts), verts, 0)
	return cw.add(shape, category, boundsOf(verts...))
}

func (cw *CollisionWorld) AddSegment(a, b cp.Vector, category uint) *cp.Shape {
	shape := cp.NewSegment(cw.space.StaticBody, a, b, 0)
	return cw.add(shape, category, boundsOf(a, b))
}

func (cw *CollisionWorld) add(shape *cp.Shape, category uint, bb cp.BB) *cp.Shape {
	shape.SetFilter(cp.ShapeFilter{Categories: category, Mask: controller.AllLayers})
	cw.space.AddShape(shape)
	cw.shapes++
	if cw.hasBounds {
		cw.bounds = cw.bounds.Merge(bb)
	} else {
		cw.bounds = bb
		cw.hasBounds = true
	}
	return shape
}

// Cast implements controller.Caster with a segment query. An unbounded ray is
// cut off just past the far side of the world.
func (cw *CollisionWorld) Cast(origin, dir cp.Vector, maxDist float64, mask uint) (controller.Hit, bool) {
	if cw.shapes == 0 || !(maxDist > 0) {
		return controller.Hit{}, false
	}
	if reach := cw.reach(origin); maxDist > reach {
		maxDist = reach
	}

	end := origin.Add(dir.Mult(maxDist))
	filter := cp.ShapeFilter{Categories: controller.AllLayers, Mask: mask}
	info := cw.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return controller.Hit{}, false
	}
	return controller.Hit{Distance: info.Alpha * maxDist, Normal: info.Normal}, true
}

func (cw *CollisionWorld) reach(origin cp.Vector) float64 {
	bb := cw.bounds
	dx := math.Max(math.Abs(origin.X-bb.L), math.Abs(origin.X-bb.R))
	dy := math.Max(math.Abs(origin.Y-bb.B), math.Abs(origin.Y-bb.T))
	return math.Hypot(dx, dy) + 1
}

func (cw *CollisionWorld) Space() *cp.Space {
	return cw.space
}

// Bounds covers every shape added so far.
func (cw *CollisionWorld) Bounds() cp.BB {
	return cw.bounds
}

func (cw *CollisionWorld) ShapeCount() int {
	return cw.shapes
}

func boundsOf(points ...cp.Vector) cp.BB {
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, p := range points {
		bb.L = math.Min(bb.L, p.X)
		bb.B = math.Min(bb.B, p.Y)
		bb.R = math.Max(bb.R, p.X)
		bb.T = math.Max(bb.T, p.Y)
	}
	return bb
}

func counterClockwise(verts []cp.Vector) []cp.Vector {
	area := 0.0
	for i := range verts {
		j := (i + 1) % len(verts)
		area += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	if area >= 0 {
		return verts
	}
	out := make([]cp.Vector, len(verts))
	for i, v := range verts {
		out[len(verts)-1-i] = v
	}
	return out
}
