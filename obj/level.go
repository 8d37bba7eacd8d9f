package obj

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/levels"
)

// defaultLayerColor is used for layers without a color in their metadata.
const defaultLayerColor = "#3c4a5c"

// Level draws the tiles of a levels.Level. Slopes are filled as polygons so
// what is drawn matches the collision shapes.
type Level struct {
	*levels.Level

	colors []color.RGBA
}

func NewLevel(lvl *levels.Level) *Level {
	l := &Level{Level: lvl}
	l.colors = make([]color.RGBA, len(lvl.Layers))
	for i := range lvl.Layers {
		hex := lvl.Meta(i).Color
		if hex == "" {
			hex = defaultLayerColor
		}
		l.colors[i] = parseHexColor(hex)
	}
	return l
}

// Draw renders every layer, bottom first. Tiles outside the view are skipped.
func (l *Level) Draw(screen *ebiten.Image, cam *Camera) {
	if l == nil || l.Level == nil || screen == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	for layer := range l.Layers {
		col := l.colors[layer]
		if !l.Meta(layer).Physics {
			// decoration draws faded
			col.A = 0x99
		}
		for y := 0; y < l.Height; y++ {
			for x := 0; x < l.Width; x++ {
				tile := l.TileAt(layer, x, y)
				if tile == levels.TileEmpty {
					continue
				}
				ox, oy := l.TileOrigin(x, y)
				verts := tileVerts(tile, ox, oy)
				if !onScreen(cam, verts, sw, sh) {
					continue
				}
				fillPolygon(screen, cam, verts, col)
			}
		}
	}
}

// tileVerts returns the outline of a tile in world units, counter-clockwise.
func tileVerts(tile int, x, y float64) []cp.Vector {
	if left, right, ok := levels.SlopeHeights(tile); ok {
		verts := []cp.Vector{{X: x, Y: y}, {X: x + 1, Y: y}}
		if right > 0 {
			verts = append(verts, cp.Vector{X: x + 1, Y: y + right})
		}
		if left > 0 {
			verts = append(verts, cp.Vector{X: x, Y: y + left})
		}
		return verts
	}
	return []cp.Vector{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}}
}

func onScreen(cam *Camera, verts []cp.Vector, sw, sh int) bool {
	r := image.Rectangle{}
	for i, v := range verts {
		x, y := cam.WorldToScreen(v)
		p := image.Rect(int(x), int(y), int(x)+1, int(y)+1)
		if i == 0 {
			r = p
		} else {
			r = r.Union(p)
		}
	}
	return r.Overlaps(image.Rect(0, 0, sw, sh))
}

var whitePixel *ebiten.Image

func white() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// fillPolygon fills a convex polygon given in world units.
func fillPolygon(dst *ebiten.Image, cam *Camera, verts []cp.Vector, col color.RGBA) {
	if len(verts) < 3 {
		return
	}
	r := float32(col.R) / 0xff
	g := float32(col.G) / 0xff
	b := float32(col.B) / 0xff
	a := float32(col.A) / 0xff

	vs := make([]ebiten.Vertex, 0, len(verts))
	for _, v := range verts {
		x, y := cam.WorldToScreen(v)
		vs = append(vs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	is := make([]uint16, 0, 3*(len(verts)-2))
	for i := 1; i+1 < len(verts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, white(), nil)
}

// parseHexColor parses a color in the form #rrggbb. Returns opaque blue if parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x00, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
