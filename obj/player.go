package obj

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/component"
	"github.com/milk9111/jank/prefabs"
	"golang.org/x/image/colornames"
)

// Player draws a character box with the clip its state machine asked for.
type Player struct {
	Animator *component.Animator

	frameW int
	frameH int
}

// NewPlayer builds placeholder frames for every clip in spec: a body in the
// clip's color with a band that moves from frame to frame, and a visor on the
// facing side.
func NewPlayer(spec prefabs.AnimationSpec) *Player {
	p := &Player{Animator: component.NewAnimator()}
	p.Load(spec)
	return p
}

// Load rebuilds the clips from spec. Clips missing from spec are kept.
func (p *Player) Load(spec prefabs.AnimationSpec) {
	p.frameW, p.frameH = spec.FrameW, spec.FrameH
	if p.frameW <= 0 {
		p.frameW = 16
	}
	if p.frameH <= 0 {
		p.frameH = 32
	}

	names := make([]string, 0, len(spec.Clips))
	for name := range spec.Clips {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := spec.Clips[name]
		frames := make([]*ebiten.Image, c.Frames)
		for i := range frames {
			frames[i] = ebiten.NewImageFromImage(p.frame(c.Color.Color, i, c.Frames))
		}
		p.Animator.Add(component.NewAnimation(name, frames, c.Frames, c.FPS, c.Loop, c.EndFrame))
	}
}

func (p *Player) frame(col color.Color, i, n int) image.Image {
	if col == nil {
		col = colornames.Crimson
	}
	img := image.NewRGBA(image.Rect(0, 0, p.frameW, p.frameH))
	r, g, b, a := col.RGBA()
	body := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	band := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: body.A}
	visor := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	bandY := 0
	if n > 1 {
		bandY = i * (p.frameH - 2) / (n - 1)
	}
	for y := 0; y < p.frameH; y++ {
		for x := 0; x < p.frameW; x++ {
			c := body
			switch {
			case y >= bandY && y < bandY+2:
				c = band
			case y >= p.frameH/8 && y < p.frameH/4 && x >= p.frameW/2:
				c = visor
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func (p *Player) Update() {
	p.Animator.Update()
}

// Draw stretches the current frame over bb.
func (p *Player) Draw(screen *ebiten.Image, cam *Camera, bb cp.BB) {
	left, top := cam.WorldToScreen(cp.Vector{X: bb.L, Y: bb.T})
	right, bottom := cam.WorldToScreen(cp.Vector{X: bb.R, Y: bb.B})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale((right-left)/float64(p.frameW), (bottom-top)/float64(p.frameH))
	op.GeoM.Translate(left, top)
	p.Animator.Draw(screen, op)
}
