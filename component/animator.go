package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Animator plays named clips and mirrors them horizontally when facing left.
type Animator struct {
	clips   map[string]*Animation
	current *Animation
	flipX   bool
}

func NewAnimator(clips ...*Animation) *Animator {
	a := &Animator{clips: make(map[string]*Animation, len(clips))}
	for _, c := range clips {
		a.Add(c)
	}
	return a
}

func (a *Animator) Add(clip *Animation) {
	if clip == nil || clip.Name == "" {
		return
	}
	a.clips[clip.Name] = clip
}

// Play starts a clip from its first frame. Unknown names are ignored.
func (a *Animator) Play(name string) {
	clip, ok := a.clips[name]
	if !ok {
		return
	}
	clip.Reset()
	a.current = clip
}

// PlayFromCurrentFrame switches to a clip keeping the frame index of the one
// playing now, or starts it over when that frame does not exist in it.
func (a *Animator) PlayFromCurrentFrame(name string) {
	clip, ok := a.clips[name]
	if !ok {
		return
	}
	frame := a.current.Frame()
	if a.current == nil || frame >= clip.FrameCount {
		frame = 0
	}
	clip.SetFrame(frame)
	a.current = clip
}

func (a *Animator) FaceLeft() {
	a.flipX = true
}

func (a *Animator) FaceRight() {
	a.flipX = false
}

func (a *Animator) FlipX() bool {
	return a.flipX
}

// Current returns the name of the playing clip.
func (a *Animator) Current() string {
	if a.current == nil {
		return ""
	}
	return a.current.Name
}

func (a *Animator) Frame() int {
	return a.current.Frame()
}

func (a *Animator) Update() {
	a.current.Update()
}

// Draw draws the current frame with op, flipped about the frame's center
// when facing left.
func (a *Animator) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	img := a.current.Image()
	if img == nil {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	if a.flipX {
		w := float64(img.Bounds().Dx())
		var flip ebiten.GeoM
		flip.Scale(-1, 1)
		flip.Translate(w, 0)
		flip.Concat(dop.GeoM)
		dop.GeoM = flip
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(img, &dop)
}
