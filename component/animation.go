package component

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is one clip: a run of frames played at a fixed rate. Frames may be
// nil, in which case only the timing runs.
type Animation struct {
	Name       string
	Frames     []*ebiten.Image
	FrameCount int
	FPS        float64
	Loop       bool
	// EndFrame is the frame a looping clip goes back to after its last one.
	EndFrame int

	current     int
	tick        int
	ticksPerFrm int
}

// NewAnimation creates a clip. frameCount defaults to len(frames) and fps to 12.
func NewAnimation(name string, frames []*ebiten.Image, frameCount int, fps float64, loop bool, endFrame int) *Animation {
	if frameCount <= 0 {
		frameCount = len(frames)
	}
	if fps <= 0 {
		fps = 12
	}
	if endFrame < 0 || endFrame >= frameCount {
		endFrame = 0
	}
	return &Animation{
		Name:        name,
		Frames:      frames,
		FrameCount:  frameCount,
		FPS:         fps,
		Loop:        loop,
		EndFrame:    endFrame,
		ticksPerFrm: int(math.Max(1, math.Round(float64(ebiten.DefaultTPS)/fps))),
	}
}

// Update advances the clip by one game tick.
func (a *Animation) Update() {
	if a == nil || a.FrameCount <= 1 {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= a.FrameCount {
		if a.Loop {
			a.current = a.EndFrame
		} else {
			a.current = a.FrameCount - 1
		}
	}
}

// Done reports whether a one-shot clip has reached its last frame.
func (a *Animation) Done() bool {
	return a != nil && !a.Loop && a.current >= a.FrameCount-1
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
}

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil || a.FrameCount == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= a.FrameCount {
		i = a.FrameCount - 1
	}
	a.current = i
	a.tick = 0
}

func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

// Image returns the current frame image, or nil for a timing-only clip.
func (a *Animation) Image() *ebiten.Image {
	if a == nil || a.current >= len(a.Frames) {
		return nil
	}
	return a.Frames[a.current]
}
