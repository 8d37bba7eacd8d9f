package component

import "testing"

func clip(name string, frames int, fps float64, loop bool, endFrame int) *Animation {
	return NewAnimation(name, nil, frames, fps, loop, endFrame)
}

func TestAnimationLoopsToEndFrame(t *testing.T) {
	a := clip("JumpUp", 3, 60, true, 2)
	var got []int
	for i := 0; i < 5; i++ {
		a.Update()
		got = append(got, a.Frame())
	}
	want := []int{1, 2, 2, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
}

func TestAnimationStopsWhenNotLooping(t *testing.T) {
	a := clip("FallDown", 3, 30, false, 0)
	for i := 0; i < 20; i++ {
		a.Update()
	}
	if a.Frame() != 2 || !a.Done() {
		t.Fatalf("frame = %d done = %t", a.Frame(), a.Done())
	}
}

func TestAnimationTicksPerFrame(t *testing.T) {
	a := clip("Idle", 4, 6, true, 0)
	for i := 0; i < 9; i++ {
		a.Update()
	}
	if a.Frame() != 0 {
		t.Fatalf("frame after 9 ticks = %d, want 0", a.Frame())
	}
	a.Update()
	if a.Frame() != 1 {
		t.Fatalf("frame after 10 ticks = %d, want 1", a.Frame())
	}
}

func TestAnimatorPlay(t *testing.T) {
	an := NewAnimator(clip("Run", 8, 60, true, 0), clip("Run_Blaster", 8, 60, true, 0), clip("JumpUp", 3, 60, true, 2))

	an.Play("Run")
	for i := 0; i < 5; i++ {
		an.Update()
	}
	if an.Current() != "Run" || an.Frame() != 5 {
		t.Fatalf("playing %s frame %d", an.Current(), an.Frame())
	}

	an.PlayFromCurrentFrame("Run_Blaster")
	if an.Current() != "Run_Blaster" || an.Frame() != 5 {
		t.Fatalf("continue: playing %s frame %d, want Run_Blaster frame 5", an.Current(), an.Frame())
	}

	an.PlayFromCurrentFrame("JumpUp")
	if an.Frame() != 0 {
		t.Fatalf("frame past the end of the new clip = %d, want 0", an.Frame())
	}

	an.Play("Missing")
	if an.Current() != "JumpUp" {
		t.Fatalf("unknown clip replaced %s", an.Current())
	}

	an.Play("Run")
	if an.Frame() != 0 {
		t.Fatalf("Play should restart, frame = %d", an.Frame())
	}
}

func TestAnimatorFacing(t *testing.T) {
	an := NewAnimator()
	an.FaceLeft()
	if !an.FlipX() {
		t.Fatal("facing left should flip")
	}
	an.FaceRight()
	if an.FlipX() {
		t.Fatal("facing right should not flip")
	}
	// no clip yet
	an.Update()
	an.PlayFromCurrentFrame("Idle")
	if an.Current() != "" {
		t.Fatalf("current = %q", an.Current())
	}
}
