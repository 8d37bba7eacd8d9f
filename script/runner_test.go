package script

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/locomotion"
)

func TestNextDecodesInput(t *testing.T) {
	r, err := Compile("inline", []byte(`
update := func(engine, memory) {
	return {move_x: engine.frame > 1 ? -1 : 0.5, jump: engine.grounded, weapon: 1, teleport: false}
}`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tests := []struct {
		frame Frame
		want  character.Input
	}{
		{frame: Frame{Index: 0}, want: character.Input{MoveX: 0.5, WeaponPressed: true}},
		{frame: Frame{Index: 2, Grounded: true}, want: character.Input{MoveX: -1, JumpPressed: true, WeaponPressed: true}},
	}
	for _, tt := range tests {
		got, err := r.Next(tt.frame)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != tt.want {
			t.Fatalf("frame %d: input = %+v, want %+v", tt.frame.Index, got, tt.want)
		}
	}
}

func TestMemoryPersists(t *testing.T) {
	r, err := Compile("counter", []byte(`
update := func(engine, memory) {
	memory.count = memory.count == undefined ? 1 : memory.count + 1
	return {move_x: memory.count}
}`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var last character.Input
	for i := 0; i < 3; i++ {
		if last, err = r.Next(Frame{Index: i}); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if last.MoveX != 3 {
		t.Fatalf("count = %v, want 3", last.MoveX)
	}
	r.Reset()
	if last, _ = r.Next(Frame{}); last.MoveX != 1 {
		t.Fatalf("count after reset = %v, want 1", last.MoveX)
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("no update", []byte(`x := 1`)); err == nil {
		t.Fatal("a script without update should not compile")
	}
	r, err := Compile("bad return", []byte(`update := func(engine, memory) { return 7 }`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if in, err := r.Next(Frame{}); err != nil || in != (character.Input{}) {
		t.Fatalf("non-map result = %+v, %v", in, err)
	}
}

func TestDemoScriptDrivesCharacter(t *testing.T) {
	r, err := Load("demo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	floor := controller.CasterFunc(func(o, dir cp.Vector, maxDist float64, mask uint) (controller.Hit, bool) {
		if dir.Y < 0 && o.Y >= 0 && o.Y <= maxDist {
			return controller.Hit{Distance: o.Y, Normal: cp.Vector{X: 0, Y: 1}}, true
		}
		return controller.Hit{}, false
	})
	c, err := character.New(character.DefaultConfig(), floor, cp.Vector{X: 3.5, Y: 1}, nil)
	if err != nil {
		t.Fatalf("character.New: %v", err)
	}

	const dt = 1.0 / 60
	for i := 0; i < 120; i++ {
		in, err := r.Next(FrameOf(i, dt, c))
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		c.Update(dt, in)
	}
	if c.State() != locomotion.Run || c.Facing() != locomotion.FacingRight {
		t.Fatalf("after two seconds: %s", c)
	}
	if math.Abs(c.Position().X-3.5) < 1 {
		t.Fatalf("demo did not move the character: %v", c.Position())
	}
}
