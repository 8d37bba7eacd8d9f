package stage

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/levels"
	"github.com/milk9111/jank/locomotion"
	"github.com/milk9111/jank/prefabs"
)

func TestLoadDefaultStage(t *testing.T) {
	s, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.World.ShapeCount() == 0 {
		t.Fatal("empty collision world")
	}
	// player entity sits at tile (3, 15) of an 18 row level
	if s.Spawn.X != 3.5 || s.Spawn.Y != 2 {
		t.Fatalf("spawn = %v, want (3.5, 2)", s.Spawn)
	}
}

func TestCharacterSettlesOnSpawn(t *testing.T) {
	s, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := s.NewCharacter(nil)
	if err != nil {
		t.Fatalf("NewCharacter: %v", err)
	}
	for i := 0; i < 30; i++ {
		c.Update(1.0/60, character.Input{})
	}
	if !c.IsGrounded() || c.State() != locomotion.Stationary {
		t.Fatalf("after settling: %s", c)
	}
	if got := c.Bounds().B; math.Abs(got-s.Spawn.Y) > 0.05 {
		t.Fatalf("feet at %v, want %v", got, s.Spawn.Y)
	}
	if s.OutOfBounds(c.Position()) {
		t.Fatal("standing character reported out of bounds")
	}
	if !s.OutOfBounds(cp.Vector{X: 3, Y: -100}) {
		t.Fatal("far below the level should be out of bounds")
	}
}

func TestSpawnWithoutEntity(t *testing.T) {
	lvl := &levels.Level{Width: 4, Height: 2, Layers: [][]int{{0, 0, 0, 0, 1, 1, 1, 1}}}
	spec := prefabs.DefaultPlayerSpec()
	s := New("flat", lvl, &spec)
	if s.Spawn != (cp.Vector{X: 2, Y: 1}) {
		t.Fatalf("spawn = %v, want level center", s.Spawn)
	}
}
