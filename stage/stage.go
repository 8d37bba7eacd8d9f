// Package stage puts a player prefab into a level: it loads both, builds the
// collision world and spawns the character.
package stage

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/levels"
	"github.com/milk9111/jank/locomotion"
	"github.com/milk9111/jank/physics"
	"github.com/milk9111/jank/prefabs"
)

// PlayerEntity is the level entity type marking the spawn point.
const PlayerEntity = "player"

type Stage struct {
	LevelName string
	Level     *levels.Level
	World     *physics.CollisionWorld
	Spec      *prefabs.PlayerSpec
	// Spawn is the bottom center of the player's box.
	Spawn cp.Vector
}

// Load reads a level and a player prefab. Empty names load the defaults.
func Load(levelName, playerFile string) (*Stage, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}
	spec, err := prefabs.LoadPlayerSpec(playerFile)
	if err != nil {
		return nil, fmt.Errorf("stage: %w", err)
	}
	return New(levelName, lvl, spec), nil
}

func New(levelName string, lvl *levels.Level, spec *prefabs.PlayerSpec) *Stage {
	s := &Stage{
		LevelName: levelName,
		Level:     lvl,
		World:     physics.NewCollisionWorldFromLevel(lvl),
		Spec:      spec,
	}
	if x, y, ok := lvl.Spawn(PlayerEntity); ok {
		s.Spawn = cp.Vector{X: x, Y: y}
	} else {
		s.Spawn = cp.Vector{X: float64(lvl.Width) / 2, Y: float64(lvl.Height) / 2}
	}
	return s
}

// SetLevel swaps the level and rebuilds the collision world.
func (s *Stage) SetLevel(lvl *levels.Level) {
	*s = *New(s.LevelName, lvl, s.Spec)
}

// SpawnCenter is where the player's box center goes at spawn.
func (s *Stage) SpawnCenter() cp.Vector {
	// lift by the skin so the first resolve starts clear of the ground
	return cp.Vector{X: s.Spawn.X, Y: s.Spawn.Y + s.Spec.Height/2 + s.Spec.SkinWidth}
}

// NewCharacter spawns a character from the prefab into the world.
func (s *Stage) NewCharacter(anim locomotion.Animator) (*character.Character, error) {
	c, err := character.New(s.Spec.Config(), s.World, s.SpawnCenter(), anim)
	if err != nil {
		return nil, fmt.Errorf("stage: spawn %s: %w", s.Spec.Name, err)
	}
	return c, nil
}

// OutOfBounds reports whether p has fallen a full level height below the
// world.
func (s *Stage) OutOfBounds(p cp.Vector) bool {
	bb := s.World.Bounds()
	return p.Y < bb.B-float64(s.Level.Height)
}
