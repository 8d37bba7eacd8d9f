package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/prefabs"
)

// The script defines update(engine, memory) and returns a map of inputs.
// memory survives between frames.
const frameDispatchScript = `
__input = update(__engine, __memory)
`

// Frame is the snapshot of the character handed to the script.
type Frame struct {
	Index    int
	Time     float64
	Position cp.Vector
	Velocity cp.Vector
	Grounded bool
	Falling  bool
	State    string
	Facing   string
}

// FrameOf snapshots c at frame index i of a run stepped by dt.
func FrameOf(i int, dt float64, c *character.Character) Frame {
	return Frame{
		Index:    i,
		Time:     float64(i) * dt,
		Position: c.Position(),
		Velocity: c.Velocity(),
		Grounded: c.IsGrounded(),
		Falling:  c.IsFalling(),
		State:    c.State().String(),
		Facing:   c.Facing().String(),
	}
}

// Runner produces character input from a compiled tengo script.
type Runner struct {
	name     string
	compiled *tengo.Compiled
	memory   *tengo.Map
}

// Load compiles a script from prefabs/scripts.
func Load(name string) (*Runner, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func Compile(name string, src []byte) (*Runner, error) {
	s := tengo.NewScript([]byte(string(src) + "\n" + frameDispatchScript))
	// Add only fails on values tengo cannot convert; empty maps always convert
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__memory", map[string]any{})
	_ = s.Add("__input", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Runner{
		name:     name,
		compiled: compiled,
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (r *Runner) Name() string {
	return r.name
}

// Next runs the script for one frame.
func (r *Runner) Next(f Frame) (character.Input, error) {
	if err := r.compiled.Set("__engine", engineMap(f)); err != nil {
		return character.Input{}, fmt.Errorf("script: %s: %w", r.name, err)
	}
	if err := r.compiled.Set("__memory", r.memory); err != nil {
		return character.Input{}, fmt.Errorf("script: %s: %w", r.name, err)
	}
	if err := r.compiled.Run(); err != nil {
		return character.Input{}, fmt.Errorf("script: run %s frame %d: %w", r.name, f.Index, err)
	}
	return decodeInput(r.compiled.Get("__input").Object()), nil
}

// Reset forgets everything the script stored in memory.
func (r *Runner) Reset() {
	r.memory = &tengo.Map{Value: map[string]tengo.Object{}}
}

func engineMap(f Frame) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"frame":    &tengo.Int{Value: int64(f.Index)},
		"time":     &tengo.Float{Value: f.Time},
		"x":        &tengo.Float{Value: f.Position.X},
		"y":        &tengo.Float{Value: f.Position.Y},
		"vx":       &tengo.Float{Value: f.Velocity.X},
		"vy":       &tengo.Float{Value: f.Velocity.Y},
		"grounded": boolObject(f.Grounded),
		"falling":  boolObject(f.Falling),
		"state":    &tengo.String{Value: f.State},
		"facing":   &tengo.String{Value: f.Facing},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func decodeInput(obj tengo.Object) character.Input {
	var fields map[string]tengo.Object
	switch v := obj.(type) {
	case *tengo.Map:
		fields = v.Value
	case *tengo.ImmutableMap:
		fields = v.Value
	default:
		return character.Input{}
	}

	in := character.Input{}
	for k, v := range fields {
		switch strings.ToLower(k) {
		case "move_x":
			in.MoveX = number(v)
		case "move_y":
			in.MoveY = number(v)
		case "jump":
			in.JumpPressed = !v.IsFalsy()
		case "weapon":
			in.WeaponPressed = !v.IsFalsy()
		case "teleport":
			in.TeleportPressed = !v.IsFalsy()
		}
	}
	return in
}

func number(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		if v.IsFalsy() {
			return 0
		}
		return 1
	}
	return 0
}
