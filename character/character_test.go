package character

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/locomotion"
)

const frame = 1.0 / 60

// room is an endless floor at y=0 with an optional wall facing left at wallX.
func room(wallX float64) controller.Caster {
	return controller.CasterFunc(func(o, dir cp.Vector, maxDist float64, mask uint) (controller.Hit, bool) {
		switch {
		case dir.Y < 0 && o.Y >= 0:
			if d := o.Y; d <= maxDist {
				return controller.Hit{Distance: d, Normal: cp.Vector{X: 0, Y: 1}}, true
			}
		case dir.X > 0 && o.X <= wallX:
			if d := wallX - o.X; d <= maxDist {
				return controller.Hit{Distance: d, Normal: cp.Vector{X: -1, Y: 0}}, true
			}
		}
		return controller.Hit{}, false
	})
}

type labelRecorder struct {
	played    []string
	continued []string
}

func (r *labelRecorder) Play(label string)                 { r.played = append(r.played, label) }
func (r *labelRecorder) PlayFromCurrentFrame(label string) { r.continued = append(r.continued, label) }
func (r *labelRecorder) FaceLeft()                         {}
func (r *labelRecorder) FaceRight()                        {}

func newStanding(t *testing.T, cfg Config, caster controller.Caster, anim locomotion.Animator) *Character {
	t.Helper()
	c, err := New(cfg, caster, cp.Vector{X: 0, Y: cfg.Height / 2}, anim)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 2; i++ {
		c.Update(frame, Input{})
	}
	if !c.IsGrounded() || c.State() != locomotion.Stationary {
		t.Fatalf("character did not settle: %s", c)
	}
	return c
}

func TestJumpReachesConfiguredHeight(t *testing.T) {
	const dt = 1.0 / 600
	cfg := DefaultConfig()
	c := newStanding(t, cfg, room(math.Inf(1)), nil)

	c.Update(dt, Input{JumpPressed: true})
	if c.State() != locomotion.JumpUp {
		t.Fatalf("state = %s, want jump_up", c.State())
	}

	apex := c.Bounds().B
	sawFall := false
	for i := 0; i < 2000 && !(sawFall && c.IsGrounded()); i++ {
		c.Update(dt, Input{})
		apex = math.Max(apex, c.Bounds().B)
		if c.State() == locomotion.FallDown {
			sawFall = true
		}
	}

	if math.Abs(apex-cfg.JumpHeight) > 0.05 {
		t.Fatalf("apex = %v, want about %v", apex, cfg.JumpHeight)
	}
	if !sawFall || !c.IsGrounded() {
		t.Fatalf("jump did not come back down: %s", c)
	}
	c.Update(dt, Input{})
	if c.State() != locomotion.Stationary {
		t.Fatalf("state after landing = %s", c.State())
	}
}

func TestScriptedRunIsDeterministic(t *testing.T) {
	script := func(i int) Input {
		switch {
		case i < 10:
			return Input{}
		case i < 40:
			return Input{MoveX: 1, JumpPressed: i == 30}
		case i < 100:
			return Input{MoveX: -1}
		}
		return Input{}
	}

	run := func() ([]locomotion.State, cp.Vector) {
		c, err := New(DefaultConfig(), room(math.Inf(1)), cp.Vector{X: 0, Y: 1}, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var trace []locomotion.State
		for i := 0; i < 200; i++ {
			c.Update(frame, script(i))
			if len(trace) == 0 || trace[len(trace)-1] != c.State() {
				trace = append(trace, c.State())
			}
		}
		return trace, c.Position()
	}

	trace, pos := run()
	trace2, pos2 := run()
	if !reflect.DeepEqual(trace, trace2) || pos != pos2 {
		t.Fatalf("runs differ: %v at %v, %v at %v", trace, pos, trace2, pos2)
	}

	want := []locomotion.State{
		locomotion.FallDown, locomotion.Stationary, locomotion.Run, locomotion.JumpUp,
		locomotion.FallDown, locomotion.Run, locomotion.Stationary,
	}
	if !reflect.DeepEqual(trace, want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
}

func TestRunFacesAndMoves(t *testing.T) {
	c := newStanding(t, DefaultConfig(), room(math.Inf(1)), nil)
	c.Update(frame, Input{MoveX: -1})
	if c.State() != locomotion.Run || c.Facing() != locomotion.FacingLeft {
		t.Fatalf("state/facing = %s/%s", c.State(), c.Facing())
	}
	if c.Velocity().X != -3 {
		t.Fatalf("vx = %v, want -3 with no smoothing", c.Velocity().X)
	}
	if !c.IsGrounded() {
		t.Fatal("running on flat ground should stay grounded")
	}
}

func TestSmoothedAcceleration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AccelTimeGrounded = 0.1
	c := newStanding(t, cfg, room(math.Inf(1)), nil)

	c.Update(frame, Input{MoveX: 1})
	if vx := c.Velocity().X; vx <= 0 || vx >= cfg.MoveSpeed {
		t.Fatalf("vx after one frame = %v, want between 0 and %v", vx, cfg.MoveSpeed)
	}
	for i := 0; i < 120; i++ {
		c.Update(frame, Input{MoveX: 1})
	}
	if math.Abs(c.Velocity().X-cfg.MoveSpeed) > 1e-3 {
		t.Fatalf("vx = %v, want %v", c.Velocity().X, cfg.MoveSpeed)
	}
}

func TestWallStopsRun(t *testing.T) {
	c := newStanding(t, DefaultConfig(), room(3), nil)
	for i := 0; i < 120; i++ {
		c.Update(frame, Input{MoveX: 1})
	}
	if !c.Collisions().Right {
		t.Fatalf("expected wall contact: %s", c)
	}
	if r := c.Bounds().R; r > 3+1e-9 || r < 3-0.05 {
		t.Fatalf("right edge = %v, want against the wall at 3", r)
	}
}

func TestTeleport(t *testing.T) {
	c := newStanding(t, DefaultConfig(), room(math.Inf(1)), nil)
	for i := 0; i < 30; i++ {
		c.Update(frame, Input{MoveX: 1})
	}
	c.Update(frame, Input{TeleportPressed: true})

	pos := c.Position()
	if pos.X != 0 || math.Abs(pos.Y-4) > 0.01 {
		t.Fatalf("position after teleport = %v, want about (0, 4)", pos)
	}
	if c.Velocity().X != 0 {
		t.Fatalf("vx = %v, want 0", c.Velocity().X)
	}
}

func TestWeaponFlag(t *testing.T) {
	anim := &labelRecorder{}
	c := newStanding(t, DefaultConfig(), room(math.Inf(1)), anim)

	c.Update(frame, Input{WeaponPressed: true})
	if c.Weapon() != locomotion.BlasterActive || c.AnimationLabel() != "Idle_Blaster" {
		t.Fatalf("weapon/label = %s/%s", c.Weapon(), c.AnimationLabel())
	}
	for i := 0; i < 30; i++ {
		c.Update(frame, Input{})
	}
	if c.Weapon() != locomotion.BlasterInactive || c.AnimationLabel() != "Idle" {
		t.Fatalf("weapon/label = %s/%s after expiry", c.Weapon(), c.AnimationLabel())
	}
	if want := []string{"Idle_Blaster", "Idle"}; !reflect.DeepEqual(anim.continued, want) {
		t.Fatalf("continued = %v, want %v", anim.continued, want)
	}
}

func TestApplyConfig(t *testing.T) {
	c := newStanding(t, DefaultConfig(), room(math.Inf(1)), nil)
	pos := c.Position()

	bad := DefaultConfig()
	bad.TimeToApex = 0
	if err := c.ApplyConfig(bad); !errors.Is(err, locomotion.ErrInvalidTimeToApex) {
		t.Fatalf("err = %v, want ErrInvalidTimeToApex", err)
	}

	cfg := DefaultConfig()
	cfg.JumpHeight = 1
	if err := c.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}
	if c.Jump().JumpVelocity != 4 {
		t.Fatalf("jump velocity = %v, want 4", c.Jump().JumpVelocity)
	}
	if c.Position() != pos {
		t.Fatalf("position moved from %v to %v", pos, c.Position())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "jump height", mutate: func(c *Config) { c.JumpHeight = -1 }, want: locomotion.ErrInvalidJumpHeight},
		{name: "skin", mutate: func(c *Config) { c.Controller.SkinWidth = 0 }, want: ErrInvalidConfig},
		{name: "fat skin", mutate: func(c *Config) { c.Controller.SkinWidth = 0.6 }, want: ErrInvalidConfig},
		{name: "climb angle", mutate: func(c *Config) { c.Controller.MaxClimbAngle = 90 }, want: ErrInvalidConfig},
		{name: "descend angle", mutate: func(c *Config) { c.Controller.MaxDescendAngle = 0 }, want: ErrInvalidConfig},
		{name: "size", mutate: func(c *Config) { c.Width = 0 }, want: ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
