package character

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/locomotion"
)

// Input is the per-frame intent polled from a keyboard, pad or script.
type Input struct {
	// MoveX and MoveY are in [-1, 1].
	MoveX float64
	MoveY float64

	JumpPressed     bool
	WeaponPressed   bool
	TeleportPressed bool
}

// Character integrates velocity for one controller and drives its locomotion
// state machine.
type Character struct {
	cfg     Config
	jump    locomotion.JumpKinematics
	ctrl    *controller.Controller2D
	machine *locomotion.Machine
	weapon  locomotion.WeaponTimer

	velocity           cp.Vector
	velocityXSmoothing float64
	clock              time.Duration
}

// New places a character with its box centered on position.
func New(cfg Config, caster controller.Caster, position cp.Vector, anim locomotion.Animator) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("character: new: %w", err)
	}
	jump, err := locomotion.DeriveJump(cfg.JumpHeight, cfg.TimeToApex)
	if err != nil {
		return nil, fmt.Errorf("character: new: %w", err)
	}

	c := &Character{
		cfg:    cfg,
		jump:   jump,
		ctrl:   controller.New(cfg.Controller, caster, boxAt(position, cfg.Width, cfg.Height)),
		weapon: locomotion.WeaponTimer{Duration: cfg.WeaponActive},
	}
	c.machine = locomotion.NewMachine(anim, c.onEnter)
	return c, nil
}

func (c *Character) onEnter(s locomotion.State) {
	if s == locomotion.JumpUp {
		c.velocity.Y = c.jump.JumpVelocity
	}
}

// ApplyConfig swaps the tuning in place. Position, velocity and state are kept.
func (c *Character) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("character: apply config: %w", err)
	}
	jump, err := locomotion.DeriveJump(cfg.JumpHeight, cfg.TimeToApex)
	if err != nil {
		return fmt.Errorf("character: apply config: %w", err)
	}
	c.cfg = cfg
	c.jump = jump
	c.weapon.Duration = cfg.WeaponActive
	c.ctrl.SetConfig(cfg.Controller)
	c.ctrl.SetBounds(boxAt(c.Position(), cfg.Width, cfg.Height))
	return nil
}

// Update advances the character by dt seconds.
func (c *Character) Update(dt float64, in Input) {
	if dt <= 0 {
		return
	}
	c.clock += time.Duration(dt * float64(time.Second))

	if in.TeleportPressed {
		c.Teleport(c.cfg.Teleport)
	}
	if in.WeaponPressed {
		c.weapon.Activate(c.clock)
	}
	c.machine.SetWeapon(c.weapon.State(c.clock))

	if col := c.ctrl.Collisions(); col.Above || col.Below {
		c.velocity.Y = 0
	}

	c.machine.Step(locomotion.Inputs{
		Grounded:    c.IsGrounded(),
		Falling:     c.IsFalling(),
		MoveX:       in.MoveX,
		JumpPressed: in.JumpPressed,
	})

	accel := c.cfg.AccelTimeAirborne
	if c.ctrl.Collisions().Below {
		accel = c.cfg.AccelTimeGrounded
	}
	target := common.Clamp(in.MoveX, -1, 1) * c.cfg.MoveSpeed
	c.velocity.X, c.velocityXSmoothing = common.SmoothDamp(c.velocity.X, target, c.velocityXSmoothing, accel, dt)
	c.velocity.Y += c.jump.Gravity * dt

	c.ctrl.Move(c.velocity.Mult(dt))
}

// Teleport puts the box center at p and stops it.
func (c *Character) Teleport(p cp.Vector) {
	c.ctrl.SetBounds(boxAt(p, c.cfg.Width, c.cfg.Height))
	c.velocity = cp.Vector{}
	c.velocityXSmoothing = 0
}

func (c *Character) IsGrounded() bool {
	return c.ctrl.Collisions().Below
}

func (c *Character) IsFalling() bool {
	return !c.ctrl.Collisions().Below && c.velocity.Y < 0
}

func (c *Character) Position() cp.Vector {
	return c.ctrl.Bounds().Center()
}

func (c *Character) Bounds() cp.BB {
	return c.ctrl.Bounds()
}

func (c *Character) Velocity() cp.Vector {
	return c.velocity
}

func (c *Character) Collisions() controller.CollisionData {
	return c.ctrl.Collisions()
}

func (c *Character) State() locomotion.State {
	return c.machine.State()
}

func (c *Character) Facing() locomotion.Facing {
	return c.machine.Facing()
}

func (c *Character) Weapon() locomotion.WeaponState {
	return c.machine.Weapon()
}

func (c *Character) AnimationLabel() string {
	return c.machine.AnimationLabel()
}

func (c *Character) Jump() locomotion.JumpKinematics {
	return c.jump
}

func (c *Character) Config() Config {
	return c.cfg
}

// Controller exposes the resolver, mostly for debug drawing.
func (c *Character) Controller() *controller.Controller2D {
	return c.ctrl
}

// Machine exposes the state machine so hosts can attach a logger.
func (c *Character) Machine() *locomotion.Machine {
	return c.machine
}

// Elapsed is the simulated time so far.
func (c *Character) Elapsed() time.Duration {
	return c.clock
}

func (c *Character) String() string {
	return fmt.Sprintf("state=%s facing=%s weapon=%s pos=(%.3f, %.3f) vel=(%.3f, %.3f) %s",
		c.State(), c.Facing(), c.Weapon(), c.Position().X, c.Position().Y, c.velocity.X, c.velocity.Y, c.Collisions())
}
