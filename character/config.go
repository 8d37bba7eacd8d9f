package character

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/locomotion"
)

var ErrInvalidConfig = errors.New("character: invalid config")

// Config is the designer-facing tuning of a character. Distances are in world
// units and times in seconds unless typed as durations.
type Config struct {
	Controller controller.Config

	Width  float64
	Height float64

	JumpHeight float64
	TimeToApex float64
	MoveSpeed  float64

	AccelTimeGrounded float64
	AccelTimeAirborne float64

	WeaponActive time.Duration
	// Teleport is where the teleport key puts the box center.
	Teleport cp.Vector
}

func DefaultConfig() Config {
	return Config{
		Controller:   controller.DefaultConfig(),
		Width:        1,
		Height:       2,
		JumpHeight:   4,
		TimeToApex:   0.5,
		MoveSpeed:    3,
		WeaponActive: locomotion.DefaultWeaponActive,
		Teleport:     cp.Vector{X: 0, Y: 4},
	}
}

// Validate reports the first setting that cannot produce a working character.
func (c Config) Validate() error {
	if _, err := locomotion.DeriveJump(c.JumpHeight, c.TimeToApex); err != nil {
		return err
	}
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case !(c.Controller.SkinWidth > 0):
		return fmt.Errorf("%w: skin width %v", ErrInvalidConfig, c.Controller.SkinWidth)
	case 2*c.Controller.SkinWidth >= c.Width || 2*c.Controller.SkinWidth >= c.Height:
		return fmt.Errorf("%w: skin width %v does not fit a %vx%v box", ErrInvalidConfig, c.Controller.SkinWidth, c.Width, c.Height)
	case !validAngle(c.Controller.MaxClimbAngle):
		return fmt.Errorf("%w: max climb angle %v", ErrInvalidConfig, c.Controller.MaxClimbAngle)
	case !validAngle(c.Controller.MaxDescendAngle):
		return fmt.Errorf("%w: max descend angle %v", ErrInvalidConfig, c.Controller.MaxDescendAngle)
	case c.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v", ErrInvalidConfig, c.MoveSpeed)
	case c.AccelTimeGrounded < 0 || c.AccelTimeAirborne < 0:
		return fmt.Errorf("%w: acceleration times %v/%v", ErrInvalidConfig, c.AccelTimeGrounded, c.AccelTimeAirborne)
	case c.WeaponActive < 0:
		return fmt.Errorf("%w: weapon duration %v", ErrInvalidConfig, c.WeaponActive)
	}
	return nil
}

func validAngle(deg float64) bool {
	return deg > 0 && deg < 90
}

func boxAt(center cp.Vector, w, h float64) cp.BB {
	return cp.NewBBForExtents(center, w/2, h/2)
}
