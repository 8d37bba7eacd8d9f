package locomotion

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidJumpHeight = errors.New("locomotion: jump height must be positive")
	ErrInvalidTimeToApex = errors.New("locomotion: time to apex must be positive")
)

// JumpKinematics are the constant gravity and take-off speed that reach a
// given height in a given time.
type JumpKinematics struct {
	Gravity      float64
	JumpVelocity float64
}

// DeriveJump solves h = v·t + g·t²/2 with v + g·t = 0 for g and v.
func DeriveJump(height, timeToApex float64) (JumpKinematics, error) {
	if !(height > 0) || math.IsInf(height, 0) {
		return JumpKinematics{}, fmt.Errorf("%w: %v", ErrInvalidJumpHeight, height)
	}
	if !(timeToApex > 0) || math.IsInf(timeToApex, 0) {
		return JumpKinematics{}, fmt.Errorf("%w: %v", ErrInvalidTimeToApex, timeToApex)
	}
	gravity := -(2 * height) / (timeToApex * timeToApex)
	return JumpKinematics{
		Gravity:      gravity,
		JumpVelocity: math.Abs(gravity) * timeToApex,
	}, nil
}

// Apex is the height reached from a standing jump.
func (j JumpKinematics) Apex() float64 {
	if j.Gravity == 0 {
		return math.Inf(1)
	}
	return j.JumpVelocity * j.JumpVelocity / (-2 * j.Gravity)
}
