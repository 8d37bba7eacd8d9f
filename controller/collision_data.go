package controller

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// CollisionData describes the contacts found by the last resolve call.
// At most one of ClimbingSlope and DescendingSlope is set. SlopeAngle is only
// meaningful while one of them is.
type CollisionData struct {
	Above, Below bool
	Left, Right  bool

	ClimbingSlope   bool
	DescendingSlope bool
	SlopeAngle      float64
	SlopeAngleOld   float64

	VelocityBeforeSlopeAdjustment cp.Vector
}

// reset clears the per-call flags and carries the slope angle into SlopeAngleOld.
func (c *CollisionData) reset() {
	c.Above, c.Below = false, false
	c.Left, c.Right = false, false
	c.ClimbingSlope = false
	c.DescendingSlope = false
	c.SlopeAngleOld = c.SlopeAngle
	c.SlopeAngle = 0
}

func (c CollisionData) String() string {
	return fmt.Sprintf("above=%t below=%t left=%t right=%t climbing=%t descending=%t slope=%.2f slopeOld=%.2f",
		c.Above, c.Below, c.Left, c.Right, c.ClimbingSlope, c.DescendingSlope, c.SlopeAngle, c.SlopeAngleOld)
}
