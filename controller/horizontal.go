package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
)

func (c *Controller2D) horizontalCollisions(d cp.Vector) cp.Vector {
	skin := c.cfg.SkinWidth
	dirX := common.Sign(d.X)
	rayLength := math.Abs(d.X) + skin

	for i := 0; i < c.cfg.HorizontalRayCount; i++ {
		origin := c.origins.BottomRight
		if dirX == -1 {
			origin = c.origins.BottomLeft
		}
		origin.Y += c.spacing.Horizontal * float64(i)

		hit, ok := c.cast(origin, horizontalDir(dirX), rayLength)
		if !ok {
			continue
		}

		slopeAngle := common.AngleDeg(hit.Normal, common.Up)

		// only the lowest ray may start a climb
		if i == 0 && slopeAngle <= c.cfg.MaxClimbAngle {
			if c.data.DescendingSlope {
				// valley: drop the descent and climb from the raw displacement
				c.data.DescendingSlope = false
				d = c.data.VelocityBeforeSlopeAdjustment
			}

			distanceToSlopeStart := 0.0
			if slopeAngle != c.data.SlopeAngleOld {
				distanceToSlopeStart = hit.Distance - skin
				d.X -= distanceToSlopeStart * dirX
			}
			d = c.climbSlope(d, slopeAngle)
			d.X += distanceToSlopeStart * dirX
		}

		if !c.data.ClimbingSlope || slopeAngle > c.cfg.MaxClimbAngle {
			d.X = (hit.Distance - skin) * dirX
			rayLength = hit.Distance

			if c.data.ClimbingSlope {
				d.Y = math.Tan(common.Deg2Rad(c.data.SlopeAngle)) * math.Abs(d.X)
			}

			c.data.Left = dirX == -1
			c.data.Right = dirX == 1
		}
	}
	return d
}
