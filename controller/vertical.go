package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
)

func (c *Controller2D) verticalCollisions(d cp.Vector) cp.Vector {
	skin := c.cfg.SkinWidth
	dirY := common.Sign(d.Y)
	rayLength := math.Abs(d.Y) + skin

	for i := 0; i < c.cfg.VerticalRayCount; i++ {
		origin := c.origins.TopLeft
		if dirY == -1 {
			origin = c.origins.BottomLeft
		}
		// probe from where the horizontal pass left the box
		origin.X += c.spacing.Vertical*float64(i) + d.X

		hit, ok := c.cast(origin, verticalDir(dirY), rayLength)
		if !ok {
			continue
		}

		d.Y = (hit.Distance - skin) * dirY
		rayLength = hit.Distance

		if c.data.ClimbingSlope {
			if tan := math.Tan(common.Deg2Rad(c.data.SlopeAngle)); tan != 0 {
				d.X = math.Abs(d.Y) / tan * common.Sign(d.X)
			}
		}

		if dirY == -1 {
			c.data.Below = true
		} else {
			c.data.Above = true
		}
	}

	if c.data.ClimbingSlope && d.X != 0 {
		// the climb may run into a slope of a different angle this frame
		dirX := common.Sign(d.X)
		rayLength = math.Abs(d.X) + skin

		origin := c.origins.BottomRight
		if dirX == -1 {
			origin = c.origins.BottomLeft
		}
		origin.Y += d.Y

		if hit, ok := c.cast(origin, horizontalDir(dirX), rayLength); ok {
			slopeAngle := common.AngleDeg(hit.Normal, common.Up)
			if slopeAngle != c.data.SlopeAngle {
				d.X = (hit.Distance - skin) * dirX
				c.data.SlopeAngle = slopeAngle
			}
		}
	}
	return d
}
