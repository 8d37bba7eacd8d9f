package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jank/common"
)

// climbSlope redirects the horizontal travel of d up a slope of the given
// angle, keeping its length. An upward displacement larger than the climb
// (a jump) is left alone.
func (c *Controller2D) climbSlope(d cp.Vector, slopeAngle float64) cp.Vector {
	rad := common.Deg2Rad(slopeAngle)
	moveDistance := math.Abs(d.X)
	climbY := math.Sin(rad) * moveDistance

	if d.Y > climbY {
		return d
	}

	c.data.Below = true
	c.data.ClimbingSlope = true
	c.data.SlopeAngle = slopeAngle
	return cp.Vector{
		X: math.Cos(rad) * moveDistance * common.Sign(d.X),
		Y: climbY,
	}
}

// descendSlope keeps the box glued to a slope falling away in the direction of
// travel. The probe runs straight down from the trailing bottom corner.
func (c *Controller2D) descendSlope(d cp.Vector) cp.Vector {
	if d.X == 0 {
		return d
	}

	dirX := common.Sign(d.X)
	origin := c.origins.BottomLeft
	if dirX == -1 {
		origin = c.origins.BottomRight
	}

	hit, ok := c.cast(origin, dirDown, math.Inf(1))
	if !ok {
		return d
	}

	slopeAngle := common.AngleDeg(hit.Normal, common.Up)
	if slopeAngle == 0 || slopeAngle > c.cfg.MaxDescendAngle {
		return d
	}
	if common.Sign(hit.Normal.X) != dirX {
		return d
	}

	rad := common.Deg2Rad(slopeAngle)
	moveDistance := math.Abs(d.X)
	if hit.Distance-c.cfg.SkinWidth > math.Tan(rad)*moveDistance {
		return d
	}

	descendY := math.Sin(rad) * moveDistance
	d.X = math.Cos(rad) * moveDistance * dirX
	d.Y -= descendY

	c.data.SlopeAngle = slopeAngle
	c.data.DescendingSlope = true
	c.data.Below = true
	return d
}
