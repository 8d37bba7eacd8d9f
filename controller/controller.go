package controller

import "github.com/jakecoffman/cp"

// Controller2D moves an axis-aligned box through the environment without
// penetrating it. It keeps no velocity; callers pass the desired displacement
// for the frame and get back the corrected one.
type Controller2D struct {
	cfg    Config
	caster Caster

	bounds  cp.BB
	origins Origins
	spacing Spacing
	data    CollisionData

	// RecordRays keeps the probes of the last resolve for Rays.
	RecordRays bool
	rays       []Ray
}

func New(cfg Config, caster Caster, bounds cp.BB) *Controller2D {
	c := &Controller2D{caster: caster, bounds: bounds}
	c.SetConfig(cfg)
	return c
}

func (c *Controller2D) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning and recomputes the ray spacing.
func (c *Controller2D) SetConfig(cfg Config) {
	c.cfg = cfg.normalized()
	c.updateSpacing()
}

// SetRayCounts changes the number of probes per axis. Counts below two are raised to two.
func (c *Controller2D) SetRayCounts(horizontal, vertical int) {
	c.cfg.HorizontalRayCount = clampRayCount(horizontal)
	c.cfg.VerticalRayCount = clampRayCount(vertical)
	c.updateSpacing()
}

func (c *Controller2D) Bounds() cp.BB {
	return c.bounds
}

// SetBounds places the box. Spacing follows the new size.
func (c *Controller2D) SetBounds(bb cp.BB) {
	c.bounds = bb
	c.updateSpacing()
}

func (c *Controller2D) Origins() Origins {
	return c.origins
}

func (c *Controller2D) Spacing() Spacing {
	return c.spacing
}

// Collisions returns the contacts of the last resolve call.
func (c *Controller2D) Collisions() CollisionData {
	return c.data
}

// Rays returns the probes cast by the last resolve when RecordRays is set.
func (c *Controller2D) Rays() []Ray {
	return c.rays
}

// Move resolves d and translates the bounds by the result.
func (c *Controller2D) Move(d cp.Vector) cp.Vector {
	d, _ = c.Resolve(d)
	c.bounds = cp.BB{L: c.bounds.L + d.X, B: c.bounds.B + d.Y, R: c.bounds.R + d.X, T: c.bounds.T + d.Y}
	return d
}

// Resolve returns the largest part of d the box can travel this frame, adjusted
// for slopes, together with the contacts found on the way. The bounds are not moved.
func (c *Controller2D) Resolve(d cp.Vector) (cp.Vector, CollisionData) {
	c.origins = ComputeOrigins(c.bounds, c.cfg.SkinWidth)
	c.data.reset()
	c.data.VelocityBeforeSlopeAdjustment = d
	c.rays = c.rays[:0]

	if d.Y < 0 {
		d = c.descendSlope(d)
	}
	if d.X != 0 {
		d = c.horizontalCollisions(d)
	}
	if d.Y != 0 {
		d = c.verticalCollisions(d)
	}
	return d, c.data
}

func (c *Controller2D) updateSpacing() {
	c.spacing = ComputeSpacing(c.bounds, c.cfg.SkinWidth, c.cfg.HorizontalRayCount, c.cfg.VerticalRayCount)
}

func (c *Controller2D) cast(origin, dir cp.Vector, length float64) (Hit, bool) {
	var (
		hit Hit
		ok  bool
	)
	if c.caster != nil {
		hit, ok = c.caster.Cast(origin, dir, length, c.cfg.CollisionMask)
	}
	if c.RecordRays {
		r := Ray{Origin: origin, Dir: dir, Length: length, Hit: ok}
		if ok {
			r.Length = hit.Distance
		}
		c.rays = append(c.rays, r)
	}
	return hit, ok
}
