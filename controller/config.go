package controller

const (
	DefaultSkinWidth       = 0.015
	DefaultRayCount        = 4
	DefaultMaxClimbAngle   = 80.0
	DefaultMaxDescendAngle = 75.0

	// AllLayers matches every collision layer.
	AllLayers uint = ^uint(0)

	minRayCount = 2
)

// Config holds the resolver tuning. Angles are in degrees.
type Config struct {
	SkinWidth          float64
	HorizontalRayCount int
	VerticalRayCount   int
	MaxClimbAngle      float64
	MaxDescendAngle    float64
	// CollisionMask selects which environment layers the probes can hit.
	CollisionMask uint
}

func DefaultConfig() Config {
	return Config{
		SkinWidth:          DefaultSkinWidth,
		HorizontalRayCount: DefaultRayCount,
		VerticalRayCount:   DefaultRayCount,
		MaxClimbAngle:      DefaultMaxClimbAngle,
		MaxDescendAngle:    DefaultMaxDescendAngle,
		CollisionMask:      AllLayers,
	}
}

func (c Config) normalized() Config {
	c.HorizontalRayCount = clampRayCount(c.HorizontalRayCount)
	c.VerticalRayCount = clampRayCount(c.VerticalRayCount)
	if c.SkinWidth < 0 {
		c.SkinWidth = 0
	}
	return c
}

func clampRayCount(n int) int {
	if n < minRayCount {
		return minRayCount
	}
	return n
}
