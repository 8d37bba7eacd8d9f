package controller

import "github.com/jakecoffman/cp"

// Hit is the nearest surface reached by a probe ray.
type Hit struct {
	Distance float64
	Normal   cp.Vector
}

// Caster answers ray queries against the environment. dir is a unit vector and
// maxDist may be +Inf for an unbounded ray. Only surfaces on a layer in mask
// are reported.
type Caster interface {
	Cast(origin, dir cp.Vector, maxDist float64, mask uint) (Hit, bool)
}

// CasterFunc adapts a plain function to the Caster interface.
type CasterFunc func(origin, dir cp.Vector, maxDist float64, mask uint) (Hit, bool)

func (f CasterFunc) Cast(origin, dir cp.Vector, maxDist float64, mask uint) (Hit, bool) {
	return f(origin, dir, maxDist, mask)
}

// Ray is a probe cast during the last resolve, kept for debug drawing.
type Ray struct {
	Origin cp.Vector
	Dir    cp.Vector
	Length float64
	Hit    bool
}

var (
	dirUp    = cp.Vector{X: 0, Y: 1}
	dirDown  = cp.Vector{X: 0, Y: -1}
	dirLeft  = cp.Vector{X: -1, Y: 0}
	dirRight = cp.Vector{X: 1, Y: 0}
)

func horizontalDir(sign float64) cp.Vector {
	if sign < 0 {
		return dirLeft
	}
	return dirRight
}

func verticalDir(sign float64) cp.Vector {
	if sign < 0 {
		return dirDown
	}
	return dirUp
}
