package controller

import "github.com/jakecoffman/cp"

// Origins are the corners of the bounding box after shrinking it by the skin width.
type Origins struct {
	TopLeft     cp.Vector
	TopRight    cp.Vector
	BottomLeft  cp.Vector
	BottomRight cp.Vector
}

// Spacing is the distance between adjacent probe rays on each axis.
// Horizontal rays are stacked along the height, vertical rays along the width.
type Spacing struct {
	Horizontal float64
	Vertical   float64
}

// Shrink insets bb by skin on every side.
func Shrink(bb cp.BB, skin float64) cp.BB {
	return cp.BB{L: bb.L + skin, B: bb.B + skin, R: bb.R - skin, T: bb.T - skin}
}

func ComputeOrigins(bb cp.BB, skin float64) Origins {
	s := Shrink(bb, skin)
	return Origins{
		TopLeft:     cp.Vector{X: s.L, Y: s.T},
		TopRight:    cp.Vector{X: s.R, Y: s.T},
		BottomLeft:  cp.Vector{X: s.L, Y: s.B},
		BottomRight: cp.Vector{X: s.R, Y: s.B},
	}
}

// ComputeSpacing spreads the ray counts evenly over the shrunk box. Counts
// below two are raised to two.
func ComputeSpacing(bb cp.BB, skin float64, horizontalCount, verticalCount int) Spacing {
	s := Shrink(bb, skin)
	horizontalCount = clampRayCount(horizontalCount)
	verticalCount = clampRayCount(verticalCount)
	return Spacing{
		Horizontal: (s.T - s.B) / float64(horizontalCount-1),
		Vertical:   (s.R - s.L) / float64(verticalCount-1),
	}
}
