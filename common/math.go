package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Up is the world up direction. World space is y-up.
var Up = cp.Vector{X: 0, Y: 1}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleDeg returns the unsigned angle between a and b in degrees, in [0, 180].
// Degenerate vectors yield 0.
func AngleDeg(a, b cp.Vector) float64 {
	denom := a.Length() * b.Length()
	if denom < 1e-15 {
		return 0
	}
	cos := Clamp(a.Dot(b)/denom, -1, 1)
	return Rad2Deg(math.Acos(cos))
}

// SmoothDamp moves current toward target with a critically damped spring and
// returns the new value and velocity. smoothTime is roughly the time needed to
// reach the target; a non-positive smoothTime snaps to the target.
func SmoothDamp(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	if smoothTime <= 0 || dt <= 0 {
		if smoothTime <= 0 {
			return target, 0
		}
		return current, velocity
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot past the target
	if (target-current > 0) == (out > target) {
		out = target
		velocity = (out - target) / dt
	}
	return out, velocity
}
