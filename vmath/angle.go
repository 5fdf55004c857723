package vmath

import "math"

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle folds a after a single positive step back into [0, 2π)
// Single subtraction, valid only while the step stays below one turn
func WrapAngle(a float64) float64 {
	if a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Polar returns the cartesian point at radius r and angle a around the origin
func Polar(r, a float64) (x, y float64) {
	return r * math.Cos(a), r * math.Sin(a)
}
