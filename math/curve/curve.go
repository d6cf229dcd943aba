// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package curve provides the scalar smoothing and interpolation primitives
// used to drive tactical-camera properties and UI animations: ranges and
// constraints, root-solving polynomials, piecewise interpolators, and a
// critically-damped smoothing filter.
//
// Package curve is provided as part of the tacticus 3D engine.
package curve

import "math"

// Epsilon is used to distinguish when a float is close enough to a number,
// matching lin.Epsilon's role for the higher precision values used here.
const Epsilon = 0.000001

// isNear reports whether a and b are equal within Epsilon.
func isNear(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Clamp restricts v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp linearly interpolates between a and b by fraction t.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Point is an (x, y) sample used by Interpolators and Polynomial solving.
type Point struct {
	X, Y float64
}
