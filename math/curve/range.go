// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

// Range is a one-dimensional inclusive range [Min, Max].
type Range struct {
	Min, Max float64
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float64) float64 { return Clamp(v, r.Min, r.Max) }

// Constraint adjusts a proposed new value given the current old value,
// returning the value that should actually be applied. A nil Constraint
// applies no restriction.
type Constraint func(old, new float64) float64

// Apply runs c against old/new, passing new through unchanged when c is nil.
func (c Constraint) Apply(old, new float64) float64 {
	if c == nil {
		return new
	}
	return c(old, new)
}

// RangeConstraint returns a Constraint that clamps any new value to [min, max].
func RangeConstraint(min, max float64) Constraint {
	return func(_, new float64) float64 { return Clamp(new, min, max) }
}

// Point2 is a 2D point used by PointConstraint, kept distinct from Point
// (an interpolator x/y sample) since the two are never interchangeable.
type Point2 struct {
	X, Y float64
}

// PointConstraint operates on 2D points, e.g. the RTS camera's XY target.
type PointConstraint func(old, new Point2) Point2

// Apply runs c against old/new, passing new through unchanged when c is nil.
func (c PointConstraint) Apply(old, new Point2) Point2 {
	if c == nil {
		return new
	}
	return c(old, new)
}

// RectConstraint returns a PointConstraint that clamps a 2D point to the
// rectangle [min, max].
func RectConstraint(min, max Point2) PointConstraint {
	return func(_, new Point2) Point2 {
		return Point2{
			X: Clamp(new.X, min.X, max.X),
			Y: Clamp(new.Y, min.Y, max.Y),
		}
	}
}
