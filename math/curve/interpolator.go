// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"fmt"
	"math"
	"sort"
)

// Interpolator samples a piecewise function defined over a set of (x, y)
// control points with strictly increasing x, and supports finding the
// smallest x whose sample is at least a target y.
type Interpolator interface {
	// Interpolate samples the function at x, clamping x to the control
	// point range first.
	Interpolate(x float64) float64

	// LowerBound returns the smallest x whose Interpolate(x) >= y, if one
	// exists within the control point range. The Linear, Cosine and Cubic
	// implementations return the first point, scanning segments left to
	// right, where a segment's curve equals y: this is that smallest x only
	// for curves that do not decrease, and a y below the first control
	// point's value reports false.
	LowerBound(y float64) (x float64, ok bool)
}

func checkSorted(points []Point) error {
	if len(points) == 0 {
		return fmt.Errorf("curve: no control points")
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return fmt.Errorf("curve: control points must have strictly increasing x")
		}
	}
	return nil
}

// findIndex returns the index of the last point whose X is <= x. x is
// assumed to already be clamped to [points[0].X, points[len-1].X].
func findIndex(points []Point, x float64) int {
	i := sort.Search(len(points), func(i int) bool { return points[i].X > x })
	if i == 0 {
		i = 1
	}
	return i - 1
}

// StepInterpolator holds the last control point at or before x.
type StepInterpolator struct{ points []Point }

// NewStepInterpolator constructs a StepInterpolator over points, which must
// have strictly increasing x values.
func NewStepInterpolator(points []Point) (*StepInterpolator, error) {
	if err := checkSorted(points); err != nil {
		return nil, err
	}
	return &StepInterpolator{points: points}, nil
}

func (s *StepInterpolator) Interpolate(x float64) float64 {
	x = Clamp(x, s.points[0].X, s.points[len(s.points)-1].X)
	return s.points[findIndex(s.points, x)].Y
}

func (s *StepInterpolator) LowerBound(y float64) (float64, bool) {
	for _, p := range s.points {
		if p.Y >= y {
			return p.X, true
		}
	}
	return 0, false
}

// LinearInterpolator linearly interpolates between consecutive control points.
type LinearInterpolator struct{ points []Point }

// NewLinearInterpolator constructs a LinearInterpolator over points, which
// must have strictly increasing x values.
func NewLinearInterpolator(points []Point) (*LinearInterpolator, error) {
	if err := checkSorted(points); err != nil {
		return nil, err
	}
	return &LinearInterpolator{points: points}, nil
}

func (l *LinearInterpolator) Interpolate(x float64) float64 {
	x = Clamp(x, l.points[0].X, l.points[len(l.points)-1].X)
	i := findIndex(l.points, x)
	x -= l.points[i].X
	if i == len(l.points)-1 || isNear(x, 0) {
		return l.points[i].Y
	}
	dx := l.points[i+1].X - l.points[i].X
	dy := l.points[i+1].Y - l.points[i].Y
	return l.points[i].Y + dy*(x/dx)
}

func (l *LinearInterpolator) LowerBound(y float64) (float64, bool) {
	for i := 0; i < len(l.points)-1; i++ {
		dx := l.points[i+1].X - l.points[i].X
		dy := l.points[i+1].Y - l.points[i].Y
		x := (y - l.points[i].Y) / dy
		if x >= 0 && x <= 1 {
			return l.points[i].X + x*dx, true
		}
	}
	return 0, false
}

// CosineInterpolator eases between consecutive control points using a
// cosine-weighted blend.
type CosineInterpolator struct{ points []Point }

// NewCosineInterpolator constructs a CosineInterpolator over points, which
// must have strictly increasing x values.
func NewCosineInterpolator(points []Point) (*CosineInterpolator, error) {
	if err := checkSorted(points); err != nil {
		return nil, err
	}
	return &CosineInterpolator{points: points}, nil
}

func (c *CosineInterpolator) Interpolate(x float64) float64 {
	x = Clamp(x, c.points[0].X, c.points[len(c.points)-1].X)
	i := findIndex(c.points, x)
	x -= c.points[i].X
	if i == len(c.points)-1 || isNear(x, 0) {
		return c.points[i].Y
	}
	dx := c.points[i+1].X - c.points[i].X
	dy := c.points[i+1].Y - c.points[i].Y
	x = x / dx
	x = (1 - math.Cos(x*math.Pi)) / 2
	return c.points[i].Y + dy*x
}

func (c *CosineInterpolator) LowerBound(y float64) (float64, bool) {
	for i := 0; i < len(c.points)-1; i++ {
		dx := c.points[i+1].X - c.points[i].X
		dy := c.points[i+1].Y - c.points[i].Y
		x := math.Acos(1-2*(y-c.points[i].Y)/dy) / math.Pi
		if x >= 0 && x <= 1 {
			return c.points[i].X + x*dx, true
		}
	}
	return 0, false
}

// cubicSegment is one natural-cubic-spline piece, valid over [minX, nextMinX].
type cubicSegment struct {
	poly Polynomial
	minX float64
}

// CubicInterpolator is a C2-continuous natural cubic spline through its
// control points, with zero curvature at both endpoints.
type CubicInterpolator struct {
	points   []Point
	segments []cubicSegment
}

// NewCubicInterpolator constructs a CubicInterpolator over points, which
// must have strictly increasing x values.
func NewCubicInterpolator(points []Point) (*CubicInterpolator, error) {
	if err := checkSorted(points); err != nil {
		return nil, err
	}
	return &CubicInterpolator{points: points, segments: cubicSegments(points)}, nil
}

// cubicSegments solves the tridiagonal natural-spline system via Thomas'
// algorithm for the second-derivative coefficients, then derives the
// first- and third-derivative coefficients of each segment's polynomial.
func cubicSegments(points []Point) []cubicSegment {
	if len(points) == 1 {
		return []cubicSegment{{poly: Polynomial{Coefficients: []float64{points[0].Y, 0, 0, 0}}, minX: 0}}
	}
	if len(points) == 2 {
		b := (points[1].Y - points[0].Y) / (points[1].X - points[0].X)
		return []cubicSegment{{poly: Polynomial{Coefficients: []float64{points[0].Y, b, 0, 0}}, minX: points[0].X}}
	}

	n := len(points)
	superd := make([]float64, n-1)
	result := make([]float64, n)

	superd[0], result[0] = 0, 0
	for i := 1; i < len(superd); i++ {
		alpha := 3*(points[i+1].Y-points[i].Y)/(points[i+1].X-points[i].X) -
			3*(points[i].Y-points[i-1].Y)/(points[i].X-points[i-1].X)
		tmp := 2*(points[i+1].X-points[i-1].X) - superd[i-1]*(points[i].X-points[i-1].X)

		superd[i] = (points[i+1].X - points[i].X) / tmp
		result[i] = (alpha - (points[i].X-points[i-1].X)*result[i-1]) / tmp
	}

	result[n-1] = 0
	for i := n - 1; i > 0; i-- {
		result[i-1] -= superd[i-1] * result[i]
	}

	segments := make([]cubicSegment, n-1)
	for i := range segments {
		h := points[i+1].X - points[i].X
		a := points[i].Y
		b := (points[i+1].Y-points[i].Y)/h - (result[i+1]+2*result[i])*h/3
		d := (result[i+1] - result[i]) / (3 * h)
		segments[i] = cubicSegment{poly: Polynomial{Coefficients: []float64{a, b, result[i], d}}, minX: points[i].X}
	}
	return segments
}

func (c *CubicInterpolator) Interpolate(x float64) float64 {
	x = Clamp(x, c.points[0].X, c.points[len(c.points)-1].X)
	i := findIndex(c.points, x)
	if i == len(c.points)-1 || isNear(x, c.points[i].X) {
		return c.points[i].Y
	}
	seg := c.segments[i]
	return seg.poly.Sample(x - seg.minX)
}

func (c *CubicInterpolator) LowerBound(y float64) (float64, bool) {
	for i, seg := range c.segments {
		for _, x := range seg.poly.Solve(y) {
			x += seg.minX
			if x >= c.points[i].X && x <= c.points[i+1].X {
				return x, true
			}
		}
	}
	return 0, false
}
