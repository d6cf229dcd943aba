// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"math"
	"sort"
)

// Polynomial is an N-degree polynomial f(x) = c0 + c1*x + c2*x^2 + ... + cN*x^N,
// stored as its coefficients in ascending degree order.
type Polynomial struct {
	Coefficients []float64
}

// Sample evaluates the polynomial at x using Horner's rule.
func (p Polynomial) Sample(x float64) float64 {
	if len(p.Coefficients) == 0 {
		return 0
	}
	y := p.Coefficients[len(p.Coefficients)-1]
	for i := len(p.Coefficients) - 2; i >= 0; i-- {
		y = p.Coefficients[i] + x*y
	}
	return y
}

// Derivative returns the derivative polynomial. The derivative of a
// constant is the zero constant polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coefficients) <= 1 {
		return Polynomial{Coefficients: []float64{0}}
	}
	d := make([]float64, len(p.Coefficients)-1)
	for i := 1; i < len(p.Coefficients); i++ {
		d[i-1] = float64(i) * p.Coefficients[i]
	}
	return Polynomial{Coefficients: d}
}

// Solve returns every real x (sorted ascending) such that Sample(x) ≈ y.
// Only supports polynomials up to degree 4 (Abel-Ruffini); by the time a
// degree-5-or-higher Polynomial reaches here the leading coefficients not
// already handled below are simply ignored, same as the reference
// implementation's degree detection.
func (p Polynomial) Solve(y float64) []float64 {
	c := p.Coefficients
	degree := len(c) - 1
	for degree >= 1 && isNear(c[degree], 0) {
		degree--
	}
	switch {
	case degree >= 4:
		return solveQuartic(y, c[0], c[1], c[2], c[3], c[4])
	case degree == 3:
		return solveCubic(y, c[0], c[1], c[2], c[3])
	case degree == 2:
		return solveQuadratic(y, c[0], c[1], c[2])
	case degree == 1:
		return []float64{(y - c[0]) / c[1]}
	default:
		if len(c) == 0 {
			return nil
		}
		if isNear(y, c[0]) {
			return []float64{0}
		}
		return nil
	}
}

func solveQuadratic(y, c0, c1, c2 float64) []float64 {
	a, b, c := c2, c1, c0-y
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sqrtD := math.Sqrt(d)
	x1, x2 := (-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return []float64{x1, x2}
}

// solveCubic applies Cardano's formula to c0 + c1*x + c2*x^2 + c3*x^3 = y.
func solveCubic(y, c0, c1, c2, c3 float64) []float64 {
	a0 := (c0 - y) / c3
	a1 := c1 / c3
	a2 := c2 / c3

	Q := (3*a1 - a2*a2) / 9
	R := (9*a2*a1 - 27*a0 - 2*a2*a2*a2) / 54
	D := Q*Q*Q + R*R

	if isNear(D, 0) {
		S := math.Cbrt(R)
		x1 := 2*S - a2/3
		x2 := -S - a2/3
		if isNear(x1, x2) {
			return []float64{x1}
		}
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return []float64{x1, x2}
	}

	if D > 0 {
		sqrtD := math.Sqrt(D)
		S := math.Cbrt(R + sqrtD)
		T := math.Cbrt(R - sqrtD)
		return []float64{S + T - a2/3}
	}

	// D < 0: three distinct real roots via the trigonometric form.
	theta := math.Acos(R / math.Sqrt(-Q*Q*Q))
	sqrtQ := 2 * math.Sqrt(-Q)

	xs := []float64{
		sqrtQ*math.Cos(theta/3) - a2/3,
		sqrtQ*math.Cos((theta+2*math.Pi)/3) - a2/3,
		sqrtQ*math.Cos((theta+4*math.Pi)/3) - a2/3,
	}
	sort.Float64s(xs)
	return xs
}

// solveQuartic applies Ferrari's method via the resolvent cubic to
// c0 + c1*x + c2*x^2 + c3*x^3 + c4*x^4 = y.
func solveQuartic(y, c0, c1, c2, c3, c4 float64) []float64 {
	b := c3 / c4
	c := c2 / c4
	d := c1 / c4
	e := (c0 - y) / c4

	zs := solveCubic(0, 4*c*e-d*d-b*b*e, d*b-4*e, -c, 1)
	if len(zs) == 0 {
		return nil
	}

	// Prefer the largest non-zero real root of the resolvent for precision.
	z, found := 0.0, false
	for i := len(zs) - 1; i >= 0; i-- {
		if !isNear(zs[i], 0) {
			z, found = zs[i], true
			break
		}
	}
	if !found {
		return []float64{0}
	}

	R := math.Sqrt(b*b/4-c+z) / 2
	m := b*b*3/16 - R*R - c/2
	var n float64
	if isNear(R, 0) {
		n = math.Sqrt(z*z/4 - e)
	} else {
		n = (b*c/8 - d/4 - b*b*b/32) / R
	}

	var xs []float64
	if m+n >= 0 {
		D := math.Sqrt(m + n)
		xs = append(xs, b/-4+R+D)
		if !isNear(D, 0) {
			xs = append(xs, b/-4+R-D)
		}
	}
	if m >= n {
		E := math.Sqrt(m - n)
		xs = append(xs, b/-4-R+E)
		if !isNear(E, 0) {
			xs = append(xs, b/-4-R-E)
		}
	}
	sort.Float64s(xs)
	return xs
}
