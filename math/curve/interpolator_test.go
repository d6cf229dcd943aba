// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"math"
	"testing"
)

func TestStepInterpolator(t *testing.T) {
	s, err := NewStepInterpolator([]Point{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Interpolate(0.5); got != 1 {
		t.Errorf("Interpolate(0.5) = %v, want 1", got)
	}
	if got := s.Interpolate(5); got != 3 {
		t.Errorf("Interpolate(5) (clamped) = %v, want 3", got)
	}
}

func TestLinearInterpolatorMidpoint(t *testing.T) {
	l, err := NewLinearInterpolator([]Point{{0, 0}, {10, 100}})
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Interpolate(5); math.Abs(got-50) > 1e-9 {
		t.Errorf("Interpolate(5) = %v, want 50", got)
	}
}

func TestLinearInterpolatorLowerBound(t *testing.T) {
	l, _ := NewLinearInterpolator([]Point{{0, 0}, {10, 100}})
	x, ok := l.LowerBound(25)
	if !ok || math.Abs(x-2.5) > 1e-9 {
		t.Errorf("LowerBound(25) = %v,%v want 2.5,true", x, ok)
	}
}

func TestCosineInterpolatorEndpoints(t *testing.T) {
	c, err := NewCosineInterpolator([]Point{{0, 0}, {1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Interpolate(0); math.Abs(got) > 1e-9 {
		t.Errorf("Interpolate(0) = %v, want 0", got)
	}
	if got := c.Interpolate(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("Interpolate(1) = %v, want 1", got)
	}
}

func TestCubicInterpolatorPassesThroughControlPoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 2}, {2, 1}, {3, 4}}
	c, err := NewCubicInterpolator(pts)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pts {
		got := c.Interpolate(p.X)
		if math.Abs(got-p.Y) > 1e-6 {
			t.Errorf("Interpolate(%v) = %v, want %v", p.X, got, p.Y)
		}
	}
}

func TestCubicInterpolatorTwoPointsIsLinear(t *testing.T) {
	c, err := NewCubicInterpolator([]Point{{0, 0}, {2, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Interpolate(1); math.Abs(got-2) > 1e-9 {
		t.Errorf("Interpolate(1) = %v, want 2", got)
	}
}

func TestCheckSortedRejectsNonIncreasing(t *testing.T) {
	if _, err := NewLinearInterpolator([]Point{{0, 0}, {0, 1}}); err == nil {
		t.Error("expected error for non-increasing x values")
	}
}
