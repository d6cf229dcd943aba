// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

import (
	"math"
	"testing"
)

func TestSmoothConvergesToTarget(t *testing.T) {
	s := NewSmooth(0, 0.2)
	s.Target(10)
	for i := 0; i < 600; i++ {
		s.Update(1.0 / 60.0)
	}
	if math.Abs(s.Value()-10) > 1e-3 {
		t.Errorf("Value() = %v, want ~10 after convergence", s.Value())
	}
}

func TestSmoothUpdateImmediate(t *testing.T) {
	s := NewSmooth(0, 1)
	s.Target(42)
	s.UpdateImmediate()
	if s.Value() != 42 {
		t.Errorf("Value() = %v, want 42", s.Value())
	}
}

func TestSmoothBelowMinSmoothTimeSnaps(t *testing.T) {
	s := NewSmooth(0, minSmoothTime/2)
	s.Target(5)
	s.Update(0.016)
	if s.Value() != 5 {
		t.Errorf("Value() = %v, want 5 (snap)", s.Value())
	}
}

func TestSmoothMonotonicApproachNoOvershoot(t *testing.T) {
	s := NewSmooth(0, 0.3)
	s.Target(1)
	prev := 0.0
	for i := 0; i < 100; i++ {
		s.Update(1.0 / 60.0)
		if s.Value() < prev-1e-12 {
			t.Fatalf("value decreased at step %d: %v -> %v", i, prev, s.Value())
		}
		if s.Value() > 1+1e-6 {
			t.Fatalf("value overshot target at step %d: %v", i, s.Value())
		}
		prev = s.Value()
	}
}
