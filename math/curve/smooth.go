// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package curve

// minSmoothTime is the shortest smoothing time that still integrates
// meaningfully; anything shorter snaps straight to the target.
const minSmoothTime = 0.001

// Smooth is a critically-damped second-order smoothing filter: it tracks a
// moving target value, converging toward it at a rate set by SmoothTime
// rather than jumping on every Update. Used for camera distance, fov, and
// pitch/yaw so that changes in the driving value (zoom level, mouse drag)
// feel continuous instead of stepped.
type Smooth struct {
	current    float64
	target     float64
	velocity   float64
	smoothTime float64
}

// NewSmooth returns a Smooth initialized to value with the given smooth
// time, in seconds, to close most of the distance to a new target.
func NewSmooth(value, smoothTime float64) Smooth {
	return Smooth{current: value, target: value, smoothTime: smoothTime}
}

// Target sets the value this filter converges toward.
func (s *Smooth) Target(target float64) { s.target = target }

// TargetValue returns the value this filter is converging toward.
func (s *Smooth) TargetValue() float64 { return s.target }

// Value returns the filter's current, possibly still-converging, value.
func (s *Smooth) Value() float64 { return s.current }

// SmoothTime reports the configured convergence time, in seconds.
func (s *Smooth) SmoothTime() float64 { return s.smoothTime }

// SetSmoothTime changes the convergence time, in seconds, used by Update.
func (s *Smooth) SetSmoothTime(smoothTime float64) { s.smoothTime = smoothTime }

// UpdateImmediate snaps the current value straight to the target, clearing
// any residual velocity.
func (s *Smooth) UpdateImmediate() {
	s.current = s.target
	s.velocity = 0
}

// Update advances the current value toward the target over dt seconds,
// using a critically-damped spring approximation. Below minSmoothTime this
// degrades to UpdateImmediate.
func (s *Smooth) Update(dt float64) {
	if s.smoothTime <= minSmoothTime {
		s.UpdateImmediate()
		return
	}
	omega := 2.0 / s.smoothTime
	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	delta := s.current - s.target
	temp := (s.velocity + omega*delta) * dt

	s.velocity = (s.velocity - omega*temp) * exp
	s.current = s.target + (delta+temp)*exp
}
