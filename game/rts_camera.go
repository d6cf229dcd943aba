// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package game holds the gameplay-facing camera controller that drives a
// scene.Camera from RTS-style mouse input: pan, rotate, and zoom, each
// smoothed by a critically-damped filter and, for zoom, shaped by an
// interpolator over the normalized zoom level.
//
// Package game is provided as part of the tacticus 3D engine.
package game

import (
	"math"

	"github.com/tacticus/engine/math/curve"
	"github.com/tacticus/engine/scene"
)

// ZoomProperty drives a smoothed scalar entirely from the controller's
// zoom level, sampling an interpolator for the target value on every zoom.
type ZoomProperty struct {
	Interpolator curve.Interpolator
	SmoothTime   float64
}

// FreeProperty drives a smoothed scalar directly from mouse deltas within a
// clamped range.
type FreeProperty struct {
	Range       curve.Range
	Sensitivity float64
	SmoothTime  float64
}

// PitchKind distinguishes which variant drives the pitch property.
type PitchKind int

// Pitch is either a free look angle or driven by the zoom interpolator,
// never both.
const (
	PitchFree PitchKind = iota
	PitchZoomDriven
)

// PitchProperty is the tagged union of FreeProperty and ZoomProperty used
// only for pitch; every other zoom-driven/free property has a single fixed
// kind so does not need tagging.
type PitchProperty struct {
	Kind PitchKind
	Free FreeProperty
	Zoom ZoomProperty
}

// RtsCameraController maps translate/rotate/zoom input to a smoothed
// perspective camera pose: a target point on the ground plane, a zoom
// level in [0,1], and four smoothed scalars (distance, fov, yaw, pitch)
// each converging toward a target set by the most recent input.
type RtsCameraController struct {
	target    curve.Point2
	zoomLevel float64
	zoomSens  float64

	distance curve.Smooth
	fov      curve.Smooth
	yaw      curve.Smooth
	pitch    curve.Smooth

	distanceProp ZoomProperty
	fovProp      ZoomProperty
	yawProp      FreeProperty
	pitchProp    PitchProperty

	targetConstraint curve.PointConstraint

	aspect, near, far float64
}

// NewRtsCameraController returns a controller with the reference defaults:
// distance driven by a linear interpolator from 10 (zoom 0) to 1000 (zoom 1),
// fov by a flat-line interpolator at pi/4, yaw free over a full turn, and
// pitch free over [0, pi/2].
func NewRtsCameraController() *RtsCameraController {
	distanceInterp, _ := curve.NewLinearInterpolator([]curve.Point{{X: 0, Y: 10}, {X: 1, Y: 1000}})
	fovInterp, _ := curve.NewLinearInterpolator([]curve.Point{{X: 0, Y: math.Pi / 4}, {X: 1, Y: math.Pi / 4}})

	c := &RtsCameraController{
		zoomSens: 1,
		aspect:   16.0 / 9.0,
		near:     0.1,
		far:      10000,

		distanceProp: ZoomProperty{Interpolator: distanceInterp, SmoothTime: 0.1},
		fovProp:      ZoomProperty{Interpolator: fovInterp, SmoothTime: 0.1},
		yawProp:      FreeProperty{Range: curve.Range{Min: 0, Max: 2 * math.Pi}, Sensitivity: 1, SmoothTime: 0.1},
		pitchProp: PitchProperty{
			Kind: PitchFree,
			Free: FreeProperty{Range: curve.Range{Min: 0, Max: math.Pi / 2}, Sensitivity: 1, SmoothTime: 0.1},
		},
	}
	c.distance = curve.NewSmooth(distanceInterp.Interpolate(0), c.distanceProp.SmoothTime)
	c.fov = curve.NewSmooth(fovInterp.Interpolate(0), c.fovProp.SmoothTime)
	c.yaw = curve.NewSmooth(0, c.yawProp.SmoothTime)
	c.pitch = curve.NewSmooth(0, c.pitchProp.Free.SmoothTime)
	return c
}

// SetTargetConstraint restricts the ground-plane target to a constrained
// region, e.g. the playable map bounds. Pass nil to remove the constraint.
func (c *RtsCameraController) SetTargetConstraint(constraint curve.PointConstraint) {
	c.targetConstraint = constraint
}

// SetDistanceProperty replaces the zoom-to-distance curve and smooth time.
func (c *RtsCameraController) SetDistanceProperty(p ZoomProperty) {
	c.distanceProp = p
	c.distance.SetSmoothTime(p.SmoothTime)
}

// SetFovProperty replaces the zoom-to-fov curve and smooth time.
func (c *RtsCameraController) SetFovProperty(p ZoomProperty) {
	c.fovProp = p
	c.fov.SetSmoothTime(p.SmoothTime)
}

// SetYawProperty replaces the free-look yaw range, sensitivity, and smooth time.
func (c *RtsCameraController) SetYawProperty(p FreeProperty) {
	c.yawProp = p
	c.yaw.SetSmoothTime(p.SmoothTime)
}

// SetPitchProperty replaces the pitch property, switching it between free
// look and zoom-driven.
func (c *RtsCameraController) SetPitchProperty(p PitchProperty) {
	c.pitchProp = p
	switch p.Kind {
	case PitchZoomDriven:
		c.pitch.SetSmoothTime(p.Zoom.SmoothTime)
	default:
		c.pitch.SetSmoothTime(p.Free.SmoothTime)
	}
}

// Target returns the controller's ground-plane look-at point.
func (c *RtsCameraController) Target() (x, y float64) { return c.target.X, c.target.Y }

// SetTarget assigns the ground-plane look-at point directly, passing it
// through the configured target constraint.
func (c *RtsCameraController) SetTarget(x, y float64) {
	c.target = c.targetConstraint.Apply(c.target, curve.Point2{X: x, Y: y})
}

// ZoomLevel returns the current normalized zoom level in [0,1].
func (c *RtsCameraController) ZoomLevel() float64 { return c.zoomLevel }

// SetZoomLevel directly assigns the normalized zoom level, clamped to
// [0,1], and retargets the zoom-driven properties from it.
func (c *RtsCameraController) SetZoomLevel(level float64) {
	c.zoomLevel = curve.Clamp(level, 0, 1)
	c.applyZoomLevel()
}

// ZoomSensitivity returns the multiplier applied to Zoom's amount argument.
func (c *RtsCameraController) ZoomSensitivity() float64 { return c.zoomSens }

// SetZoomSensitivity sets the multiplier applied to Zoom's amount argument.
func (c *RtsCameraController) SetZoomSensitivity(s float64) { c.zoomSens = s }

// SetViewport configures the aspect ratio and clip planes applied to the
// camera on every pose update.
func (c *RtsCameraController) SetViewport(aspect, near, far float64) {
	c.aspect, c.near, c.far = aspect, near, far
}

func (c *RtsCameraController) applyZoomLevel() {
	c.distance.Target(c.distanceProp.Interpolator.Interpolate(c.zoomLevel))
	c.fov.Target(c.fovProp.Interpolator.Interpolate(c.zoomLevel))
	if c.pitchProp.Kind == PitchZoomDriven {
		c.pitch.Target(c.pitchProp.Zoom.Interpolator.Interpolate(c.zoomLevel))
	}
}

// Zoom adjusts the zoom level by amount*sensitivity, clamped to [0,1], and
// retargets distance, fov, and (if zoom-driven) pitch from the new level.
func (c *RtsCameraController) Zoom(amount float64) {
	c.SetZoomLevel(c.zoomLevel - amount*c.zoomSens)
}

// Translate moves the target point by a camera-oriented 2D vector: vx is
// along the camera's right axis, vy is along the yaw-facing direction
// projected onto the ground plane.
func (c *RtsCameraController) Translate(vx, vy float64) {
	yaw := c.yaw.TargetValue()
	rightX, rightY := math.Cos(yaw-math.Pi/2), math.Sin(yaw-math.Pi/2)
	fwdX, fwdY := math.Cos(yaw), math.Sin(yaw)
	c.SetTarget(c.target.X+rightX*vx+fwdX*vy, c.target.Y+rightY*vx+fwdY*vy)
}

// Rotate adjusts yaw and, if pitch is a free property, pitch by mouse
// deltas scaled by each property's sensitivity and clamped to its range.
// If pitch is zoom-driven, dpitch is ignored.
func (c *RtsCameraController) Rotate(dyaw, dpitch float64) {
	yawTarget := c.yawProp.Range.Clamp(c.yaw.TargetValue() + dyaw*c.yawProp.Sensitivity)
	c.yaw.Target(yawTarget)

	if c.pitchProp.Kind == PitchFree {
		p := c.pitchProp.Free
		c.pitch.Target(p.Range.Clamp(c.pitch.TargetValue() + dpitch*p.Sensitivity))
	}
}

// Update advances all smoothed scalars by dt seconds and reconstructs the
// camera pose from their current (not target) values.
func (c *RtsCameraController) Update(dt float64, cam *scene.Camera) {
	c.distance.Update(dt)
	c.fov.Update(dt)
	c.yaw.Update(dt)
	c.pitch.Update(dt)
	c.updateCamera(cam)
}

// UpdateImmediate snaps every smoothed scalar straight to its target and
// reconstructs the camera pose.
func (c *RtsCameraController) UpdateImmediate(cam *scene.Camera) {
	c.distance.UpdateImmediate()
	c.fov.UpdateImmediate()
	c.yaw.UpdateImmediate()
	c.pitch.UpdateImmediate()
	c.updateCamera(cam)
}

// Distance returns the current (possibly still converging) camera distance.
func (c *RtsCameraController) Distance() float64 { return c.distance.Value() }

// Yaw returns the current (possibly still converging) yaw angle, radians.
func (c *RtsCameraController) Yaw() float64 { return c.yaw.Value() }

// Pitch returns the current (possibly still converging) pitch angle, radians.
func (c *RtsCameraController) Pitch() float64 { return c.pitch.Value() }

// direction returns the unit look vector for the current yaw/pitch, with
// pitch inverted so a positive pitch looks down.
func (c *RtsCameraController) direction() (x, y, z float64) {
	pitch, yaw := -c.pitch.Value(), c.yaw.Value()
	cp := math.Cos(pitch)
	return cp * math.Cos(yaw), cp * math.Sin(yaw), math.Sin(pitch)
}

// up returns the camera's up vector for the current pitch/yaw.
func (c *RtsCameraController) up() (x, y, z float64) {
	pitch, yaw := c.pitch.Value(), c.yaw.Value()
	sp := math.Sin(pitch)
	return sp * math.Cos(yaw), sp * math.Sin(yaw), math.Cos(pitch)
}

func (c *RtsCameraController) updateCamera(cam *scene.Camera) {
	dx, dy, dz := c.direction()
	ux, uy, uz := c.up()
	dist := c.distance.Value()

	px := c.target.X - dx*dist
	py := c.target.Y - dy*dist
	pz := 0 - dz*dist

	cam.SetPosition(px, py, pz)
	cam.SetTarget(px+dx, py+dy, pz+dz)
	cam.SetUp(ux, uy, uz)
	cam.SetPerspective(c.fov.Value()*180/math.Pi, c.aspect, c.near, c.far)
}
