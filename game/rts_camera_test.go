// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package game

import (
	"math"
	"testing"

	"github.com/tacticus/engine/math/curve"
	"github.com/tacticus/engine/scene"
)

func TestZoomDrivenDistance(t *testing.T) {
	c := NewRtsCameraController()
	interp, err := curve.NewLinearInterpolator([]curve.Point{{X: 0, Y: 10}, {X: 1, Y: 1000}})
	if err != nil {
		t.Fatal(err)
	}
	c.SetDistanceProperty(ZoomProperty{
		Interpolator: interp,
		SmoothTime:   0,
	})

	cam := scene.NewCamera()
	c.SetZoomLevel(0)
	c.UpdateImmediate(cam)
	if math.Abs(c.Distance()-10) > 1e-6 {
		t.Errorf("distance at zoom 0 = %v, want 10", c.Distance())
	}

	c.SetZoomLevel(1)
	c.UpdateImmediate(cam)
	if math.Abs(c.Distance()-1000) > 1e-6 {
		t.Errorf("distance at zoom 1 = %v, want 1000", c.Distance())
	}
}

func TestZoomMonotonicity(t *testing.T) {
	c := NewRtsCameraController()
	c.SetZoomLevel(0.5)
	before := c.ZoomLevel()

	c.Zoom(0.2)
	c.Zoom(-0.2)

	if math.Abs(c.ZoomLevel()-before) > 1e-9 {
		t.Errorf("zoom level after +a;-a = %v, want %v", c.ZoomLevel(), before)
	}
}

func TestRotateIgnoresPitchWhenZoomDriven(t *testing.T) {
	c := NewRtsCameraController()
	interp, err := curve.NewLinearInterpolator([]curve.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	c.SetPitchProperty(PitchProperty{Kind: PitchZoomDriven, Zoom: ZoomProperty{Interpolator: interp, SmoothTime: 0}})
	c.SetZoomLevel(0)

	before := c.pitch.TargetValue()
	c.Rotate(0, 5)
	if c.pitch.TargetValue() != before {
		t.Errorf("pitch target changed despite zoom-driven pitch: %v -> %v", before, c.pitch.TargetValue())
	}
}

func TestRotateClampsFreePitch(t *testing.T) {
	c := NewRtsCameraController()
	c.Rotate(0, 1000)
	if c.pitch.TargetValue() > math.Pi/2+1e-9 {
		t.Errorf("pitch target %v exceeds range max", c.pitch.TargetValue())
	}
}

func TestUpdateImmediateSnapsPose(t *testing.T) {
	c := NewRtsCameraController()
	c.SetTarget(5, 7)
	cam := scene.NewCamera()
	c.UpdateImmediate(cam)

	px, py, pz := cam.Position()
	if math.IsNaN(px) || math.IsNaN(py) || math.IsNaN(pz) {
		t.Fatalf("camera position contains NaN: %v %v %v", px, py, pz)
	}
}
