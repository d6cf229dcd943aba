// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import "testing"

func TestNewAppliesDefaults(t *testing.T) {
	c := New()
	if c.Title != "tacticus" || c.Windowed {
		t.Errorf("New() = %+v, want default title/fullscreen", c)
	}
	if c.W != 1280 || c.H != 720 {
		t.Errorf("New() size = %dx%d, want 1280x720", c.W, c.H)
	}
}

func TestSizeIgnoresOutOfRangeValues(t *testing.T) {
	c := New(Size(10, 10, 800, 600), Size(-5, -5, 5, 100_000))
	if c.X != 10 || c.Y != 10 {
		t.Errorf("X,Y = %d,%d, want the first valid Size to stick", c.X, c.Y)
	}
	if c.W != 800 || c.H != 600 {
		t.Errorf("W,H = %d,%d, want the first valid Size to stick", c.W, c.H)
	}
}

func TestModPathsAndPresetsOverrideDefaults(t *testing.T) {
	c := New(
		ModPaths("base", "mods/custom"),
		Pipeline("pbr"),
		CameraPreset("siege"),
		Windowed(),
	)
	if len(c.ModPaths) != 2 || c.ModPaths[1] != "mods/custom" {
		t.Errorf("ModPaths = %v, unexpected", c.ModPaths)
	}
	if c.Pipeline != "pbr" || c.CameraPreset != "siege" {
		t.Errorf("Pipeline/CameraPreset = %q/%q, unexpected", c.Pipeline, c.CameraPreset)
	}
	if !c.Windowed {
		t.Errorf("Windowed() should set Windowed = true")
	}
}
