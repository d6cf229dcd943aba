// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

import "testing"

func TestFrameOnlyActiveSlicesContributeQuads(t *testing.T) {
	f := NewFrame("panel", 10, 10, 10, 10, 8, map[Slice]string{
		SliceBackground: "panel_bg",
		SliceTopLeft:    "panel_corner_tl",
	})
	f.Anchors = fullAnchors()
	f.Layout(Rect{0, 0, 200, 100})

	quads := f.Quads()
	if len(quads) != 2 {
		t.Fatalf("len(quads) = %d, want 2 (only background and top-left active)", len(quads))
	}
}

func TestFrameCornersSizedToMargins(t *testing.T) {
	f := NewFrame("panel", 10, 20, 30, 40, 8, map[Slice]string{
		SliceTopLeft: "corner",
	})
	f.Anchors = fullAnchors()
	f.Layout(Rect{0, 0, 200, 100})

	quads := f.Quads()
	if len(quads) != 1 {
		t.Fatalf("len(quads) = %d, want 1", len(quads))
	}
	corner := quads[0].Bounds
	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}
	if corner != want {
		t.Errorf("top-left corner = %+v, want %+v", corner, want)
	}
}

func TestFrameMiddleSpansInterior(t *testing.T) {
	f := NewFrame("panel", 10, 10, 10, 10, 8, map[Slice]string{
		SliceMiddle: "middle",
	})
	f.Anchors = fullAnchors()
	f.Layout(Rect{0, 0, 200, 100})

	quads := f.Quads()
	want := Rect{MinX: 10, MinY: 10, MaxX: 190, MaxY: 90}
	if quads[0].Bounds != want {
		t.Errorf("middle = %+v, want %+v", quads[0].Bounds, want)
	}
}
