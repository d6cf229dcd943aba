// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

import "testing"

func newTestListBox() *ListBox {
	lb := NewListBox("lb", []string{"a", "b", "c", "d", "e"}, 20, "highlight")
	lb.Anchors = fullAnchors()
	lb.Layout(Rect{0, 0, 100, 60}) // 3 lines visible at LineHeight=20.
	return lb
}

func TestListBoxQuadsNoSelection(t *testing.T) {
	lb := newTestListBox()
	if quads := lb.Quads(); quads != nil {
		t.Errorf("Quads() with no selection = %+v, want nil", quads)
	}
}

func TestListBoxQuadsPositionsAtSelectedLine(t *testing.T) {
	lb := newTestListBox()
	lb.Select(1)

	quads := lb.Quads()
	if len(quads) != 1 {
		t.Fatalf("len(Quads()) = %d, want 1", len(quads))
	}
	want := Rect{MinX: 0, MinY: 20, MaxX: 100, MaxY: 40}
	if quads[0].Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", quads[0].Bounds, want)
	}
	if quads[0].Texture != "highlight" {
		t.Errorf("Texture = %q, want highlight", quads[0].Texture)
	}
}

func TestListBoxQuadsOffsetByScrollPosition(t *testing.T) {
	lb := newTestListBox()
	lb.Select(3)
	lb.Scroll.SetPosition(2)

	quads := lb.Quads()
	if len(quads) != 1 {
		t.Fatalf("len(Quads()) = %d, want 1", len(quads))
	}
	want := Rect{MinX: 0, MinY: 20, MaxX: 100, MaxY: 40} // (3-2)*20
	if quads[0].Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", quads[0].Bounds, want)
	}
}

func TestListBoxQuadsSkippedWhenScrolledOutOfView(t *testing.T) {
	lb := newTestListBox()
	lb.Select(0)
	lb.Scroll.SetPosition(4) // line 0 scrolled far above the visible top.

	if quads := lb.Quads(); quads != nil {
		t.Errorf("Quads() when scrolled out of view = %+v, want nil", quads)
	}
}
