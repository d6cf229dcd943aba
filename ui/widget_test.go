// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

import "testing"

func TestWidgetLayoutFillsParent(t *testing.T) {
	w := NewWidget("root")
	w.Anchors = Anchors{
		Left:   Anchor{Fraction: 0},
		Top:    Anchor{Fraction: 0},
		Right:  Anchor{Fraction: 1},
		Bottom: Anchor{Fraction: 1},
	}
	w.Layout(Rect{0, 0, 800, 600})
	if got := w.CalculatedLayout(); got != (Rect{0, 0, 800, 600}) {
		t.Errorf("CalculatedLayout() = %+v, want full parent rect", got)
	}
}

func TestWidgetLayoutCollapsesCrossedEdges(t *testing.T) {
	w := NewWidget("collapsing")
	w.Anchors = Anchors{
		Left:  Anchor{Fraction: 0.8},
		Right: Anchor{Fraction: 0.2},
		Top:   Anchor{Fraction: 0},
	}
	w.Layout(Rect{0, 0, 100, 100})
	r := w.CalculatedLayout()
	if r.MinX != r.MaxX {
		t.Errorf("crossed left/right anchors should collapse to a midpoint, got MinX=%v MaxX=%v", r.MinX, r.MaxX)
	}
}

func TestWidgetCalculatedBoundsUnionsChildren(t *testing.T) {
	parent := NewWidget("parent")
	parent.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	child := NewWidget("child")
	child.Anchors = Anchors{
		Left: Anchor{Fraction: 1, Offset: 0}, Right: Anchor{Fraction: 1, Offset: 50},
		Top: Anchor{Fraction: 1, Offset: 0}, Bottom: Anchor{Fraction: 1, Offset: 50},
	}
	parent.AddChild(child)
	parent.Layout(Rect{0, 0, 200, 200})

	bounds := parent.CalculatedBounds()
	if bounds.MaxX < 250 || bounds.MaxY < 250 {
		t.Errorf("CalculatedBounds() = %+v, want to extend past child at (250,250)", bounds)
	}
}

func TestWidgetHitTestPicksDeepestReverseOrderChild(t *testing.T) {
	root := NewWidget("root")
	root.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	first := NewWidget("first")
	first.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	second := NewWidget("second")
	second.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	root.AddChild(first)
	root.AddChild(second)
	root.Layout(Rect{0, 0, 100, 100})

	hit := root.hitTest(50, 50)
	if hit != second {
		t.Errorf("hitTest should prefer the later (visually on top) overlapping child")
	}
}

func TestWidgetRenderSkipsEmptyClip(t *testing.T) {
	root := NewWidget("root")
	root.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	child := NewWidget("offscreen")
	child.Anchors = Anchors{
		Left: Anchor{Fraction: 0, Offset: -500}, Right: Anchor{Fraction: 0, Offset: -400},
		Bottom: Anchor{Fraction: 1},
	}
	root.AddChild(child)
	root.Layout(Rect{0, 0, 100, 100})

	quads := root.Render(Rect{0, 0, 100, 100}, func(w *Widget, clip Rect) []Quad {
		return []Quad{{Bounds: w.CalculatedLayout()}}
	})
	if len(quads) != 1 {
		t.Errorf("len(quads) = %d, want 1 (offscreen child's subtree skipped)", len(quads))
	}
}
