// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

import "testing"

func fullAnchors() Anchors {
	return Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
}

func TestCanvasDispatchTricklesThenBubbles(t *testing.T) {
	var order []string

	root := NewWidget("root")
	root.Anchors = fullAnchors()
	child := NewWidget("child")
	child.Anchors = fullAnchors()
	root.AddChild(child)

	root.PreEvent = func(w *Widget, e Event) { order = append(order, "root-pre") }
	root.OnEvent = func(w *Widget, e Event) { order = append(order, "root-on") }
	child.PreEvent = func(w *Widget, e Event) { order = append(order, "child-pre") }
	child.OnEvent = func(w *Widget, e Event) { order = append(order, "child-on") }

	c := NewCanvas()
	c.AddRoot(root)
	c.Layout(Rect{0, 0, 100, 100})
	c.Dispatch(Event{Kind: MouseDown, X: 50, Y: 50})

	want := []string{"root-pre", "child-pre", "child-on", "root-on"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q (full: %v)", i, order[i], want[i], order)
		}
	}
}

func TestCanvasCaptureBypassesHitTest(t *testing.T) {
	root := NewWidget("root")
	root.Anchors = fullAnchors()
	left := NewWidget("left")
	left.Anchors = Anchors{Right: Anchor{Fraction: 0.5}, Bottom: Anchor{Fraction: 1}}
	right := NewWidget("right")
	right.Anchors = Anchors{Left: Anchor{Fraction: 0.5}, Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	root.AddChild(left)
	root.AddChild(right)

	var leftEvents int
	left.PreEvent = func(w *Widget, e Event) {
		leftEvents++
	}
	c := NewCanvas()
	c.AddRoot(root)
	c.Layout(Rect{0, 0, 100, 100})

	// Capture left, then dispatch an event positioned over right: left
	// should still receive it.
	left.OnEvent = func(w *Widget, e Event) { c.SetCapture(left) }
	c.Dispatch(Event{Kind: MouseDown, X: 10, Y: 10})
	if leftEvents != 1 {
		t.Fatalf("leftEvents after initial capture-setting dispatch = %d, want 1", leftEvents)
	}

	c.Dispatch(Event{Kind: MouseDown, X: 90, Y: 10})
	if leftEvents != 2 {
		t.Fatalf("leftEvents after captured dispatch over right = %d, want 2 (capture should bypass hit test)", leftEvents)
	}

	c.ReleaseCapture()
	c.Dispatch(Event{Kind: MouseDown, X: 90, Y: 10})
	if leftEvents != 2 {
		t.Fatalf("leftEvents after release = %d, want unchanged at 2", leftEvents)
	}
}

func TestCanvasSynthesizesMouseEnterLeave(t *testing.T) {
	root := NewWidget("root")
	root.Anchors = fullAnchors()
	a := NewWidget("a")
	a.Anchors = Anchors{Right: Anchor{Fraction: 0.5}, Bottom: Anchor{Fraction: 1}}
	b := NewWidget("b")
	b.Anchors = Anchors{Left: Anchor{Fraction: 0.5}, Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 1}}
	root.AddChild(a)
	root.AddChild(b)

	var events []string
	a.PreEvent = func(w *Widget, e Event) {
		if e.Kind == MouseEnter {
			events = append(events, "a-enter")
		}
		if e.Kind == MouseLeave {
			events = append(events, "a-leave")
		}
	}
	b.PreEvent = func(w *Widget, e Event) {
		if e.Kind == MouseEnter {
			events = append(events, "b-enter")
		}
	}

	c := NewCanvas()
	c.AddRoot(root)
	c.Layout(Rect{0, 0, 100, 100})

	c.Dispatch(Event{Kind: MouseMove, X: 10, Y: 10})
	c.Dispatch(Event{Kind: MouseMove, X: 90, Y: 10})

	want := []string{"a-enter", "a-leave", "b-enter"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}
