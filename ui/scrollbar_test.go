// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

import "testing"

func newTestScrollbar() *Scrollbar {
	sb := NewScrollbar("sb", 0, 100, 10)
	sb.Anchors = fullAnchors()
	sb.Up.Anchors = Anchors{Right: Anchor{Fraction: 1}}
	sb.Down.Anchors = Anchors{Top: Anchor{Fraction: 1}, Right: Anchor{Fraction: 1}}
	sb.Track.Anchors = fullAnchors()
	sb.Button.Anchors = Anchors{Right: Anchor{Fraction: 1}, Bottom: Anchor{Fraction: 0, Offset: 20}}
	sb.Layout(Rect{0, 0, 20, 200})
	return sb
}

func TestScrollbarLayoutButtonLerp(t *testing.T) {
	sb := newTestScrollbar()
	sb.SetPosition(50)

	track := sb.trackHeight()
	button := sb.buttonHeight()
	wantOffset := lerp(0, track-button, 0.5)

	got := sb.Button.CalculatedLayout().MinY - sb.Track.CalculatedLayout().MinY
	if got != wantOffset {
		t.Errorf("button offset = %v, want %v", got, wantOffset)
	}
}

func TestScrollbarSetPositionClamps(t *testing.T) {
	sb := newTestScrollbar()
	sb.SetPosition(-50)
	if sb.Position() != 0 {
		t.Errorf("Position() = %d, want clamped to Min=0", sb.Position())
	}
	sb.SetPosition(500)
	if sb.Position() != 100 {
		t.Errorf("Position() = %d, want clamped to Max=100", sb.Position())
	}
}

func TestScrollbarOnChangeFiresOnlyOnActualChange(t *testing.T) {
	sb := newTestScrollbar()
	var calls int
	sb.OnChange(func(position int) { calls++ })

	sb.SetPosition(10)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 after real change", calls)
	}
	sb.SetPosition(10)
	if calls != 1 {
		t.Fatalf("calls = %d, want unchanged at 1 after no-op SetPosition", calls)
	}
	sb.SetPosition(-5)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2 since clamp(-5)=0=Min differs from the current 10", calls)
	}
}

func TestScrollbarDragToReverseMapsOffset(t *testing.T) {
	sb := newTestScrollbar()
	span := sb.trackHeight() - sb.buttonHeight()

	sb.DragTo(span / 2)
	if sb.Position() < 45 || sb.Position() > 55 {
		t.Errorf("Position() = %d, want near 50 for a half-span drag", sb.Position())
	}

	sb.DragTo(0)
	if sb.Position() != 0 {
		t.Errorf("Position() = %d, want 0 for a zero-offset drag", sb.Position())
	}

	sb.DragTo(span)
	if sb.Position() != 100 {
		t.Errorf("Position() = %d, want 100 for a full-span drag", sb.Position())
	}
}

func TestScrollbarUpDownStepOnMouseDown(t *testing.T) {
	sb := newTestScrollbar()
	sb.SetPosition(50)

	sb.Up.PreEvent(sb.Up, Event{Kind: MouseDown})
	if sb.Position() != 40 {
		t.Errorf("Position() after Up press = %d, want 40", sb.Position())
	}

	sb.Down.PreEvent(sb.Down, Event{Kind: MouseDown})
	sb.Down.PreEvent(sb.Down, Event{Kind: MouseDown})
	if sb.Position() != 60 {
		t.Errorf("Position() after two Down presses = %d, want 60", sb.Position())
	}

	sb.Up.PreEvent(sb.Up, Event{Kind: MouseUp})
	if sb.Position() != 60 {
		t.Errorf("Position() after a MouseUp (not MouseDown) = %d, want unchanged at 60", sb.Position())
	}
}
