// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// EventKind names a pointer or key event delivered by a Canvas.
type EventKind int

// Supported event kinds. MouseEnter/MouseLeave are synthesized by the
// canvas; the others are driven by caller input.
const (
	MouseMove EventKind = iota
	MouseDown
	MouseUp
	MouseScroll
	MouseEnter
	MouseLeave
	KeyDown
	KeyUp
)

// Event is one input occurrence dispatched through the widget tree.
type Event struct {
	Kind     EventKind
	X, Y     float64
	Button   int
	Key      string
	Scroll   int
	Consumed bool
}
