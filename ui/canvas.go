// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// Canvas owns a set of root widgets, lays them out against a viewport
// each frame, renders them with clip-rect intersection, and routes
// pointer events with trickle-down/bubble-up and capture.
type Canvas struct {
	Roots []*Widget

	capture *Widget
	hover   *Widget
	// dispatching is the widget currently receiving a handler call; only
	// this widget's setCapture takes effect, matching the "scoped
	// reference cleared after the handler returns" rule.
	dispatching *Widget
}

// NewCanvas returns an empty Canvas.
func NewCanvas() *Canvas { return &Canvas{} }

// AddRoot appends a root widget, rendered and hit-tested after any
// previously added root.
func (c *Canvas) AddRoot(w *Widget) { c.Roots = append(c.Roots, w) }

// Layout lays out every root widget against viewport.
func (c *Canvas) Layout(viewport Rect) {
	for _, r := range c.Roots {
		r.Layout(viewport)
	}
}

// Render walks root widgets in order, appending quads via renderSelf for
// every visible widget whose effective clip rect is non-empty.
func (c *Canvas) Render(viewport Rect, renderSelf func(w *Widget, clip Rect) []Quad) []Quad {
	var quads []Quad
	for _, r := range c.Roots {
		quads = append(quads, r.Render(viewport, renderSelf)...)
	}
	return quads
}

// SetCapture redirects subsequent pointer events to w, bypassing hit
// testing, provided w is the widget currently handling a dispatch. Calling
// this outside of a PreEvent/OnEvent handler for w has no effect.
func (c *Canvas) SetCapture(w *Widget) {
	if w != nil && w == c.dispatching {
		w.setCapture()
		c.capture = w
	}
}

// ReleaseCapture clears any active pointer capture.
func (c *Canvas) ReleaseCapture() {
	if c.capture != nil {
		c.capture.releaseCapture()
	}
	c.capture = nil
}

// hitTarget returns the current capture widget if set, else the deepest
// widget under (x, y) across all roots, last root first (later roots
// visually overlap earlier ones).
func (c *Canvas) hitTarget(x, y float64) *Widget {
	if c.capture != nil {
		return c.capture
	}
	for i := len(c.Roots) - 1; i >= 0; i-- {
		if hit := c.Roots[i].hitTest(x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// Dispatch routes e to the current target (capture widget, or hit test at
// (e.X, e.Y)): trickle PreEvent root-to-target, then bubble OnEvent
// target-to-root. MouseEnter/MouseLeave are synthesized first whenever the
// hover target changes from the previous call for a MouseMove event.
func (c *Canvas) Dispatch(e Event) {
	target := c.hitTarget(e.X, e.Y)

	if e.Kind == MouseMove && target != c.hover {
		if c.hover != nil {
			c.deliver(c.hover, Event{Kind: MouseLeave, X: e.X, Y: e.Y})
		}
		if target != nil {
			c.deliver(target, Event{Kind: MouseEnter, X: e.X, Y: e.Y})
		}
		c.hover = target
	}

	if target == nil {
		return
	}
	c.deliver(target, e)
}

// deliver trickles PreEvent from root to target, then bubbles OnEvent from
// target back to root.
func (c *Canvas) deliver(target *Widget, e Event) {
	chain := target.chain()
	for _, w := range chain {
		if w.PreEvent != nil {
			c.dispatching = w
			w.PreEvent(w, e)
			c.dispatching = nil
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		w := chain[i]
		if w.OnEvent != nil {
			c.dispatching = w
			w.OnEvent(w, e)
			c.dispatching = nil
		}
	}
}
