// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// Anchor positions one edge of a widget as a fraction of its parent's
// corresponding span, plus a fixed pixel offset:
// edge = lerp(parentMin, parentMax, Fraction) + Offset.
type Anchor struct {
	Fraction float64
	Offset   float64
}

// Anchors positions all four edges of a widget relative to its parent.
type Anchors struct {
	Left, Top, Right, Bottom Anchor
}

// Quad is one textured rectangle appended by a widget's Render.
type Quad struct {
	Bounds  Rect
	Texture string
}

// Widget is a node in the UI tree: an anchor-based layout descriptor, an
// enabled/visible pair, an optional parent, ordered children, and the
// rect/bounds computed by the most recent Layout pass.
type Widget struct {
	Name     string
	Anchors  Anchors
	Enabled  bool
	Visible  bool
	Clip     Rect // local clip rect, relative to the widget's own position.
	HasClip  bool // whether Clip restricts rendering beyond calculatedLayout.
	Parent   *Widget
	Children []*Widget

	calculatedLayout Rect
	calculatedBounds Rect
	captured         bool

	// OnLayout is invoked after this widget and all its children have been
	// laid out for the current frame.
	OnLayout func(w *Widget)
	// PreEvent is invoked during the trickle-down sweep, root to target.
	PreEvent func(w *Widget, e Event)
	// OnEvent is invoked during the bubble-up sweep, target to root.
	OnEvent func(w *Widget, e Event)
}

// NewWidget returns an enabled, visible widget with no anchoring (it
// collapses to its parent's top-left corner until anchors are set).
func NewWidget(name string) *Widget {
	return &Widget{Name: name, Enabled: true, Visible: true}
}

// AddChild appends c as a child of w, setting c's parent back-reference.
func (w *Widget) AddChild(c *Widget) {
	c.Parent = w
	w.Children = append(w.Children, c)
}

// CalculatedLayout returns the rect computed by the most recent Layout.
func (w *Widget) CalculatedLayout() Rect { return w.calculatedLayout }

// CalculatedBounds returns the union of this widget's rect with every
// descendant's bounds, computed by the most recent Layout.
func (w *Widget) CalculatedBounds() Rect { return w.calculatedBounds }

// Layout computes this widget's rect from parent, with edge-crossing
// sanity collapse, then recurses into children before invoking OnLayout.
func (w *Widget) Layout(parent Rect) {
	left := lerp(parent.MinX, parent.MaxX, w.Anchors.Left.Fraction) + w.Anchors.Left.Offset
	right := lerp(parent.MinX, parent.MaxX, w.Anchors.Right.Fraction) + w.Anchors.Right.Offset
	top := lerp(parent.MinY, parent.MaxY, w.Anchors.Top.Fraction) + w.Anchors.Top.Offset
	bottom := lerp(parent.MinY, parent.MaxY, w.Anchors.Bottom.Fraction) + w.Anchors.Bottom.Offset

	if left > right {
		mid := (left + right) / 2
		left, right = mid, mid
	}
	if top > bottom {
		mid := (top + bottom) / 2
		top, bottom = mid, mid
	}

	w.calculatedLayout = Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
	bounds := w.calculatedLayout
	for _, c := range w.Children {
		c.Layout(w.calculatedLayout)
		bounds = bounds.Union(c.CalculatedBounds())
	}
	w.calculatedBounds = bounds

	if w.OnLayout != nil {
		w.OnLayout(w)
	}
}

// effectiveClip returns the clip rect this widget renders within, given
// its parent's already-intersected clip.
func (w *Widget) effectiveClip(parentClip Rect) Rect {
	if !w.HasClip {
		return parentClip.Intersect(w.calculatedLayout)
	}
	local := w.Clip.Offset(w.calculatedLayout.MinX, w.calculatedLayout.MinY)
	return parentClip.Intersect(local)
}

// Render appends this widget's quads (via renderSelf, when set) and
// recurses into visible children, skipping any subtree whose effective
// clip rect is empty.
func (w *Widget) Render(parentClip Rect, renderSelf func(w *Widget, clip Rect) []Quad) []Quad {
	if !w.Visible {
		return nil
	}
	clip := w.effectiveClip(parentClip)
	if clip.Empty() {
		return nil
	}
	var quads []Quad
	if renderSelf != nil {
		quads = append(quads, renderSelf(w, clip)...)
	}
	for _, c := range w.Children {
		quads = append(quads, c.Render(clip, renderSelf)...)
	}
	return quads
}

// setCapture marks this widget as the canvas's capture target. Only the
// canvas (via Canvas.Dispatch, checking the widget is the current dispatch
// target) should honor this.
func (w *Widget) setCapture() { w.captured = true }

// releaseCapture clears this widget's capture flag.
func (w *Widget) releaseCapture() { w.captured = false }

// hitTest returns the deepest visible widget whose calculatedLayout
// contains (x, y), scanning children in reverse order so later (visually
// overlapping) children win. A disabled widget can still be hit; only
// visibility gates it, matching the canvas's live dispatch.
func (w *Widget) hitTest(x, y float64) *Widget {
	if !w.Visible {
		return nil
	}
	for i := len(w.Children) - 1; i >= 0; i-- {
		if hit := w.Children[i].hitTest(x, y); hit != nil {
			return hit
		}
	}
	if w.calculatedLayout.Contains(x, y) {
		return w
	}
	return nil
}

// chain returns the parent-to-self path, root first, walking the parent
// links iteratively rather than recursing.
func (w *Widget) chain() []*Widget {
	var c []*Widget
	for cur := w; cur != nil; cur = cur.Parent {
		c = append(c, cur)
	}
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	return c
}
