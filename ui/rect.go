// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package ui implements a hierarchical widget tree: anchor-based layout,
// trickle-down/bubble-up pointer event routing with capture, clip-rect
// intersection, and the nine-slice frame and scrollbar widgets built on
// top of it.
//
// Package ui is provided as part of the tacticus 3D engine.
package ui

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rect's horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rect's vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rect has non-positive area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Contains reports whether point (x,y) lies within the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Union returns the smallest rect enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: minf(r.MinX, o.MinX), MinY: minf(r.MinY, o.MinY),
		MaxX: maxf(r.MaxX, o.MaxX), MaxY: maxf(r.MaxY, o.MaxY),
	}
}

// Intersect returns the overlapping region of r and o. The result is Empty
// if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		MinX: maxf(r.MinX, o.MinX), MinY: maxf(r.MinY, o.MinY),
		MaxX: minf(r.MaxX, o.MaxX), MaxY: minf(r.MaxY, o.MaxY),
	}
}

// Offset translates the rect by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.MinX + dx, r.MinY + dy, r.MaxX + dx, r.MaxY + dy}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func lerp(a, b, fraction float64) float64 { return a + (b-a)*fraction }
