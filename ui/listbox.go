// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// ListBox is a vertically scrolling list of fixed-height lines: a
// scrollbar child tracks the scroll position, and the selected line is
// rendered as one opaque-colored highlight quad.
type ListBox struct {
	*Widget

	Scroll *Scrollbar

	Items            []string
	LineHeight       float64
	SelectedIndex    int // -1 means no selection.
	HighlightTexture string
}

// NewListBox returns a ListBox over items, each lineHeight pixels tall,
// with no initial selection and an attached vertical scrollbar.
func NewListBox(name string, items []string, lineHeight float64, highlightTexture string) *ListBox {
	lb := &ListBox{
		Widget:           NewWidget(name),
		Items:            items,
		LineHeight:       lineHeight,
		SelectedIndex:    -1,
		HighlightTexture: highlightTexture,
	}
	max := len(items) - 1
	if max < 0 {
		max = 0
	}
	lb.Scroll = NewScrollbar(name+"-scroll", 0, max, 1)
	lb.AddChild(lb.Scroll.Widget)
	return lb
}

// Select sets the selected line index; -1 clears the selection.
func (lb *ListBox) Select(index int) { lb.SelectedIndex = index }

// Quads computes the selection-highlight quad for the current selection
// and scroll position against this list box's current calculated layout:
// one quad sized to LineHeight, positioned at
// (SelectedIndex - Scroll.Position()) * LineHeight. Returns no quads when
// there is no selection or the selected line has scrolled fully out of
// the list box's own bounds.
func (lb *ListBox) Quads() []Quad {
	if lb.SelectedIndex < 0 || lb.LineHeight <= 0 {
		return nil
	}
	r := lb.CalculatedLayout()
	offset := (float64(lb.SelectedIndex) - float64(lb.Scroll.Position())) * lb.LineHeight
	bounds := Rect{MinX: r.MinX, MinY: r.MinY + offset, MaxX: r.MaxX, MaxY: r.MinY + offset + lb.LineHeight}
	if bounds.MaxY <= r.MinY || bounds.MinY >= r.MaxY {
		return nil
	}
	return []Quad{{Bounds: bounds, Texture: lb.HighlightTexture}}
}
