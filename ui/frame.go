// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// Slice names one of a nine-slice Frame's eighteen possible textured
// pieces: a background, a middle, four corners, and three pieces per side
// (the two transition pieces at each end plus the tiled center).
type Slice int

// Supported nine-slice pieces.
const (
	SliceBackground Slice = iota
	SliceMiddle
	SliceTopLeft
	SliceTopRight
	SliceBottomLeft
	SliceBottomRight
	SliceTopNearLeft
	SliceTopCenter
	SliceTopNearRight
	SliceBottomNearLeft
	SliceBottomCenter
	SliceBottomNearRight
	SliceLeftNearTop
	SliceLeftCenter
	SliceLeftNearBottom
	SliceRightNearTop
	SliceRightCenter
	SliceRightNearBottom
)

const numSlices = 18

// sliceMask is a bitmask of active Slice values; only active slices
// contribute quads.
type sliceMask uint32

func (m sliceMask) has(s Slice) bool { return m&(1<<uint(s)) != 0 }

func maskOf(active ...Slice) sliceMask {
	var m sliceMask
	for _, s := range active {
		m |= 1 << uint(s)
	}
	return m
}

// Frame is a nine-slice widget: a background spanning the whole widget, a
// middle spanning the interior, stretched corners, and tiled/stretched
// side pieces, computed from fixed pixel margins.
type Frame struct {
	*Widget

	MarginLeft, MarginTop, MarginRight, MarginBottom float64
	// TransitionSize is the fixed pixel length of each side's two
	// transition pieces, measured along the side's long axis.
	TransitionSize float64

	Textures map[Slice]string
	active   sliceMask
}

// NewFrame returns a Frame with margins and the named textures active;
// entries absent from textures are treated as inactive slices.
func NewFrame(name string, marginLeft, marginTop, marginRight, marginBottom, transitionSize float64, textures map[Slice]string) *Frame {
	var active []Slice
	for s := range textures {
		active = append(active, s)
	}
	return &Frame{
		Widget:         NewWidget(name),
		MarginLeft:     marginLeft,
		MarginTop:      marginTop,
		MarginRight:    marginRight,
		MarginBottom:   marginBottom,
		TransitionSize: transitionSize,
		Textures:       textures,
		active:         maskOf(active...),
	}
}

// Quads computes this frame's nine-slice quads against its current
// calculated layout. Only active slices contribute a quad.
func (f *Frame) Quads() []Quad {
	r := f.CalculatedLayout()
	left, top, right, bottom := f.MarginLeft, f.MarginTop, f.MarginRight, f.MarginBottom
	t := f.TransitionSize

	innerMinX, innerMinY := r.MinX+left, r.MinY+top
	innerMaxX, innerMaxY := r.MaxX-right, r.MaxY-bottom

	var quads []Quad
	add := func(s Slice, bounds Rect) {
		if !f.active.has(s) {
			return
		}
		quads = append(quads, Quad{Bounds: bounds, Texture: f.Textures[s]})
	}

	add(SliceBackground, r)
	add(SliceMiddle, Rect{innerMinX, innerMinY, innerMaxX, innerMaxY})

	add(SliceTopLeft, Rect{r.MinX, r.MinY, innerMinX, innerMinY})
	add(SliceTopRight, Rect{innerMaxX, r.MinY, r.MaxX, innerMinY})
	add(SliceBottomLeft, Rect{r.MinX, innerMaxY, innerMinX, r.MaxY})
	add(SliceBottomRight, Rect{innerMaxX, innerMaxY, r.MaxX, r.MaxY})

	add(SliceTopNearLeft, Rect{innerMinX, r.MinY, innerMinX + t, innerMinY})
	add(SliceTopNearRight, Rect{innerMaxX - t, r.MinY, innerMaxX, innerMinY})
	add(SliceTopCenter, Rect{innerMinX + t, r.MinY, innerMaxX - t, innerMinY})

	add(SliceBottomNearLeft, Rect{innerMinX, innerMaxY, innerMinX + t, r.MaxY})
	add(SliceBottomNearRight, Rect{innerMaxX - t, innerMaxY, innerMaxX, r.MaxY})
	add(SliceBottomCenter, Rect{innerMinX + t, innerMaxY, innerMaxX - t, r.MaxY})

	add(SliceLeftNearTop, Rect{r.MinX, innerMinY, innerMinX, innerMinY + t})
	add(SliceLeftNearBottom, Rect{r.MinX, innerMaxY - t, innerMinX, innerMaxY})
	add(SliceLeftCenter, Rect{r.MinX, innerMinY + t, innerMinX, innerMaxY - t})

	add(SliceRightNearTop, Rect{innerMaxX, innerMinY, r.MaxX, innerMinY + t})
	add(SliceRightNearBottom, Rect{innerMaxX, innerMaxY - t, r.MaxX, innerMaxY})
	add(SliceRightCenter, Rect{innerMaxX, innerMinY + t, r.MaxX, innerMaxY - t})

	return quads
}
