// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ui

// Scrollbar is an up-button, a down-button, a track frame, and a
// draggable track-button child, tracking an integer position in [Min,
// Max].
type Scrollbar struct {
	*Widget

	Up, Down *Widget
	Track    *Frame
	Button   *Widget

	Min, Max, Step int
	position       int

	listeners []func(position int)
}

// NewScrollbar returns a Scrollbar over [min, max] at min, stepping by
// step on each Up/Down press.
func NewScrollbar(name string, min, max, step int) *Scrollbar {
	sb := &Scrollbar{
		Widget: NewWidget(name),
		Up:     NewWidget(name + "-up"),
		Down:   NewWidget(name + "-down"),
		Button: NewWidget(name + "-button"),
		Min:    min, Max: max, Step: step,
		position: min,
	}
	sb.Track = NewFrame(name+"-track", 0, 0, 0, 0, 0, nil)
	sb.AddChild(sb.Up)
	sb.AddChild(sb.Down)
	sb.AddChild(sb.Track.Widget)
	sb.AddChild(sb.Button)

	sb.Up.PreEvent = func(w *Widget, e Event) {
		if e.Kind == MouseDown {
			sb.SetPosition(sb.position - sb.Step)
		}
	}
	sb.Down.PreEvent = func(w *Widget, e Event) {
		if e.Kind == MouseDown {
			sb.SetPosition(sb.position + sb.Step)
		}
	}
	return sb
}

// Position returns the current scroll position.
func (sb *Scrollbar) Position() int { return sb.position }

// SetPosition clamps position to [Min, Max], updates the track-button
// offset, and notifies listeners on change.
func (sb *Scrollbar) SetPosition(position int) {
	if position < sb.Min {
		position = sb.Min
	}
	if position > sb.Max {
		position = sb.Max
	}
	if position == sb.position {
		return
	}
	sb.position = position
	sb.layoutButton()
	for _, l := range sb.listeners {
		l(sb.position)
	}
}

// OnChange registers a callback invoked whenever SetPosition changes the
// position.
func (sb *Scrollbar) OnChange(l func(position int)) { sb.listeners = append(sb.listeners, l) }

// trackHeight returns the track frame's current pixel height.
func (sb *Scrollbar) trackHeight() float64 { return sb.Track.CalculatedLayout().Height() }

// buttonHeight returns the track-button's current pixel height.
func (sb *Scrollbar) buttonHeight() float64 { return sb.Button.CalculatedLayout().Height() }

// layoutButton places the track-button's vertical offset within the track
// per lerp(0, trackHeight-buttonHeight, (position-min)/(max-min)).
func (sb *Scrollbar) layoutButton() {
	span := sb.Max - sb.Min
	if span == 0 {
		return
	}
	ratio := float64(sb.position-sb.Min) / float64(span)
	offset := lerp(0, sb.trackHeight()-sb.buttonHeight(), ratio)
	track := sb.Track.CalculatedLayout()
	h := sb.buttonHeight()
	sb.Button.calculatedLayout = Rect{
		MinX: track.MinX, MinY: track.MinY + offset,
		MaxX: track.MaxX, MaxY: track.MinY + offset + h,
	}
}

// DragTo computes the reverse mapping from a drag's vertical offset within
// the track (0 at the top) to a clamped scroll position, and applies it.
func (sb *Scrollbar) DragTo(offset float64) {
	span := sb.trackHeight() - sb.buttonHeight()
	if span <= 0 {
		return
	}
	ratio := offset / span
	sb.SetPosition(sb.Min + int(ratio*float64(sb.Max-sb.Min)+0.5))
}
