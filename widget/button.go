// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/layout"
	"celui.org/render"
	"celui.org/text"
)

// Button is a clickable label on a background. It highlights while the
// pointer hovers it and can be activated from the keyboard while it
// has focus.
type Button struct {
	layout.ElementBase
	label   *Label
	inset   int
	handler layout.Handler

	Background color.Color
	HoverColor color.Color
}

// NewButton returns a button labeled txt that calls h when clicked.
func NewButton(shaper text.Service, txt string, h layout.Handler) *Button {
	b := &Button{
		label:      NewLabel(shaper, txt),
		inset:      4,
		handler:    h,
		Background: color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		HoverColor: color.NRGBA{R: 0xcc, G: 0xcc, B: 0xee, A: 0xff},
	}
	b.Init(b)
	b.SetOnClick(h)
	return b
}

// Label returns the label drawn inside the button.
func (b *Button) Label() *Label { return b.label }

func (b *Button) SetInset(n int) {
	b.inset = max(n, 0)
	b.Invalidate()
}

func (b *Button) MinSize() geom.Size {
	sz := b.label.MinSize()
	if !sz.Valid() {
		return sz
	}
	return sz.Add(geom.Sz(2*b.inset, 2*b.inset))
}

func (b *Button) Layout(r geom.Rect) {
	b.SetRect(r)
	inner := r.Inset(b.inset, b.inset, b.inset, b.inset)
	b.label.Layout(layout.Place(b.label, b.label.MinSize(), inner, layout.Justification{}))
}

func (b *Button) Draw(r render.Renderer) error {
	b.Drawn()
	bg := b.Background
	if b.Hover() && b.HoverColor != nil {
		bg = b.HoverColor
	}
	if bg != nil {
		r.SetDrawColor(bg)
		if err := r.FillRect(b.Rect().Image()); err != nil {
			return err
		}
	}
	return b.label.Draw(r)
}

func (b *Button) CaptureEvent(ev event.Event) layout.Capture {
	if ke, ok := ev.(key.Event); ok {
		w := b.Window()
		if b.handler == nil || w == nil || w.Focused() != layout.Element(b) || !ke.IsActivate() {
			return layout.NotCaptured
		}
		if b.handler(b, ev) == layout.ObjectFreed {
			return layout.ObjectFreed
		}
		return layout.Captured
	}
	return b.ElementBase.CaptureEvent(ev)
}

func (b *Button) Destroy() {
	b.label.Destroy()
	b.ElementBase.Destroy()
}
