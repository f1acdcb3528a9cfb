// SPDX-License-Identifier: Unlicense OR MIT

package menu

import (
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/pointer"
	"celui.org/layout"
	"celui.org/render"
)

// Bar is an element showing top level items left to right. Open
// submenus are drawn outside the bar rectangle; place the bar last in a
// layout.CelGroup to keep them on top.
type Bar struct {
	layout.ElementBase
	Items []*Item
	style *Style
}

// NewBar returns a bar of items drawn with st.
func NewBar(st *Style, items ...*Item) *Bar {
	b := &Bar{Items: items, style: st}
	b.Init(b)
	return b
}

func (b *Bar) MinSize() geom.Size {
	var sz geom.Size
	for _, it := range b.Items {
		m := it.MinSize(b.style)
		if !m.Valid() {
			return m
		}
		sz.W += m.W
		sz.H = max(sz.H, m.H)
	}
	return sz
}

func (b *Bar) Draw(r render.Renderer) error {
	b.Drawn()
	rect := b.Rect()
	if err := fill(r, rect, b.style.Background); err != nil {
		return err
	}
	x := rect.Min.X
	for _, it := range b.Items {
		w := it.MinSize(b.style).W
		if err := it.Render(r, geom.R(x, rect.Min.Y, w, rect.Size.H), b.style, 0); err != nil {
			return err
		}
		x += w
	}
	return nil
}

// Open returns the open top level item, or nil.
func (b *Bar) Open() *Item {
	for _, it := range b.Items {
		if it.Open {
			return it
		}
	}
	return nil
}

func (b *Bar) CaptureEvent(ev event.Event) layout.Capture {
	for _, it := range b.Items {
		switch c := it.Capture(ev); c {
		case layout.ObjectFreed:
			return c
		case layout.Captured:
			for _, o := range b.Items {
				if o != it && o.Open {
					o.Close()
				}
			}
			b.Invalidate()
			return c
		}
	}
	// A press anywhere else dismisses the open menu.
	if pe, ok := ev.(pointer.Event); ok && pe.Kind == pointer.Press {
		if open := b.Open(); open != nil && !open.contains(pe.At()) {
			open.Close()
			b.Invalidate()
		}
	}
	return layout.NotCaptured
}
