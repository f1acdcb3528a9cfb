// SPDX-License-Identifier: Unlicense OR MIT

/*
Package menu implements drop-down menus as a tree of Items.

Menu trees are not elements: they measure, draw and capture events
recursively on their own, with open submenus drawn as popups over
whatever lies below them. A Bar hosts a menu tree in an element tree.
Top level submenus open below their item, nested ones to the right.
*/
package menu

import (
	"image"
	"image/color"

	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/pointer"
	"celui.org/layout"
	"celui.org/render"
	"celui.org/text"
)

// Padding is the space around item labels.
const Padding = 4

// Item is an entry of a menu. Items with children open a submenu when
// clicked; items without call OnSelect and close the menu.
type Item struct {
	Label    string
	Children []*Item
	Open     bool
	Disabled bool
	// OnSelect is called when a leaf item is clicked. It returns
	// layout.ObjectFreed if it destroyed part of the interface.
	OnSelect func(it *Item) layout.Capture

	rect  geom.Rect
	popup geom.Rect
}

// Style holds what menus are drawn with.
type Style struct {
	Shaper     text.Service
	Font       text.Font
	Foreground color.Color
	Background color.Color
	Highlight  color.Color
	Border     color.Color
}

// DefaultStyle returns a style drawing with shaper.
func DefaultStyle(shaper text.Service) *Style {
	return &Style{
		Shaper:     shaper,
		Font:       text.Font{Typeface: text.DefaultTypeface, Size: text.DefaultSize},
		Foreground: color.NRGBA{A: 0xff},
		Background: color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Highlight:  color.NRGBA{R: 0xc0, G: 0xd0, B: 0xf0, A: 0xff},
		Border:     color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// New returns an item with the given children.
func New(label string, children ...*Item) *Item {
	return &Item{Label: label, Children: children}
}

// Rect returns where the item was drawn by the last Render.
func (it *Item) Rect() geom.Rect { return it.rect }

// MinSize returns the size of the item label including padding.
func (it *Item) MinSize(st *Style) geom.Size {
	if st == nil || st.Shaper == nil {
		return geom.SizeNoFont
	}
	sz, err := st.Shaper.Measure(st.Font, it.Label)
	if err != nil {
		return geom.SizeNoFont
	}
	return geom.Sz(sz.X+2*Padding, sz.Y+2*Padding)
}

// popupSize returns the size of the submenu: as wide as the widest
// child and as tall as all children.
func (it *Item) popupSize(st *Style) geom.Size {
	var sz geom.Size
	for _, c := range it.Children {
		m := c.MinSize(st)
		if !m.Valid() {
			return m
		}
		sz.W = max(sz.W, m.W)
		sz.H += m.H
	}
	return sz
}

// Close closes the item and its open descendants.
func (it *Item) Close() {
	it.Open = false
	for _, c := range it.Children {
		if c.Open {
			c.Close()
		}
	}
}

// Render draws the item in r and, when it is open, its submenu. Depth
// zero items open their submenu below r, others to the right of r.
func (it *Item) Render(rd render.Renderer, r geom.Rect, st *Style, depth int) error {
	it.rect = r
	bg := st.Background
	if it.Open {
		bg = st.Highlight
	}
	if err := fill(rd, r, bg); err != nil {
		return err
	}
	if err := drawLabel(rd, r, st, it.Label, it.Disabled); err != nil {
		return err
	}
	if !it.Open || len(it.Children) == 0 || depth >= layout.MaxDepth {
		return nil
	}
	sz := it.popupSize(st)
	if !sz.Valid() {
		return sz.Err()
	}
	at := geom.Loc(r.Min.X, r.Min.Y+r.Size.H)
	if depth > 0 {
		at = geom.Loc(r.Min.X+r.Size.W, r.Min.Y)
	}
	it.popup = geom.Rect{Min: at, Size: sz}
	if err := fill(rd, it.popup.Inset(-1, -1, -1, -1), st.Border); err != nil {
		return err
	}
	y := at.Y
	for _, c := range it.Children {
		h := c.MinSize(st).H
		if err := c.Render(rd, geom.R(at.X, y, sz.W, h), st, depth+1); err != nil {
			return err
		}
		y += h
	}
	return nil
}

// Capture offers ev to the open submenus, deepest first, and then to
// the item itself.
func (it *Item) Capture(ev event.Event) layout.Capture {
	c, _ := it.capture(ev, 0)
	return c
}

// capture reports whether a leaf was picked so that the open chain
// above it closes.
func (it *Item) capture(ev event.Event, depth int) (layout.Capture, bool) {
	if depth > layout.MaxDepth {
		return layout.NotCaptured, false
	}
	if it.Open {
		for _, c := range it.Children {
			switch r, picked := c.capture(ev, depth+1); r {
			case layout.ObjectFreed:
				return r, picked
			case layout.Captured:
				if picked {
					it.Open = false
				} else {
					// Opening one submenu closes its siblings.
					for _, o := range it.Children {
						if o != c && o.Open {
							o.Close()
						}
					}
				}
				return r, picked
			}
		}
	}
	pe, ok := ev.(pointer.Event)
	if !ok || pe.Kind != pointer.Press || it.Disabled || !it.rect.Contains(pe.At()) {
		return layout.NotCaptured, false
	}
	if len(it.Children) > 0 {
		if it.Open {
			it.Close()
		} else {
			it.Open = true
		}
		return layout.Captured, false
	}
	if it.OnSelect != nil && it.OnSelect(it) == layout.ObjectFreed {
		return layout.ObjectFreed, true
	}
	return layout.Captured, true
}

// contains reports whether p lies on the item or one of its open
// popups.
func (it *Item) contains(x, y int) bool {
	if it.rect.Contains(x, y) {
		return true
	}
	if !it.Open {
		return false
	}
	if it.popup.Contains(x, y) {
		return true
	}
	for _, c := range it.Children {
		if c.contains(x, y) {
			return true
		}
	}
	return false
}

func fill(rd render.Renderer, r geom.Rect, c color.Color) error {
	if c == nil {
		return nil
	}
	rd.SetDrawColor(c)
	return rd.FillRect(r.Image())
}

func drawLabel(rd render.Renderer, r geom.Rect, st *Style, label string, disabled bool) error {
	if st.Shaper == nil || label == "" {
		return nil
	}
	fg := st.Foreground
	if disabled {
		fg = st.Border
	}
	img, err := st.Shaper.Rasterize(st.Font, label, fg)
	if err != nil {
		return err
	}
	t, err := rd.NewTexture(img)
	if err != nil {
		return err
	}
	defer t.Release()
	at := r.Min.Point().Add(image.Pt(Padding, Padding))
	rd.PushClip(r.Image())
	defer rd.PopClip()
	return rd.Copy(t, image.Rectangle{Min: at, Max: at.Add(t.Size())})
}
