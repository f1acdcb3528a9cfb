// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"celui.org/geom"
	"celui.org/layout"
	"celui.org/render"
)

// Fill paints its rectangle in a single color.
type Fill struct {
	layout.ElementBase
	color color.Color
	min   geom.Size
}

// NewFill returns a fill of color c with a minimum size of w by h.
func NewFill(c color.Color, w, h int) *Fill {
	f := &Fill{color: c, min: geom.Sz(max(w, 0), max(h, 0))}
	f.Init(f)
	return f
}

func (f *Fill) SetColor(c color.Color) {
	f.color = c
	f.Invalidate()
}

func (f *Fill) SetMinSize(sz geom.Size) {
	f.min = sz.Max(geom.Size{})
	f.Invalidate()
}

func (f *Fill) MinSize() geom.Size { return f.min }

func (f *Fill) Draw(r render.Renderer) error {
	f.Drawn()
	if f.color == nil {
		return nil
	}
	r.SetDrawColor(f.color)
	return r.FillRect(f.Rect().Image())
}
