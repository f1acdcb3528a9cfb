// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"celui.org/geom"
	"celui.org/render"
)

// Frame draws a border and an optional background around a single
// child.
type Frame struct {
	SingleBase
	border      int
	borderColor color.Color
	background  color.Color
}

// NewFrame returns a frame with a border of width w.
func NewFrame(w int, c color.Color) *Frame {
	f := &Frame{border: max(w, 0), borderColor: c}
	f.Init(f)
	f.shownIfEmpty = true
	return f
}

func (f *Frame) SetBorder(w int, c color.Color) {
	f.border, f.borderColor = max(w, 0), c
	f.Invalidate()
}

// SetBackground sets the color the frame interior is cleared to. Nil
// leaves the interior untouched.
func (f *Frame) SetBackground(c color.Color) {
	f.background = c
	f.Invalidate()
}

func (f *Frame) MinSize() geom.Size {
	b := 2 * f.border
	k := f.Element()
	if k == nil || !isShown(k, 0) {
		return geom.Size{W: b, H: b}
	}
	min := k.MinSize()
	if !min.Valid() {
		return min
	}
	return padded(k, min).Add(geom.Size{W: b, H: b})
}

func (f *Frame) Layout(r geom.Rect) {
	f.SetRect(r)
	k := f.Element()
	if k == nil || !isShown(k, 0) {
		return
	}
	inner := r.Inset(f.border, f.border, f.border, f.border)
	k.Layout(Place(k, k.MinSize(), inner, f.just))
}

func (f *Frame) Draw(r render.Renderer) error {
	rect := f.Rect()
	if f.background != nil {
		r.SetDrawColor(f.background)
		if err := r.FillRect(rect.Image()); err != nil {
			return err
		}
	}
	if b := f.border; b > 0 && f.borderColor != nil {
		w, h := rect.Size.W, rect.Size.H
		x, y := rect.Min.X, rect.Min.Y
		r.SetDrawColor(f.borderColor)
		for _, s := range []geom.Rect{
			geom.R(x, y, w, min(b, h)),
			geom.R(x, y+h-min(b, h), w, min(b, h)),
			geom.R(x, y, min(b, w), h),
			geom.R(x+w-min(b, w), y, min(b, w), h),
		} {
			if err := r.FillRect(s.Image()); err != nil {
				return err
			}
		}
	}
	return f.drawChildren(r)
}
