// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"celui.org/geom"
	"celui.org/layout"
	"celui.org/render"
)

// Line is a horizontal or vertical rule. Its minimum size is its
// thickness across the axis; containers stretch it along the axis by
// making it fill.
type Line struct {
	layout.ElementBase
	axis      layout.Axis
	thickness int
	color     color.Color
}

// NewLine returns a rule along axis a.
func NewLine(a layout.Axis, thickness int, c color.Color) *Line {
	l := &Line{axis: a, thickness: max(thickness, 1), color: c}
	l.Init(l)
	if a == layout.Horizontal {
		l.SetFill(true, false)
	} else {
		l.SetFill(false, true)
	}
	return l
}

func (l *Line) MinSize() geom.Size {
	if l.axis == layout.Horizontal {
		return geom.Sz(0, l.thickness)
	}
	return geom.Sz(l.thickness, 0)
}

func (l *Line) Draw(r render.Renderer) error {
	l.Drawn()
	rect := l.Rect()
	if l.color == nil || rect.Empty() {
		return nil
	}
	r.SetDrawColor(l.color)
	// Center the rule across the axis.
	if l.axis == layout.Horizontal {
		t := min(l.thickness, rect.Size.H)
		y := rect.Min.Y + (rect.Size.H-t)/2
		if t == 1 {
			return r.DrawLine(image.Pt(rect.Min.X, y), image.Pt(rect.Min.X+rect.Size.W-1, y))
		}
		return r.FillRect(image.Rect(rect.Min.X, y, rect.Min.X+rect.Size.W, y+t))
	}
	t := min(l.thickness, rect.Size.W)
	x := rect.Min.X + (rect.Size.W-t)/2
	if t == 1 {
		return r.DrawLine(image.Pt(x, rect.Min.Y), image.Pt(x, rect.Min.Y+rect.Size.H-1))
	}
	return r.FillRect(image.Rect(x, rect.Min.Y, x+t, rect.Min.Y+rect.Size.H))
}
