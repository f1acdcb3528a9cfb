// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"celui.org/geom"
	"celui.org/render"
)

// FillOrder is the direction a FlowGroup fills rows and the direction
// rows follow each other.
type FillOrder uint8

// LeftToRight and TopToBottom are the zero order; the other orders are
// bits that combine.
const (
	LeftToRight FillOrder = 0
	TopToBottom FillOrder = 0
	RightToLeft FillOrder = 1 << 0
	BottomToTop FillOrder = 1 << 1
)

// FlowGroup packs children greedily into rows that wrap at the width it
// is given.
type FlowGroup struct {
	ContainerBase
	hspacing, vspacing int
	order              FillOrder
	prefWidth          int
}

type flowRow struct {
	items  []flexChild
	width  int
	height int
}

func NewFlowGroup() *FlowGroup {
	f := new(FlowGroup)
	f.Init(f)
	return f
}

func (f *FlowGroup) SetSpacing(h, v int) {
	f.hspacing, f.vspacing = max(h, 0), max(v, 0)
	f.Invalidate()
}

// SetFillOrder sets the row and item direction. Orders other than
// LeftToRight|TopToBottom mirror the packed rows within the group.
func (f *FlowGroup) SetFillOrder(o FillOrder) {
	f.order = o
	f.Invalidate()
}

// SetPreferredWidth sets the width MinSize packs rows to. Zero places
// all children on one row.
func (f *FlowGroup) SetPreferredWidth(w int) {
	f.prefWidth = max(w, 0)
	f.Invalidate()
}

// pack breaks items into rows no wider than width. A row always holds at
// least one item.
func (f *FlowGroup) pack(items []flexChild, width int) []flowRow {
	var rows []flowRow
	var cur flowRow
	for _, it := range items {
		w := it.main
		if len(cur.items) > 0 {
			w += f.hspacing
		}
		if len(cur.items) > 0 && cur.width+w > width {
			rows = append(rows, cur)
			cur = flowRow{}
			w = it.main
		}
		cur.items = append(cur.items, it)
		cur.width += w
		cur.height = max(cur.height, it.cross)
	}
	if len(cur.items) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

func (f *FlowGroup) extent(rows []flowRow) geom.Size {
	var sz geom.Size
	for i, r := range rows {
		sz.W = max(sz.W, r.width)
		sz.H += r.height
		if i > 0 {
			sz.H += f.vspacing
		}
	}
	return sz
}

func (f *FlowGroup) MinSize() geom.Size {
	items, bad := measure(Horizontal, f.visible())
	if !bad.Valid() {
		return bad
	}
	width := int(^uint(0) >> 1)
	if f.prefWidth > 0 {
		width = f.prefWidth
	}
	return f.extent(f.pack(items, width))
}

func (f *FlowGroup) Layout(r geom.Rect) {
	f.SetRect(r)
	items, bad := measure(Horizontal, f.visible())
	if !bad.Valid() {
		return
	}
	rows := f.pack(items, r.Size.W)
	y := r.Min.Y
	for _, row := range rows {
		x := r.Min.X
		for _, it := range row.items {
			cell := geom.R(x, y, min(it.main, r.Size.W), row.height)
			pr := Place(it.e, it.min, cell, f.just)
			if f.order&RightToLeft != 0 {
				pr.Min.X = 2*r.Min.X + r.Size.W - pr.Min.X - pr.Size.W
			}
			if f.order&BottomToTop != 0 {
				pr.Min.Y = 2*r.Min.Y + r.Size.H - pr.Min.Y - pr.Size.H
			}
			it.e.Layout(pr)
			x += it.main + f.hspacing
		}
		y += row.height + f.vspacing
	}
}

func (f *FlowGroup) Draw(r render.Renderer) error {
	return f.drawChildren(r)
}
