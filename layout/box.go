// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"celui.org/geom"
	"celui.org/render"
)

// Group lays out its children in a single row (HGroup) or column
// (VGroup). Children marked to fill along the axis share the space left
// after every child got its minimum.
type Group struct {
	ContainerBase
	axis    Axis
	spacing int
}

// flexChild is a visible child with its measured minimum, padding
// included on both axes.
type flexChild struct {
	e     Element
	min   geom.Size
	main  int
	cross int
	fill  bool
	scale float64
}

// NewHGroup returns a Group that lays out children left to right.
func NewHGroup() *Group {
	return newGroup(Horizontal)
}

// NewVGroup returns a Group that lays out children top to bottom.
func NewVGroup() *Group {
	return newGroup(Vertical)
}

func newGroup(a Axis) *Group {
	g := &Group{axis: a}
	g.Init(g)
	return g
}

// Axis returns the layout direction.
func (g *Group) Axis() Axis { return g.axis }

// SetSpacing sets the gap between adjacent children.
func (g *Group) SetSpacing(s int) {
	g.spacing = max(s, 0)
	g.Invalidate()
}

func (g *Group) MinSize() geom.Size {
	return flexMinSize(g.axis, g.visible(), g.spacing)
}

func (g *Group) Layout(r geom.Rect) {
	g.SetRect(r)
	flexLayout(g.axis, g.visible(), r, g.spacing, g.just)
}

func (g *Group) Draw(r render.Renderer) error {
	return g.drawChildren(r)
}

// measure collects the padded minimums of kids. An invalid child size
// is returned as the error sentinel.
func measure(a Axis, kids []Element) ([]flexChild, geom.Size) {
	items := make([]flexChild, 0, len(kids))
	for _, k := range kids {
		min := k.MinSize()
		if !min.Valid() {
			return nil, min
		}
		p := padded(k, min)
		cfg := k.Base().cfg
		it := flexChild{e: k, min: min, main: axisMain(a, p), cross: axisCross(a, p)}
		if a == Horizontal {
			it.fill, it.scale = cfg.HFill, scale(cfg.HScale)
		} else {
			it.fill, it.scale = cfg.VFill, scale(cfg.VScale)
		}
		items = append(items, it)
	}
	return items, geom.Size{}
}

func flexMinSize(a Axis, kids []Element, spacing int) geom.Size {
	items, bad := measure(a, kids)
	if !bad.Valid() {
		return bad
	}
	var maxFill, main, cross int
	for _, it := range items {
		if it.fill {
			maxFill = max(maxFill, it.main)
		}
		cross = max(cross, it.cross)
	}
	for _, it := range items {
		if it.fill {
			main += int(math.Ceil(it.scale * float64(maxFill)))
		} else {
			main += it.main
		}
	}
	if n := len(items); n > 1 {
		main += (n - 1) * spacing
	}
	return axisSize(a, main, cross)
}

func flexLayout(a Axis, kids []Element, r geom.Rect, spacing int, def Justification) {
	items, bad := measure(a, kids)
	if !bad.Valid() {
		return
	}
	sizes := make([]int, len(items))
	fill := make([]bool, len(items))
	free := axisMain(a, r.Size)
	for i, it := range items {
		sizes[i], fill[i] = it.main, it.fill
		free -= it.main
	}
	if n := len(items); n > 1 {
		free -= (n - 1) * spacing
	}
	distribute(sizes, fill, free)
	pos := axisStart(a, r.Min)
	for i, it := range items {
		cell := axisRect(a, r, pos, sizes[i])
		it.e.Layout(Place(it.e, it.min, cell, def))
		pos += sizes[i] + spacing
	}
}
