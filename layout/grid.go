// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"golang.org/x/exp/slices"

	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/render"
)

// GridLayout arranges children in a fixed number of columns and rows.
// Each column is as wide as its widest child and each row as tall as
// its tallest; columns or rows holding a filling child share the slack.
// Cells are stored row major and may be empty.
type GridLayout struct {
	ContainerBase
	xDim, yDim int
	square     bool
	hspacing   int
	vspacing   int

	colX, colW []int
	rowY, rowH []int
}

// NewGridLayout returns a grid of x columns and y rows.
func NewGridLayout(x, y int) *GridLayout {
	g := new(GridLayout)
	g.Init(g)
	g.resize(x, y)
	return g
}

func (g *GridLayout) resize(x, y int) {
	g.xDim, g.yDim = max(x, 0), max(y, 0)
	g.kids = make([]Element, g.xDim*g.yDim)
	g.colX, g.colW = nil, nil
	g.rowY, g.rowH = nil, nil
}

// Dimensions returns the number of columns and rows.
func (g *GridLayout) Dimensions() (int, int) { return g.xDim, g.yDim }

// SetDimensions destroys the children and resizes the grid.
func (g *GridLayout) SetDimensions(x, y int) {
	if x < 0 || y < 0 {
		g.report("SetDimensions", fmt.Errorf("%w: %dx%d", geom.ErrBadSize, x, y))
	}
	for _, k := range g.kids {
		if k != nil {
			k.Base().parent = nil
			k.Destroy()
		}
	}
	g.resize(x, y)
	g.Invalidate()
}

// SetSquare makes every cell as wide and tall as the largest child.
func (g *GridLayout) SetSquare(square bool) {
	g.square = square
	g.Invalidate()
}

func (g *GridLayout) SetSpacing(h, v int) {
	g.hspacing, g.vspacing = max(h, 0), max(v, 0)
	g.Invalidate()
}

// SetElementAt places e in column x, row y. A previous occupant is
// destroyed. A nil e empties the cell.
func (g *GridLayout) SetElementAt(x, y int, e Element) error {
	i, err := g.index("SetElementAt", x, y)
	if err != nil {
		return err
	}
	if e != nil {
		if err := g.adopt("SetElementAt", e); err != nil {
			return err
		}
	}
	if old := g.kids[i]; old != nil {
		g.kids[i] = nil
		g.detach(old)
		old.Destroy()
	}
	g.kids[i] = e
	if e != nil {
		g.attach(e)
	}
	g.Invalidate()
	return nil
}

// ElementAt returns the child in column x, row y, or nil.
func (g *GridLayout) ElementAt(x, y int) Element {
	if x < 0 || y < 0 || x >= g.xDim || y >= g.yDim {
		return nil
	}
	return g.kids[y*g.xDim+x]
}

// ElementPos returns the cell of e.
func (g *GridLayout) ElementPos(e Element) (x, y int, ok bool) {
	if e == nil || g.xDim == 0 {
		return 0, 0, false
	}
	i := slices.Index(g.kids, e)
	if i < 0 {
		return 0, 0, false
	}
	return i % g.xDim, i / g.xDim, true
}

// AddElement places e in the first empty cell.
func (g *GridLayout) AddElement(e Element) error {
	if e == nil {
		return g.report("AddElement", ErrNilChild)
	}
	i := slices.Index(g.kids, nil)
	if i < 0 {
		return g.report("AddElement", ErrFull)
	}
	return g.SetElementAt(i%g.xDim, i/g.xDim, e)
}

// InsertElement places e in the n'th cell in row major order. The cell
// must be empty; cells never shift.
func (g *GridLayout) InsertElement(n int, e Element) error {
	if e == nil {
		return g.report("InsertElement", ErrNilChild)
	}
	if n < 0 || n >= len(g.kids) {
		return g.report("InsertElement", fmt.Errorf("layout: cell %d outside %dx%d grid", n, g.xDim, g.yDim))
	}
	if g.kids[n] != nil {
		return g.report("InsertElement", ErrFull)
	}
	return g.SetElementAt(n%g.xDim, n/g.xDim, e)
}

func (g *GridLayout) RemoveElement(e Element) error {
	i := -1
	if e != nil {
		i = slices.Index(g.kids, e)
	}
	if i < 0 {
		return g.report("RemoveElement", ErrNotChild)
	}
	g.kids[i] = nil
	g.detach(e)
	return nil
}

// CellRect returns the cell rectangle computed by the last Layout.
func (g *GridLayout) CellRect(x, y int) geom.Rect {
	if x < 0 || y < 0 || x >= len(g.colX) || y >= len(g.rowY) {
		return geom.Rect{}
	}
	return geom.R(g.colX[x], g.rowY[y], g.colW[x], g.rowH[y])
}

func (g *GridLayout) IsShown() bool {
	return g.shownAt(0)
}

func (g *GridLayout) shownAt(depth int) bool {
	if !g.ElementBase.IsShown() || len(g.kids) == 0 {
		return false
	}
	if depth >= MaxDepth {
		g.report("IsShown", ErrRunaway)
		return false
	}
	for _, k := range g.kids {
		if k != nil && isShown(k, depth+1) {
			return true
		}
	}
	return false
}

func (g *GridLayout) index(op string, x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.xDim || y >= g.yDim {
		return 0, g.report(op, fmt.Errorf("layout: cell %d,%d outside %dx%d grid", x, y, g.xDim, g.yDim))
	}
	return y*g.xDim + x, nil
}

// gridMeasure holds per column and row minimums and fill flags.
type gridMeasure struct {
	colW, rowH []int
	colF, rowF []bool
	mins       []geom.Size
	largest    int
	anyFill    bool
}

func (g *GridLayout) measure() (gridMeasure, geom.Size) {
	m := gridMeasure{
		colW: make([]int, g.xDim), rowH: make([]int, g.yDim),
		colF: make([]bool, g.xDim), rowF: make([]bool, g.yDim),
		mins: make([]geom.Size, len(g.kids)),
	}
	for i, k := range g.kids {
		if k == nil || !isShown(k, 1) {
			continue
		}
		min := k.MinSize()
		if !min.Valid() {
			return m, min
		}
		m.mins[i] = min
		p := padded(k, min)
		x, y := i%g.xDim, i/g.xDim
		m.colW[x] = max(m.colW[x], p.W)
		m.rowH[y] = max(m.rowH[y], p.H)
		cfg := k.Base().cfg
		m.colF[x] = m.colF[x] || cfg.HFill
		m.rowF[y] = m.rowF[y] || cfg.VFill
		m.anyFill = m.anyFill || cfg.HFill || cfg.VFill
		m.largest = max(m.largest, p.W, p.H)
	}
	if g.square {
		for i := range m.colW {
			m.colW[i] = m.largest
		}
		for i := range m.rowH {
			m.rowH[i] = m.largest
		}
	}
	return m, geom.Size{}
}

func (g *GridLayout) MinSize() geom.Size {
	if g.xDim == 0 || g.yDim == 0 {
		return geom.Size{}
	}
	m, bad := g.measure()
	if !bad.Valid() {
		return bad
	}
	return geom.Size{
		W: sum(m.colW) + (g.xDim-1)*g.hspacing,
		H: sum(m.rowH) + (g.yDim-1)*g.vspacing,
	}
}

func (g *GridLayout) Layout(r geom.Rect) {
	g.SetRect(r)
	if g.xDim == 0 || g.yDim == 0 {
		return
	}
	m, bad := g.measure()
	if !bad.Valid() {
		return
	}
	freeH := r.Size.W - sum(m.colW) - (g.xDim-1)*g.hspacing
	freeV := r.Size.H - sum(m.rowH) - (g.yDim-1)*g.vspacing
	if g.square {
		if m.anyFill && freeH > 0 && freeV > 0 {
			grow := min(freeH/g.xDim, freeV/g.yDim)
			for i := range m.colW {
				m.colW[i] += grow
			}
			for i := range m.rowH {
				m.rowH[i] += grow
			}
		}
	} else {
		distribute(m.colW, m.colF, freeH)
		distribute(m.rowH, m.rowF, freeV)
	}
	g.colW, g.rowH = m.colW, m.rowH
	g.colX = offsets(r.Min.X, m.colW, g.hspacing)
	g.rowY = offsets(r.Min.Y, m.rowH, g.vspacing)
	for i, k := range g.kids {
		if k == nil || !isShown(k, 1) {
			continue
		}
		x, y := i%g.xDim, i/g.xDim
		k.Layout(Place(k, m.mins[i], g.CellRect(x, y), g.just))
	}
}

func (g *GridLayout) Draw(r render.Renderer) error {
	for _, k := range g.kids {
		if k == nil || !isShown(k, 1) {
			continue
		}
		if err := k.Draw(r); err != nil {
			return err
		}
	}
	g.Drawn()
	return nil
}

func (g *GridLayout) CaptureEvent(ev event.Event) Capture {
	return g.deliver(g.kids, ev, false)
}

func offsets(start int, sizes []int, spacing int) []int {
	pos := make([]int, len(sizes))
	for i, s := range sizes {
		pos[i] = start
		start += s + spacing
	}
	return pos
}

func sum(v []int) int {
	var s int
	for _, x := range v {
		s += x
	}
	return s
}
