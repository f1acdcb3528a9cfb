// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"
	"time"

	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/io/pointer"
	"celui.org/render"
)

// DoubleClickTimeout is the default maximum delay between the clicks of
// a double click.
const DoubleClickTimeout = 500 * time.Millisecond

// ListColors are the colors of list rows.
type ListColors struct {
	Even, Odd, Selected color.Color
}

var defaultListColors = ListColors{
	Even:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Odd:      color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	Selected: color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff},
}

// ListRow is a selectable row of cells laid out left to right. Rows
// only live inside a ListGroup.
type ListRow struct {
	ContainerBase
	group      *ListGroup
	spacing    int
	odd        bool
	pressed    bool
	clicked    bool
	lastClick  time.Duration
	onActivate Handler
}

// NewListRow returns a row holding cells.
func NewListRow(cells ...Element) *ListRow {
	r := new(ListRow)
	r.Init(r)
	r.shownIfEmpty = true
	r.cfg.HFill = true
	for _, c := range cells {
		r.AddElement(c)
	}
	return r
}

// SetOnActivate installs the handler called on double click or when an
// activation key is pressed while the row is selected.
func (r *ListRow) SetOnActivate(h Handler) {
	r.onActivate = h
}

func (r *ListRow) SetSpacing(s int) {
	r.spacing = max(s, 0)
	r.Invalidate()
}

// SetSelected selects or deselects the row. Selecting a row through
// its group deselects the other rows.
func (r *ListRow) SetSelected(sel bool) {
	if r.selected == sel {
		return
	}
	r.selected = sel
	r.Invalidate()
}

func (r *ListRow) MinSize() geom.Size {
	return flexMinSize(Horizontal, r.visible(), r.spacing)
}

func (r *ListRow) Layout(rect geom.Rect) {
	r.SetRect(rect)
	flexLayout(Horizontal, r.visible(), rect, r.spacing, r.just)
}

func (r *ListRow) colors() ListColors {
	if r.group != nil {
		return r.group.colors
	}
	return defaultListColors
}

func (r *ListRow) Draw(rd render.Renderer) error {
	c := r.colors()
	bg := c.Even
	switch {
	case r.selected:
		bg = c.Selected
	case r.odd:
		bg = c.Odd
	}
	if bg != nil {
		rd.SetDrawColor(bg)
		if err := rd.FillRect(r.Rect().Image()); err != nil {
			return err
		}
	}
	return r.drawChildren(rd)
}

func (r *ListRow) doubleClick() time.Duration {
	if r.group != nil && r.group.doubleClick > 0 {
		return r.group.doubleClick
	}
	return DoubleClickTimeout
}

// Defocus forgets a pending click but keeps the selection.
func (r *ListRow) Defocus() {
	r.pressed = false
	r.clicked = false
	r.lastClick = 0
}

func (r *ListRow) activate(ev event.Event) Capture {
	if r.onActivate == nil {
		return Captured
	}
	if r.onActivate(r, ev) == ObjectFreed {
		return ObjectFreed
	}
	return Captured
}

func (r *ListRow) CaptureEvent(ev event.Event) Capture {
	switch c := r.deliver(r.kids, ev, false); c {
	case ObjectFreed, Captured:
		return c
	}
	switch e := ev.(type) {
	case pointer.Event:
		inside := r.Rect().Contains(e.At())
		switch e.Kind {
		case pointer.Press:
			if !inside || !e.Buttons.Contain(pointer.ButtonPrimary) {
				return NotCaptured
			}
			r.pressed = true
			r.active = true
			if r.selected && r.clicked && e.Time-r.lastClick <= r.doubleClick() {
				r.clicked = false
				return r.activate(ev)
			}
			r.clicked = true
			r.lastClick = e.Time
			r.SetSelected(true)
			if r.onClick != nil && r.onClick(r, ev) == ObjectFreed {
				return ObjectFreed
			}
			return Captured
		case pointer.Release:
			if !r.pressed {
				return NotCaptured
			}
			r.pressed = false
			if inside {
				return Captured
			}
		}
	case key.Event:
		if r.selected && e.IsActivate() && r.isFocused() {
			return r.activate(ev)
		}
	}
	return NotCaptured
}

func (r *ListRow) isFocused() bool {
	if r.window != nil {
		return r.window.Focused() == Element(r)
	}
	return r.active
}

// ListGroup is a vertical list of ListRows inside a border. At most one
// row is selected; the arrow keys move the selection while the group is
// active, and the mouse wheel scrolls by whole rows.
type ListGroup struct {
	ContainerBase
	border      int
	borderColor color.Color
	colors      ListColors
	doubleClick time.Duration
	visibleRows int
	top         int
}

func NewListGroup() *ListGroup {
	l := &ListGroup{border: 1, borderColor: color.NRGBA{A: 0xff}, colors: defaultListColors}
	l.Init(l)
	l.shownIfEmpty = true
	return l
}

func (l *ListGroup) SetBorder(w int, c color.Color) {
	l.border, l.borderColor = max(w, 0), c
	l.Invalidate()
}

func (l *ListGroup) SetColors(c ListColors) {
	l.colors = c
	l.Invalidate()
}

// SetDoubleClick sets the double click timeout of the rows.
func (l *ListGroup) SetDoubleClick(d time.Duration) {
	l.doubleClick = d
}

// SetVisibleRows limits the minimum height to the first n rows. Zero
// makes every row part of the minimum height.
func (l *ListGroup) SetVisibleRows(n int) {
	l.visibleRows = max(n, 0)
	l.Invalidate()
}

// AddRow appends a row of cells and returns it.
func (l *ListGroup) AddRow(cells ...Element) *ListRow {
	r := NewListRow(cells...)
	l.AddElement(r)
	return r
}

// AddElement appends e, which must be a *ListRow.
func (l *ListGroup) AddElement(e Element) error {
	r, ok := e.(*ListRow)
	if !ok {
		return l.report("AddElement", ErrWrongType)
	}
	if err := l.ContainerBase.AddElement(r); err != nil {
		return err
	}
	l.adopted(r)
	return nil
}

// InsertElement inserts e, which must be a *ListRow, before the n'th
// row.
func (l *ListGroup) InsertElement(n int, e Element) error {
	r, ok := e.(*ListRow)
	if !ok {
		return l.report("InsertElement", ErrWrongType)
	}
	if err := l.ContainerBase.InsertElement(n, r); err != nil {
		return err
	}
	l.adopted(r)
	return nil
}

func (l *ListGroup) adopted(r *ListRow) {
	r.group = l
	l.stripe()
}

func (l *ListGroup) RemoveElement(e Element) error {
	if err := l.ContainerBase.RemoveElement(e); err != nil {
		return err
	}
	if r, ok := e.(*ListRow); ok {
		r.group = nil
	}
	l.stripe()
	l.top = min(l.top, max(len(l.kids)-1, 0))
	return nil
}

func (l *ListGroup) stripe() {
	for i, k := range l.kids {
		k.(*ListRow).odd = i%2 == 1
	}
}

// Row returns the n'th row, or nil.
func (l *ListGroup) Row(n int) *ListRow {
	if k := l.NthElement(n); k != nil {
		return k.(*ListRow)
	}
	return nil
}

// Selected returns the index of the selected row, or -1.
func (l *ListGroup) Selected() int {
	for i, k := range l.kids {
		if k.Base().selected {
			return i
		}
	}
	return -1
}

// Select selects the n'th row and deselects the others. A negative n
// clears the selection.
func (l *ListGroup) Select(n int) {
	for i, k := range l.kids {
		k.(*ListRow).SetSelected(i == n)
	}
	if n >= 0 && n < len(l.kids) {
		l.scrollTo(n)
	}
}

// Top returns the index of the first visible row.
func (l *ListGroup) Top() int { return l.top }

// Scroll moves the first visible row by n rows.
func (l *ListGroup) Scroll(n int) {
	top := min(max(l.top+n, 0), max(len(l.kids)-1, 0))
	if top != l.top {
		l.top = top
		l.Invalidate()
	}
}

// scrollTo scrolls the minimum amount that brings row n into view.
func (l *ListGroup) scrollTo(n int) {
	if n < l.top {
		l.Scroll(n - l.top)
		return
	}
	inner := l.inner()
	if inner.Size.H <= 0 {
		return
	}
	for l.top < n {
		h := 0
		for i := l.top; i <= n; i++ {
			h += l.rowHeight(i)
		}
		if h <= inner.Size.H {
			return
		}
		l.Scroll(1)
	}
}

func (l *ListGroup) rowHeight(i int) int {
	k := l.kids[i]
	if !isShown(k, 0) {
		return 0
	}
	min := k.MinSize()
	if !min.Valid() {
		return 0
	}
	return padded(k, min).H
}

func (l *ListGroup) inner() geom.Rect {
	b := l.border
	return l.Rect().Inset(b, b, b, b)
}

func (l *ListGroup) MinSize() geom.Size {
	kids := l.visible()
	sz := flexMinSize(Vertical, kids, 0)
	if !sz.Valid() {
		return sz
	}
	if n := l.visibleRows; n > 0 && len(kids) > n {
		sz.H = flexMinSize(Vertical, kids[:n], 0).H
	}
	return sz.Add(geom.Size{W: 2 * l.border, H: 2 * l.border})
}

func (l *ListGroup) Layout(r geom.Rect) {
	l.SetRect(r)
	inner := l.inner()
	var off int
	for i := 0; i < l.top && i < len(l.kids); i++ {
		off += l.rowHeight(i)
	}
	content := flexMinSize(Vertical, l.visible(), 0)
	h := max(inner.Size.H+off, content.H)
	flexLayout(Vertical, l.visible(), geom.R(inner.Min.X, inner.Min.Y-off, inner.Size.W, h), 0, l.just)
}

func (l *ListGroup) Draw(rd render.Renderer) error {
	r := l.Rect()
	if b := l.border; b > 0 && l.borderColor != nil {
		rd.SetDrawColor(l.borderColor)
		if err := rd.FillRect(r.Image()); err != nil {
			return err
		}
	}
	inner := l.inner()
	if c := l.colors.Even; c != nil {
		rd.SetDrawColor(c)
		if err := rd.FillRect(inner.Image()); err != nil {
			return err
		}
	}
	rd.PushClip(inner.Image())
	defer rd.PopClip()
	clip := inner.Image()
	for _, k := range l.kids {
		if !isShown(k, 0) || !k.Base().Rect().Image().Overlaps(clip) {
			continue
		}
		if err := k.Draw(rd); err != nil {
			return err
		}
	}
	l.Drawn()
	return nil
}

func (l *ListGroup) CaptureEvent(ev event.Event) Capture {
	switch e := ev.(type) {
	case pointer.Event:
		inside := l.inner().Contains(e.At())
		switch e.Kind {
		case pointer.Scroll:
			if !inside || e.Scroll.Y == 0 {
				return NotCaptured
			}
			if e.Scroll.Y > 0 {
				l.Scroll(1)
			} else {
				l.Scroll(-1)
			}
			return Captured
		case pointer.Press:
			if !inside {
				return NotCaptured
			}
		}
	case key.Event:
		if c := l.deliver(l.kids, ev, false); c != NotCaptured {
			return c
		}
		return l.key(e)
	}
	prev := l.Selected()
	for i, k := range l.kids {
		if !isShown(k, 0) {
			continue
		}
		switch k.CaptureEvent(ev) {
		case ObjectFreed:
			return ObjectFreed
		case Captured:
			if k.Base().selected && i != prev {
				l.exclusive(i)
			}
			l.activate(k)
			if _, ok := ev.(pointer.Event); ok && l.window != nil && k.Base().selected {
				l.window.Focus(k)
			}
			return Captured
		}
	}
	return NotCaptured
}

// exclusive deselects every row but n.
func (l *ListGroup) exclusive(n int) {
	for i, k := range l.kids {
		if i != n {
			k.(*ListRow).SetSelected(false)
		}
	}
}

func (l *ListGroup) key(e key.Event) Capture {
	if !l.active || e.State != key.Press || len(l.kids) == 0 {
		return NotCaptured
	}
	n := l.Selected()
	switch e.Name {
	case key.NameUpArrow:
		n = max(n-1, 0)
	case key.NameDownArrow:
		n = min(n+1, len(l.kids)-1)
	default:
		return NotCaptured
	}
	l.Select(n)
	row := l.kids[n]
	l.activate(row)
	if w := l.window; w != nil {
		w.Focus(row)
	}
	return Captured
}
