// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"

	"celui.org/diag"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/pointer"
)

// Config is the per element box model configuration.
type Config struct {
	PadLeft, PadRight, PadTop, PadBottom int
	// HFill and VFill make the element take the whole extent its
	// container offers along the axis.
	HFill, VFill bool
	// HScale and VScale weigh the minimum extent a filling element
	// contributes to its container.
	HScale, VScale float64
	// HJustify and VJustify position a non filling element within
	// its cell.
	HJustify, VJustify Justify
	Show               bool
}

// Handler is called by elements on user interaction. Handlers that
// destroy an element must return ObjectFreed.
type Handler func(e Element, ev event.Event) Capture

// ElementBase is the state shared by all elements. Element
// implementations embed it and call Init from their constructor.
type ElementBase struct {
	cfg     Config
	self    Element
	window  Window
	parent  Container
	onClick Handler

	size   geom.Size
	loc    geom.Location
	relLoc geom.Location

	redraw   bool
	active   bool
	selected bool
	hover    bool
	freed    bool
}

var (
	ErrHasParent = errors.New("layout: element already has a parent")
	ErrNilChild  = errors.New("layout: nil element")
	ErrCycle     = errors.New("layout: element would contain itself")
	ErrNotChild  = errors.New("layout: element is not a child")
	ErrFull      = errors.New("layout: container is full")
	ErrWrongType = errors.New("layout: wrong element type")
	ErrFreed     = errors.New("layout: element is freed")
	ErrRunaway   = errors.New("layout: runaway recursion")
)

// DefaultConfig returns the configuration of a new element: shown, no
// padding, no fill, unit scale and default justification.
func DefaultConfig() Config {
	return Config{HScale: 1, VScale: 1, Show: true}
}

// Init binds the base to the element that embeds it.
func (b *ElementBase) Init(self Element) {
	b.cfg = DefaultConfig()
	b.self = self
	b.redraw = true
}

func (b *ElementBase) Base() *ElementBase { return b }

// Config returns a copy of the element configuration.
func (b *ElementBase) Config() Config { return b.cfg }

// SetPadding sets the padding around the element. Negative values are
// clamped to zero and reported.
func (b *ElementBase) SetPadding(left, right, top, bottom int) {
	if left < 0 || right < 0 || top < 0 || bottom < 0 {
		b.report("SetPadding", fmt.Errorf("%w: negative padding %d,%d,%d,%d", geom.ErrBadSize, left, right, top, bottom))
	}
	b.cfg.PadLeft = max(left, 0)
	b.cfg.PadRight = max(right, 0)
	b.cfg.PadTop = max(top, 0)
	b.cfg.PadBottom = max(bottom, 0)
	b.Invalidate()
}

func (b *ElementBase) SetFill(h, v bool) {
	b.cfg.HFill, b.cfg.VFill = h, v
	b.Invalidate()
}

// SetScale sets the fill weights. Non positive weights reset to 1.
func (b *ElementBase) SetScale(h, v float64) {
	if h <= 0 {
		h = 1
	}
	if v <= 0 {
		v = 1
	}
	b.cfg.HScale, b.cfg.VScale = h, v
	b.Invalidate()
}

func (b *ElementBase) SetJustify(h, v Justify) {
	b.cfg.HJustify, b.cfg.VJustify = h, v
	b.Invalidate()
}

func (b *ElementBase) SetShown(show bool) {
	if b.cfg.Show == show {
		return
	}
	b.cfg.Show = show
	b.Invalidate()
}

// SetOnClick installs the handler called when the primary button is
// pressed inside the element. Leaves without a handler do not capture
// pointer events.
func (b *ElementBase) SetOnClick(h Handler) {
	b.onClick = h
}

func (b *ElementBase) IsShown() bool { return b.cfg.Show && !b.freed }

func (b *ElementBase) Defocus() {}

// Invalidate marks the element for redraw and requests a frame.
func (b *ElementBase) Invalidate() {
	b.redraw = true
	if b.window != nil {
		b.window.Invalidate()
	}
}

// NeedsRedraw reports whether the element changed since its last Draw.
func (b *ElementBase) NeedsRedraw() bool { return b.redraw }

// Drawn clears the redraw request. Draw implementations call it.
func (b *ElementBase) Drawn() { b.redraw = false }

// Layout stores r. Leaves use it as their Layout.
func (b *ElementBase) Layout(r geom.Rect) { b.SetRect(r) }

// SetRect stores the geometry assigned by the last layout.
func (b *ElementBase) SetRect(r geom.Rect) {
	b.size = r.Size
	b.loc = r.Min
	b.relLoc = r.Min
	if b.parent != nil {
		b.relLoc = r.Min.Sub(b.parent.Base().loc)
	}
}

// Rect returns the rectangle assigned by the last layout.
func (b *ElementBase) Rect() geom.Rect { return geom.Rect{Min: b.loc, Size: b.size} }

// Size returns the size assigned by the last layout.
func (b *ElementBase) Size() geom.Size { return b.size }

// Location returns the position assigned by the last layout. Inside a
// Transformer positions are relative to the transformer's local frame.
func (b *ElementBase) Location() geom.Location { return b.loc }

// RelativeLocation returns the position relative to the parent.
func (b *ElementBase) RelativeLocation() geom.Location { return b.relLoc }

func (b *ElementBase) Active() bool   { return b.active }
func (b *ElementBase) Selected() bool { return b.selected }
func (b *ElementBase) Hover() bool    { return b.hover }
func (b *ElementBase) Freed() bool    { return b.freed }

func (b *ElementBase) Window() Window    { return b.window }
func (b *ElementBase) Parent() Container { return b.parent }

// SetWindow attaches the element and its subtree to w.
func (b *ElementBase) SetWindow(w Window) {
	setWindow(b.element(), w, 0)
}

// Destroy marks the element freed and detaches it from its parent.
func (b *ElementBase) Destroy() {
	if b.freed {
		return
	}
	if p := b.parent; p != nil {
		p.RemoveElement(b.element())
	}
	b.freed = true
	b.window = nil
	b.onClick = nil
}

// CaptureEvent is the leaf behavior: it tracks hover and calls the click
// handler for presses inside the element.
func (b *ElementBase) CaptureEvent(ev event.Event) Capture {
	pe, ok := ev.(pointer.Event)
	if !ok {
		return NotCaptured
	}
	inside := b.Rect().Contains(pe.At())
	switch pe.Kind {
	case pointer.Move:
		if b.hover != inside {
			b.hover = inside
			b.Invalidate()
		}
	case pointer.Press:
		if inside && b.onClick != nil && pe.Buttons.Contain(pointer.ButtonPrimary) {
			b.active = true
			b.Invalidate()
			if c := b.onClick(b.element(), ev); c == ObjectFreed {
				return ObjectFreed
			}
			return Captured
		}
	}
	return NotCaptured
}

// Diag returns the sink of the attached window, or diag.Default.
func (b *ElementBase) Diag() *diag.Sink {
	if b.window != nil {
		if s := b.window.Diag(); s != nil {
			return s
		}
	}
	return diag.Default
}

func (b *ElementBase) report(op string, err error) error {
	return b.Diag().Report(op, err)
}

func (b *ElementBase) element() Element {
	if b.self == nil {
		panic("layout: ElementBase used before Init")
	}
	return b.self
}

func setWindow(e Element, w Window, depth int) {
	b := e.Base()
	b.window = w
	c, ok := e.(Container)
	if !ok {
		return
	}
	if depth >= MaxDepth {
		b.report("SetWindow", ErrRunaway)
		return
	}
	for i := 0; i < c.ElementCount(); i++ {
		if k := c.NthElement(i); k != nil {
			setWindow(k, w, depth+1)
		}
	}
}

// deactivate clears the active flag of e and its active descendants.
func deactivate(e Element, depth int) {
	b := e.Base()
	if !b.active || depth > MaxDepth {
		return
	}
	b.active = false
	b.Invalidate()
	if c, ok := e.(Container); ok {
		for i := 0; i < c.ElementCount(); i++ {
			if k := c.NthElement(i); k != nil {
				deactivate(k, depth+1)
			}
		}
	}
}

type depthShower interface {
	shownAt(depth int) bool
}

func isShown(e Element, depth int) bool {
	if e == nil {
		return false
	}
	if d, ok := e.(depthShower); ok {
		return d.shownAt(depth)
	}
	return e.IsShown()
}

func scale(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}
