// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the element tree: the contract every node
implements, the box model containers apply to their children, and the
propagation of input events through the tree.

Each frame runs in two phases. MinSize pulls natural sizes bottom-up;
Layout pushes concrete rectangles top-down and stores them in each
element's ElementBase. Draw then paints the stored geometry. Running
Layout without Draw computes geometry without side effects.

Events are offered children first. Layered containers offer them in
reverse insertion order so that the topmost child gets first refusal.
A Capture of ObjectFreed means a handler destroyed an element while the
event was in flight; callers must return immediately without touching
the subtree again.
*/
package layout

import (
	"celui.org/diag"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/render"
)

// MaxDepth bounds the recursion of tree walks that may run into a
// cyclic or pathologically deep tree.
const MaxDepth = 256

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Justify is the alignment of an element within space larger than
// itself, along one axis.
type Justify uint8

const (
	// JustifyDefault defers to the container default.
	JustifyDefault Justify = iota
	// Start is left or top.
	Start
	Center
	// End is right or bottom.
	End
)

// Justification is a pair of per axis justifications.
type Justification struct {
	H, V Justify
}

// Capture is the result of offering an event to an element.
type Capture uint8

const (
	NotCaptured Capture = iota
	Captured
	// ObjectFreed reports that a handler destroyed an element during
	// event handling.
	ObjectFreed
)

// Element is a node of the tree.
type Element interface {
	// MinSize returns the smallest size the element can be drawn at,
	// excluding its own padding. A negative size is an error sentinel
	// from package geom.
	MinSize() geom.Size
	// Layout assigns the final rectangle of the element and lays out
	// its children.
	Layout(r geom.Rect)
	// Draw paints the geometry computed by the last Layout.
	Draw(r render.Renderer) error
	// CaptureEvent offers an event to the element and its children.
	CaptureEvent(ev event.Event) Capture
	// Defocus is called when explicit focus moves away from the element.
	Defocus()
	// IsShown reports whether the element takes part in layout.
	IsShown() bool
	// Destroy frees the element and its children and detaches it from
	// its parent.
	Destroy()
	// Base returns the state shared by all elements.
	Base() *ElementBase
}

// Container is an element with children.
type Container interface {
	Element
	// NthElement returns the n'th child slot, or nil.
	NthElement(n int) Element
	// ElementCount returns the number of child slots.
	ElementCount() int
	// RemoveElement detaches e without destroying it.
	RemoveElement(e Element) error
}

// Window is the root an element tree is attached to.
type Window interface {
	// Invalidate requests a new frame.
	Invalidate()
	// Focus moves explicit focus to e.
	Focus(e Element)
	// Focused returns the element with explicit focus, if any.
	Focused() Element
	// Diag returns the sink structural errors are reported to.
	Diag() *diag.Sink
}

// Render lays out e in r and draws it.
func Render(e Element, r geom.Rect, rd render.Renderer) error {
	e.Layout(r)
	return e.Draw(rd)
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (j Justify) String() string {
	switch j {
	case JustifyDefault:
		return "Default"
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

func (c Capture) String() string {
	switch c {
	case NotCaptured:
		return "NotCaptured"
	case Captured:
		return "Captured"
	case ObjectFreed:
		return "ObjectFreed"
	default:
		panic("unreachable")
	}
}

func axisMain(a Axis, sz geom.Size) int {
	if a == Horizontal {
		return sz.W
	}
	return sz.H
}

func axisCross(a Axis, sz geom.Size) int {
	if a == Horizontal {
		return sz.H
	}
	return sz.W
}

func axisSize(a Axis, main, cross int) geom.Size {
	if a == Horizontal {
		return geom.Size{W: main, H: cross}
	}
	return geom.Size{W: cross, H: main}
}

func axisRect(a Axis, r geom.Rect, mainPos, mainSize int) geom.Rect {
	if a == Horizontal {
		return geom.R(mainPos, r.Min.Y, mainSize, r.Size.H)
	}
	return geom.R(r.Min.X, mainPos, r.Size.W, mainSize)
}

func axisStart(a Axis, l geom.Location) int {
	if a == Horizontal {
		return l.X
	}
	return l.Y
}
