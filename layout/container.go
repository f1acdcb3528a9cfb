// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"golang.org/x/exp/slices"

	"celui.org/io/event"
	"celui.org/render"
)

// ContainerBase is the state shared by containers: a dense list of
// children, the default justification of children and the visibility
// policy for empty containers.
type ContainerBase struct {
	ElementBase
	kids         []Element
	just         Justification
	shownIfEmpty bool
}

func (c *ContainerBase) container() Container {
	return c.element().(Container)
}

// SetChildJustify sets the justification used for children that don't
// specify their own.
func (c *ContainerBase) SetChildJustify(h, v Justify) {
	c.just = Justification{H: h, V: v}
	c.Invalidate()
}

// SetShownIfEmpty makes the container visible even without children.
func (c *ContainerBase) SetShownIfEmpty(show bool) {
	c.shownIfEmpty = show
	c.Invalidate()
}

func (c *ContainerBase) IsShown() bool {
	return c.ElementBase.IsShown() && (len(c.kids) > 0 || c.shownIfEmpty)
}

func (c *ContainerBase) NthElement(n int) Element {
	if n < 0 || n >= len(c.kids) {
		return nil
	}
	return c.kids[n]
}

func (c *ContainerBase) ElementCount() int { return len(c.kids) }

// AddElement appends e to the children.
func (c *ContainerBase) AddElement(e Element) error {
	if err := c.adopt("AddElement", e); err != nil {
		return err
	}
	c.kids = append(c.kids, e)
	c.attach(e)
	return nil
}

// InsertElement inserts e before the n'th child.
func (c *ContainerBase) InsertElement(n int, e Element) error {
	if n < 0 || n > len(c.kids) {
		return c.report("InsertElement", fmt.Errorf("layout: index %d out of range", n))
	}
	if err := c.adopt("InsertElement", e); err != nil {
		return err
	}
	c.kids = slices.Insert(c.kids, n, e)
	c.attach(e)
	return nil
}

func (c *ContainerBase) RemoveElement(e Element) error {
	i := slices.Index(c.kids, e)
	if i < 0 {
		return c.report("RemoveElement", ErrNotChild)
	}
	c.kids = slices.Delete(c.kids, i, i+1)
	c.detach(e)
	return nil
}

// Destroy destroys the children and then the container.
func (c *ContainerBase) Destroy() {
	if c.freed {
		return
	}
	kids := c.kids
	c.kids = nil
	for _, k := range kids {
		if k != nil {
			k.Base().parent = nil
			k.Destroy()
		}
	}
	c.ElementBase.Destroy()
}

// Defocus clears transient interaction state of the children.
func (c *ContainerBase) Defocus() {}

// SingleBase is the ContainerBase of containers holding at most one
// child.
type SingleBase struct {
	ContainerBase
}

// AddElement sets e as the child of an empty container.
func (c *SingleBase) AddElement(e Element) error {
	if len(c.kids) > 0 {
		return c.report("AddElement", ErrFull)
	}
	return c.ContainerBase.AddElement(e)
}

// InsertElement is AddElement for index 0.
func (c *SingleBase) InsertElement(n int, e Element) error {
	if len(c.kids) > 0 {
		return c.report("InsertElement", ErrFull)
	}
	return c.ContainerBase.InsertElement(n, e)
}

// SetElement replaces the child. The previous child is destroyed; nil
// leaves the container empty.
func (c *SingleBase) SetElement(e Element) error {
	if e != nil {
		if err := c.adopt("SetElement", e); err != nil {
			return err
		}
	}
	old := c.kids
	c.kids = nil
	for _, k := range old {
		c.detach(k)
		k.Destroy()
	}
	if e != nil {
		c.kids = append(c.kids, e)
		c.attach(e)
	}
	c.Invalidate()
	return nil
}

// Element returns the child, or nil.
func (c *SingleBase) Element() Element {
	return c.NthElement(0)
}

// adopt validates that e may become a child.
func (c *ContainerBase) adopt(op string, e Element) error {
	if e == nil {
		return c.report(op, ErrNilChild)
	}
	b := e.Base()
	if b.freed {
		return c.report(op, ErrFreed)
	}
	if b.parent != nil {
		return c.report(op, ErrHasParent)
	}
	self := c.element()
	var p Element = self
	for i := 0; p != nil && i <= MaxDepth; i++ {
		if p == e {
			return c.report(op, ErrCycle)
		}
		pp := p.Base().parent
		if pp == nil {
			break
		}
		p = pp
	}
	return nil
}

func (c *ContainerBase) attach(e Element) {
	e.Base().parent = c.container()
	if c.window != nil {
		setWindow(e, c.window, 0)
	}
	c.Invalidate()
}

func (c *ContainerBase) detach(e Element) {
	b := e.Base()
	b.parent = nil
	b.active = false
	c.Invalidate()
}

// visible returns the children that take part in layout.
func (c *ContainerBase) visible() []Element {
	var vis []Element
	for _, k := range c.kids {
		if isShown(k, 0) {
			vis = append(vis, k)
		}
	}
	return vis
}

// drawChildren draws the visible children in order.
func (c *ContainerBase) drawChildren(r render.Renderer) error {
	for _, k := range c.kids {
		if !isShown(k, 0) {
			continue
		}
		if err := k.Draw(r); err != nil {
			return err
		}
	}
	c.Drawn()
	return nil
}

// deliver offers ev to the visible children in order, or in reverse
// order, until one captures it. The capturing child and the container
// become active and the other children are deactivated.
func (c *ContainerBase) deliver(kids []Element, ev event.Event, reverse bool) Capture {
	for i := range kids {
		k := kids[i]
		if reverse {
			k = kids[len(kids)-1-i]
		}
		if k == nil || !isShown(k, 0) {
			continue
		}
		switch k.CaptureEvent(ev) {
		case ObjectFreed:
			return ObjectFreed
		case Captured:
			c.activate(k)
			return Captured
		}
	}
	return NotCaptured
}

// activate makes k the active child.
func (c *ContainerBase) activate(k Element) {
	for _, o := range c.kids {
		if o != nil && o != k {
			deactivate(o, 0)
		}
	}
	if kb := k.Base(); !kb.active {
		kb.active = true
		kb.Invalidate()
	}
	if !c.active {
		c.active = true
		c.Invalidate()
	}
}

func (c *ContainerBase) CaptureEvent(ev event.Event) Capture {
	return c.deliver(c.kids, ev, false)
}
