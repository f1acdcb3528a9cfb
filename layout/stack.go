// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/render"
)

// Stack holds any number of children and shows exactly one of them,
// the active element. Its minimum size covers every child so that
// switching between them doesn't change the layout.
type Stack struct {
	ContainerBase
	current Element
}

func NewStack() *Stack {
	s := new(Stack)
	s.Init(s)
	return s
}

// AddElement appends e. The first child becomes the active element.
func (s *Stack) AddElement(e Element) error {
	if err := s.ContainerBase.AddElement(e); err != nil {
		return err
	}
	if s.current == nil {
		s.current = e
	}
	return nil
}

// InsertElement inserts e before the n'th child. The first child
// becomes the active element.
func (s *Stack) InsertElement(n int, e Element) error {
	if err := s.ContainerBase.InsertElement(n, e); err != nil {
		return err
	}
	if s.current == nil {
		s.current = e
	}
	return nil
}

func (s *Stack) RemoveElement(e Element) error {
	if err := s.ContainerBase.RemoveElement(e); err != nil {
		return err
	}
	if s.current == e {
		s.current = s.NthElement(0)
	}
	return nil
}

// ActiveElement returns the shown child, or nil.
func (s *Stack) ActiveElement() Element { return s.current }

// SetActiveElement shows e, which must be a child.
func (s *Stack) SetActiveElement(e Element) error {
	if e == nil || e.Base().parent != Container(s) {
		return s.report("SetActiveElement", ErrNotChild)
	}
	if s.current != e {
		if s.current != nil {
			deactivate(s.current, 0)
		}
		s.current = e
		s.Invalidate()
	}
	return nil
}

func (s *Stack) MinSize() geom.Size {
	var sz geom.Size
	for _, k := range s.kids {
		min := k.MinSize()
		if !min.Valid() {
			return min
		}
		sz = sz.Max(padded(k, min))
	}
	return sz
}

func (s *Stack) Layout(r geom.Rect) {
	s.SetRect(r)
	if k := s.current; k != nil && isShown(k, 0) {
		min := k.MinSize()
		k.Layout(Place(k, min, r, s.just))
	}
}

func (s *Stack) Draw(r render.Renderer) error {
	if k := s.current; k != nil && isShown(k, 0) {
		if err := k.Draw(r); err != nil {
			return err
		}
	}
	s.Drawn()
	return nil
}

func (s *Stack) CaptureEvent(ev event.Event) Capture {
	if s.current == nil {
		return NotCaptured
	}
	return s.deliver([]Element{s.current}, ev, false)
}

// CelGroup layers its children on top of each other, each in the full
// rectangle of the group. The last child added is on top and gets
// events first.
type CelGroup struct {
	ContainerBase
}

func NewCelGroup() *CelGroup {
	c := new(CelGroup)
	c.Init(c)
	return c
}

func (c *CelGroup) MinSize() geom.Size {
	var sz geom.Size
	for _, k := range c.visible() {
		min := k.MinSize()
		if !min.Valid() {
			return min
		}
		sz = sz.Max(padded(k, min))
	}
	return sz
}

func (c *CelGroup) Layout(r geom.Rect) {
	c.SetRect(r)
	for _, k := range c.visible() {
		k.Layout(Place(k, k.MinSize(), r, c.just))
	}
}

func (c *CelGroup) Draw(r render.Renderer) error {
	return c.drawChildren(r)
}

func (c *CelGroup) CaptureEvent(ev event.Event) Capture {
	return c.deliver(c.kids, ev, true)
}
