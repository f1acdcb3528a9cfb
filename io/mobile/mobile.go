// SPDX-License-Identifier: Unlicense OR MIT

/*
Package mobile converts the events delivered by golang.org/x/mobile and
golang.org/x/exp/shiny window drivers into the events element trees
understand.
*/
package mobile

import (
	"time"
	"unicode"

	"celui.org/f32"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/io/pointer"

	mkey "golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
)

// Converter tracks the pointer button state needed to tell drags from
// moves. The zero value is ready to use and timestamps events with the
// time since its first use.
type Converter struct {
	// Now returns the event timestamp. Defaults to a monotonic clock.
	Now func() time.Duration

	start   time.Time
	buttons pointer.Buttons
}

// Convert translates e. It reports false for events with no counterpart.
func (c *Converter) Convert(e interface{}) (event.Event, bool) {
	switch e := e.(type) {
	case mouse.Event:
		return c.mouse(e)
	case mkey.Event:
		return convertKey(e)
	case size.Event:
		return event.FrameEvent{Width: e.WidthPx, Height: e.HeightPx}, true
	}
	return nil, false
}

func (c *Converter) now() time.Duration {
	if c.Now != nil {
		return c.Now()
	}
	if c.start.IsZero() {
		c.start = time.Now()
	}
	return time.Since(c.start)
}

func (c *Converter) mouse(e mouse.Event) (event.Event, bool) {
	pe := pointer.Event{
		Time:      c.now(),
		Position:  f32.Pt(e.X, e.Y),
		Modifiers: convertMods(e.Modifiers),
	}
	if e.Button.IsWheel() {
		if e.Direction != mouse.DirPress && e.Direction != mouse.DirStep {
			return nil, false
		}
		pe.Kind = pointer.Scroll
		switch e.Button {
		case mouse.ButtonWheelUp:
			pe.Scroll.Y = -1
		case mouse.ButtonWheelDown:
			pe.Scroll.Y = 1
		case mouse.ButtonWheelLeft:
			pe.Scroll.X = -1
		case mouse.ButtonWheelRight:
			pe.Scroll.X = 1
		}
		pe.Buttons = c.buttons
		return pe, true
	}
	btn := convertButton(e.Button)
	switch e.Direction {
	case mouse.DirPress:
		c.buttons |= btn
		pe.Kind = pointer.Press
	case mouse.DirRelease:
		c.buttons &^= btn
		pe.Kind = pointer.Release
	default:
		if c.buttons != 0 {
			pe.Kind = pointer.Drag
		} else {
			pe.Kind = pointer.Move
		}
	}
	pe.Buttons = c.buttons | btn
	if pe.Kind == pointer.Release {
		pe.Buttons = btn
	}
	return pe, true
}

func convertButton(b mouse.Button) pointer.Buttons {
	switch b {
	case mouse.ButtonLeft:
		return pointer.ButtonPrimary
	case mouse.ButtonRight:
		return pointer.ButtonSecondary
	case mouse.ButtonMiddle:
		return pointer.ButtonTertiary
	}
	return 0
}

func convertMods(m mkey.Modifiers) key.Modifiers {
	var r key.Modifiers
	if m&mkey.ModShift != 0 {
		r |= key.ModShift
	}
	if m&mkey.ModControl != 0 {
		r |= key.ModCtrl
	}
	if m&mkey.ModAlt != 0 {
		r |= key.ModAlt
	}
	if m&mkey.ModMeta != 0 {
		r |= key.ModSuper
	}
	return r
}

func convertKey(e mkey.Event) (event.Event, bool) {
	var st key.State
	switch e.Direction {
	case mkey.DirPress, mkey.DirNone:
		st = key.Press
	case mkey.DirRelease:
		st = key.Release
	default:
		return nil, false
	}
	n, ok := keyNames[e.Code]
	if !ok {
		if e.Rune <= 0 || !unicode.IsPrint(e.Rune) {
			return nil, false
		}
		n = key.Name(string(unicode.ToUpper(e.Rune)))
	}
	return key.Event{Name: n, Modifiers: convertMods(e.Modifiers), State: st}, true
}

var keyNames = map[mkey.Code]key.Name{
	mkey.CodeLeftArrow:       key.NameLeftArrow,
	mkey.CodeRightArrow:      key.NameRightArrow,
	mkey.CodeUpArrow:         key.NameUpArrow,
	mkey.CodeDownArrow:       key.NameDownArrow,
	mkey.CodeReturnEnter:     key.NameReturn,
	mkey.CodeKeypadEnter:     key.NameEnter,
	mkey.CodeEscape:          key.NameEscape,
	mkey.CodeHome:            key.NameHome,
	mkey.CodeEnd:             key.NameEnd,
	mkey.CodeDeleteBackspace: key.NameDeleteBackward,
	mkey.CodeDeleteForward:   key.NameDeleteForward,
	mkey.CodePageUp:          key.NamePageUp,
	mkey.CodePageDown:        key.NamePageDown,
	mkey.CodeTab:             key.NameTab,
	mkey.CodeSpacebar:        key.NameSpace,
}
