// SPDX-License-Identifier: Unlicense OR MIT

// Package key defines keyboard and focus events.
package key

import "strings"

// Event is a key press or release. It goes to the focused element
// first and to the root when the focused element does not capture it.
type Event struct {
	Name      Name
	Modifiers Modifiers
	State     State
}

// FocusEvent tells an element it gained or lost focus.
type FocusEvent struct {
	Focus bool
}

// State of a key in an Event.
type State uint8

const (
	Press State = iota
	Release
)

func (s State) String() string {
	if s == Release {
		return "Release"
	}
	return "Press"
}

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	// ModSuper is the logo or command key.
	ModSuper
)

var modNames = [...]string{"Ctrl", "Shift", "Alt", "Super"}

// Contain reports whether every modifier of m2 is in m.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var names []string
	for i, n := range modNames {
		if m&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "+")
}

// Name identifies a key. Printable keys use their upper case
// character.
type Name string

const (
	NameLeftArrow      Name = "Left"
	NameRightArrow     Name = "Right"
	NameUpArrow        Name = "Up"
	NameDownArrow      Name = "Down"
	NameReturn         Name = "Return"
	NameEnter          Name = "Enter"
	NameEscape         Name = "Escape"
	NameHome           Name = "Home"
	NameEnd            Name = "End"
	NameDeleteBackward Name = "Backspace"
	NameDeleteForward  Name = "Delete"
	NamePageUp         Name = "PageUp"
	NamePageDown       Name = "PageDown"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
)

// Pressed reports whether e is a press of the named key.
func (e Event) Pressed(n Name) bool {
	return e.State == Press && e.Name == n
}

// IsActivate reports whether e presses Return, Enter or Space.
func (e Event) IsActivate() bool {
	return e.Pressed(NameReturn) || e.Pressed(NameEnter) || e.Pressed(NameSpace)
}

func (Event) ImplementsEvent()      {}
func (FocusEvent) ImplementsEvent() {}
