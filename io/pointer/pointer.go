// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer defines mouse events as elements receive them.
package pointer

import (
	"fmt"
	"strings"
	"time"

	"celui.org/f32"
	"celui.org/io/key"
)

// Event is a mouse event. Position is in window coordinates until an
// element that transforms its children, such as a Transformer, maps it
// into the child's space.
type Event struct {
	Kind Kind
	// Time is relative to an arbitrary base and only meaningful
	// when compared with other events.
	Time time.Duration
	// Buttons held during the event. For Press and Release it includes
	// the button that changed.
	Buttons   Buttons
	Position  f32.Point
	Scroll    f32.Point
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint8

const (
	Press Kind = iota
	Release
	// Move is motion with no buttons held.
	Move
	// Drag is motion with at least one button held.
	Drag
	// Scroll is wheel motion. Positive Y scrolls down.
	Scroll
)

var kindNames = [...]string{"Press", "Release", "Move", "Drag", "Scroll"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// ButtonPrimary is usually the left button.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is usually the right button.
	ButtonSecondary
	// ButtonTertiary is the middle button or wheel click.
	ButtonTertiary
)

// Contain reports whether every button of buttons is in b.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var names []string
	for i, n := range []string{"Primary", "Secondary", "Tertiary"} {
		if b&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "+")
}

// At returns the pixel the event position falls in.
func (e Event) At() (int, int) {
	p := e.Position.Floor()
	return p.X, p.Y
}

// Primary reports whether e is a press of the primary button.
func (e Event) Primary() bool {
	return e.Kind == Press && e.Buttons.Contain(ButtonPrimary)
}

func (Event) ImplementsEvent() {}
