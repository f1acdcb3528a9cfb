// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the marker type for input events delivered
// to element trees.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// FrameEvent asks the receiver to lay itself out and draw. It is produced
// by window backends when the window size changes or a redraw is due.
type FrameEvent struct {
	Width, Height int
}

func (FrameEvent) ImplementsEvent() {}
