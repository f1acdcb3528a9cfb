// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"celui.org/diag"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/layout"
	"celui.org/render"
	"celui.org/text"
	"celui.org/theme"
)

// Window is the root of an element tree.
type Window struct {
	cfg     Config
	root    layout.Element
	focused layout.Element
	size    image.Point
	frames  int

	// redraw is set by Invalidate, which may be called from any
	// goroutine.
	redraw atomic.Bool
}

var _ layout.Window = (*Window)(nil)

// NewWindow creates a window for a set of options.
func NewWindow(options ...Option) *Window {
	defaultOptions := []Option{
		Size(800, 600),
		Title("celui"),
	}
	options = append(defaultOptions, options...)
	var cnf Config
	cnf.apply(options)
	if cnf.Theme == nil {
		cnf.Theme = theme.Default()
	}
	if cnf.Logger == nil {
		cnf.Logger = slog.Default()
	}
	if cnf.Shaper == nil {
		cnf.Shaper = text.NewShaper()
	}
	if cnf.Diag == nil {
		cnf.Diag = diag.New(cnf.Logger)
	}
	w := &Window{cfg: cnf}
	w.redraw.Store(true)
	return w
}

// Config returns the window configuration.
func (w *Window) Config() Config { return w.cfg }

// Theme returns the window theme.
func (w *Window) Theme() *theme.Theme { return w.cfg.Theme }

// Shaper returns the window text service.
func (w *Window) Shaper() text.Service { return w.cfg.Shaper }

// Diag returns the window diagnostics sink.
func (w *Window) Diag() *diag.Sink { return w.cfg.Diag }

// Root returns the root element.
func (w *Window) Root() layout.Element { return w.root }

// SetRoot replaces the root element. The previous root is detached but
// not destroyed.
func (w *Window) SetRoot(e layout.Element) {
	if w.root != nil {
		w.root.Base().SetWindow(nil)
	}
	w.root = e
	w.focused = nil
	if e != nil {
		e.Base().SetWindow(w)
	}
	w.Invalidate()
}

// Invalidate requests a new frame. It is safe for concurrent use.
func (w *Window) Invalidate() {
	w.redraw.Store(true)
}

// NeedsRedraw reports whether a frame is pending.
func (w *Window) NeedsRedraw() bool {
	return w.redraw.Load()
}

// Frames returns the number of frames drawn.
func (w *Window) Frames() int { return w.frames }

// Focused returns the element with explicit focus.
func (w *Window) Focused() layout.Element { return w.focused }

// Focus moves explicit focus to e, calling Defocus on the element that
// had it. A nil e clears the focus.
func (w *Window) Focus(e layout.Element) {
	if e == w.focused {
		return
	}
	prev := w.focused
	w.focused = e
	if prev != nil && !prev.Base().Freed() {
		prev.Defocus()
		prev.CaptureEvent(key.FocusEvent{Focus: false})
	}
	if e != nil {
		e.CaptureEvent(key.FocusEvent{Focus: true})
	}
	w.Invalidate()
}

// Frame lays out and draws the tree in the renderer bounds if a redraw
// is pending or the bounds changed since the last frame.
func (w *Window) Frame(r render.Renderer) error {
	b := r.Bounds()
	if !w.redraw.Load() && b.Size() == w.size {
		return nil
	}
	w.redraw.Store(false)
	w.size = b.Size()
	if bg := w.cfg.Theme.Background; bg.A > 0 {
		r.SetDrawColor(bg)
		if err := r.FillRect(b); err != nil {
			return fmt.Errorf("app: clear: %w", err)
		}
	}
	if w.root != nil && w.root.IsShown() {
		if min := w.root.MinSize(); !min.Valid() {
			w.cfg.Logger.Debug("root has no valid minimum size", "err", min.Err())
		}
		if err := layout.Render(w.root, geom.FromImage(b), r); err != nil {
			return fmt.Errorf("app: draw: %w", err)
		}
	}
	w.frames++
	return r.Present()
}

// Dispatch delivers ev to the tree.
func (w *Window) Dispatch(ev event.Event) layout.Capture {
	switch e := ev.(type) {
	case event.FrameEvent:
		if (image.Point{X: e.Width, Y: e.Height}) != w.size {
			w.Invalidate()
		}
		return layout.NotCaptured
	case key.Event:
		if f := w.focused; f != nil && !f.Base().Freed() {
			switch c := f.CaptureEvent(ev); c {
			case layout.Captured:
				return c
			case layout.ObjectFreed:
				w.freed()
				return c
			}
		}
	}
	if w.root == nil || !w.root.IsShown() {
		return layout.NotCaptured
	}
	c := w.root.CaptureEvent(ev)
	if c == layout.ObjectFreed {
		w.freed()
	}
	return c
}

// freed drops references to elements destroyed during dispatch.
func (w *Window) freed() {
	w.cfg.Logger.Debug("element freed during dispatch")
	if w.focused != nil && w.focused.Base().Freed() {
		w.focused = nil
	}
	if w.root != nil && w.root.Base().Freed() {
		w.root = nil
	}
	w.Invalidate()
}

// Run dispatches events and draws frames until ctx is done or events
// is closed.
func (w *Window) Run(ctx context.Context, events <-chan event.Event, r render.Renderer) error {
	if err := w.Frame(r); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			w.Dispatch(ev)
			if err := w.Frame(r); err != nil {
				return err
			}
		}
	}
}
