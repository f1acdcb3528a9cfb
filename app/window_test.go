// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"celui.org/diag"
	"celui.org/f32"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/io/pointer"
	"celui.org/layout"
	"celui.org/render"
	"celui.org/render/shinyrender"
	"celui.org/render/soft"
	"celui.org/widget"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func quiet() Option {
	return Logger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func press(x, y float32) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(x, y)}
}

type probe struct {
	layout.ElementBase
	defocused int
}

func newProbe() *probe {
	p := new(probe)
	p.Init(p)
	return p
}

func (p *probe) MinSize() geom.Size           { return geom.Sz(1, 1) }
func (p *probe) Draw(r render.Renderer) error { return nil }
func (p *probe) Defocus()                     { p.defocused++ }

func TestFrameSkipsCleanFrames(t *testing.T) {
	h := NewHeadless(20, 10, quiet())
	f := widget.NewFill(red, 1, 1)
	f.SetFill(true, true)
	h.SetRoot(f)
	if err := h.Frame(); err != nil {
		t.Fatal(err)
	}
	if got := h.Image().RGBAAt(19, 9); got != red {
		t.Errorf("pixel %v, want red", got)
	}
	h.Frame()
	if got := h.Frames(); got != 1 {
		t.Errorf("clean frame redrawn: %d frames", got)
	}
	f.SetColor(color.RGBA{B: 0xff, A: 0xff})
	if !h.NeedsRedraw() {
		t.Fatal("element change didn't invalidate the window")
	}
	h.Frame()
	if got := h.Frames(); got != 2 {
		t.Errorf("%d frames, want 2", got)
	}
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	h.Screenshot(img)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("screenshot pixel %v", got)
	}
}

func TestFocus(t *testing.T) {
	w := NewWindow(quiet())
	a, b := newProbe(), newProbe()
	w.Focus(a)
	w.Focus(a)
	w.Focus(b)
	if a.defocused != 1 || b.defocused != 0 {
		t.Errorf("defocus counts a=%d b=%d", a.defocused, b.defocused)
	}
	if w.Focused() != layout.Element(b) {
		t.Error("focus not moved")
	}
}

func TestDispatchKeysToFocusFirst(t *testing.T) {
	h := NewHeadless(50, 32, quiet())
	l := layout.NewListGroup()
	for i := 0; i < 3; i++ {
		l.AddRow(widget.NewFill(nil, 10, 10))
	}
	h.SetRoot(l)
	h.Frame()
	if got := h.Dispatch(press(5, 15)); got != layout.Captured {
		t.Fatalf("click: %v", got)
	}
	if h.Focused() != layout.Element(l.Row(1)) {
		t.Fatal("click didn't focus the row")
	}
	var activated int
	l.Row(2).SetOnActivate(func(layout.Element, event.Event) layout.Capture {
		activated++
		return layout.Captured
	})
	h.Dispatch(key.Event{Name: key.NameDownArrow, State: key.Press})
	if h.Focused() != layout.Element(l.Row(2)) || l.Selected() != 2 {
		t.Fatalf("focus %v, selection %d", h.Focused(), l.Selected())
	}
	if got := h.Dispatch(key.Event{Name: key.NameReturn, State: key.Press}); got != layout.Captured || activated != 1 {
		t.Errorf("return: %v, %d activations", got, activated)
	}
}

func TestDispatchObjectFreed(t *testing.T) {
	w := NewWindow(quiet())
	g := layout.NewVGroup()
	f := widget.NewFill(red, 10, 10)
	f.SetOnClick(func(e layout.Element, _ event.Event) layout.Capture {
		e.Destroy()
		return layout.ObjectFreed
	})
	g.AddElement(f)
	w.SetRoot(g)
	w.Frame(soft.NewImage(image.Pt(10, 10)))
	w.Focus(f)
	if got := w.Dispatch(press(5, 5)); got != layout.ObjectFreed {
		t.Fatalf("got %v, want ObjectFreed", got)
	}
	if w.Focused() != nil {
		t.Error("focus still on a freed element")
	}
	if g.ElementCount() != 0 {
		t.Error("freed element still in the tree")
	}
}

func TestWindowDiag(t *testing.T) {
	sink := diag.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	w := NewWindow(quiet(), Diag(sink))
	g := layout.NewHGroup()
	w.SetRoot(g)
	g.AddElement(nil)
	if !sink.HasErrors() {
		t.Error("structural error not reported to the window sink")
	}
}

func TestRun(t *testing.T) {
	w := NewWindow(quiet())
	w.SetRoot(widget.NewFill(red, 1, 1))
	events := make(chan event.Event, 1)
	events <- event.FrameEvent{Width: 4, Height: 4}
	close(events)
	if err := w.Run(context.Background(), events, soft.NewImage(image.Pt(4, 4))); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx, make(chan event.Event), soft.NewImage(image.Pt(4, 4))); err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRunScreenWithoutWindows(t *testing.T) {
	w := NewWindow(quiet())
	if err := w.RunScreen(context.Background(), shinyrender.Headless{}); err == nil {
		t.Error("headless screen opened a window")
	}
}
