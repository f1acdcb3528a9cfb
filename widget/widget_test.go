// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"

	"celui.org/f32"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/pointer"
	"celui.org/layout"
	"celui.org/render/soft"
	"celui.org/text"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestFill(t *testing.T) {
	f := NewFill(red, 4, 3)
	if got, want := f.MinSize(), geom.Sz(4, 3); got != want {
		t.Errorf("min size %v, want %v", got, want)
	}
	r := soft.NewImage(image.Pt(10, 10))
	if err := layout.Render(f, geom.R(2, 2, 4, 3), r); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	if got := img.RGBAAt(2, 2); got != red {
		t.Errorf("inside: %v", got)
	}
	if got := img.RGBAAt(6, 2); got != (color.RGBA{}) {
		t.Errorf("outside: %v", got)
	}
	if f.NeedsRedraw() {
		t.Error("redraw still requested after Draw")
	}
}

func TestLine(t *testing.T) {
	h := NewLine(layout.Horizontal, 1, blue)
	if got, want := h.MinSize(), geom.Sz(0, 1); got != want {
		t.Errorf("min size %v, want %v", got, want)
	}
	g := layout.NewVGroup()
	g.AddElement(NewFill(nil, 10, 4))
	g.AddElement(h)
	r := soft.NewImage(image.Pt(10, 10))
	if err := layout.Render(g, geom.R(0, 0, 10, 5), r); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	for x := 0; x < 10; x++ {
		if got := img.RGBAAt(x, 4); got != blue {
			t.Fatalf("rule pixel %d = %v", x, got)
		}
	}
	v := NewLine(layout.Vertical, 3, red)
	if got, want := v.MinSize(), geom.Sz(3, 0); got != want {
		t.Errorf("vertical min size %v, want %v", got, want)
	}
}

func TestImage(t *testing.T) {
	im := NewImage(nil, Unscaled)
	if got := im.MinSize(); got != geom.SizeNoImage {
		t.Errorf("nil image min size %v", got)
	}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 1, blue)
	im.SetImage(src)
	if got, want := im.MinSize(), geom.Sz(2, 2); got != want {
		t.Errorf("min size %v, want %v", got, want)
	}
	r := soft.NewImage(image.Pt(4, 4))
	if err := layout.Render(im, geom.R(1, 1, 2, 2), r); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	if img.RGBAAt(1, 1) != red || img.RGBAAt(2, 2) != blue {
		t.Errorf("pixels %v %v", img.RGBAAt(1, 1), img.RGBAAt(2, 2))
	}
	tex := im.tex
	if err := im.Draw(r); err != nil {
		t.Fatal(err)
	}
	if im.tex != tex {
		t.Error("texture uploaded twice for the same renderer")
	}
	im.Destroy()
	if im.tex != nil {
		t.Error("texture not released on Destroy")
	}
}

func TestLabel(t *testing.T) {
	l := NewLabel(nil, "hello")
	if got := l.MinSize(); got != geom.SizeNoFont {
		t.Errorf("no shaper: %v", got)
	}
	l.SetShaper(text.NewShaper())
	sz := l.MinSize()
	if !sz.Valid() || sz.W == 0 || sz.H == 0 {
		t.Fatalf("min size %v", sz)
	}
	if again := l.MinSize(); again != sz {
		t.Errorf("min size changed from %v to %v", sz, again)
	}
	r := soft.NewImage(image.Pt(100, 40))
	if err := layout.Render(l, geom.R(0, 0, 100, 40), r); err != nil {
		t.Fatal(err)
	}
	var inked bool
	img := r.Image()
	for _, p := range img.Pix {
		if p != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("label drew nothing")
	}
	l.SetShaper(text.NewEmptyShaper())
	if got := l.MinSize(); got != geom.SizeNoFont {
		t.Errorf("shaper without fonts: %v", got)
	}
}

func TestButtonClick(t *testing.T) {
	var clicks int
	b := NewButton(text.NewShaper(), "OK", func(layout.Element, event.Event) layout.Capture {
		clicks++
		return layout.Captured
	})
	b.Layout(geom.R(0, 0, 60, 30))
	move := pointer.Event{Kind: pointer.Move, Position: f32.Pt(10, 10)}
	b.CaptureEvent(move)
	if !b.Hover() {
		t.Error("hover not tracked")
	}
	press := pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(10, 10)}
	if got := b.CaptureEvent(press); got != layout.Captured || clicks != 1 {
		t.Errorf("click: %v, %d clicks", got, clicks)
	}
	press.Position = f32.Pt(100, 10)
	if got := b.CaptureEvent(press); got != layout.NotCaptured {
		t.Errorf("press outside: %v", got)
	}
}
