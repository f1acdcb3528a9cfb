// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"image/color"
	"testing"

	"celui.org/f32"
	"celui.org/geom"
	"celui.org/io/pointer"
	"celui.org/render"
	"celui.org/render/soft"
)

func TestTransformerCenterRoundTrip(t *testing.T) {
	for _, deg := range []int{0, 90, 180, 270} {
		tr := NewTransformer()
		tr.SetRotation(deg)
		c := newBox(1, 1)
		c.SetFill(true, true)
		c.capture = Captured
		tr.SetElement(c)
		rect := geom.R(10, 20, 40, 30)
		tr.Layout(rect)
		local := tr.LocalSize()
		if deg == 90 || deg == 270 {
			if local != geom.Sz(30, 40) {
				t.Errorf("%d: local size %v, want 30x40", deg, local)
			}
		}
		cx, cy := rect.Center()
		if got := tr.CaptureEvent(press(cx, cy)); got != Captured {
			t.Fatalf("%d: got %v", deg, got)
		}
		pe := c.events[0].(pointer.Event)
		want := f32.Pt(float32(local.W)/2, float32(local.H)/2)
		if pe.Position != want {
			t.Errorf("%d: center mapped to %v, want %v", deg, pe.Position, want)
		}
	}
}

func TestTransformerRemap(t *testing.T) {
	tr := NewTransformer()
	tr.SetRotation(90)
	tr.SetElement(newBox(1, 1))
	tr.Layout(geom.R(10, 20, 40, 30))
	// A quarter turn clockwise maps (x, y) in the parent to (qy, W-qx)
	// with q relative to the transformer origin.
	if got, want := tr.ToLocal(f32.Pt(14, 27)), f32.Pt(7, 36); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	tr.SetRotation(270)
	tr.Layout(geom.R(10, 20, 40, 30))
	if got, want := tr.ToLocal(f32.Pt(14, 27)), f32.Pt(23, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformerZoom(t *testing.T) {
	tr := NewTransformer()
	tr.SetRotation(90)
	tr.SetZoom(2, 3)
	tr.SetElement(newBox(10, 4))
	if got, want := tr.MinSize(), geom.Sz(8, 30); got != want {
		t.Errorf("min size %v, want %v", got, want)
	}
	tr.Layout(geom.R(0, 0, 8, 30))
	if got, want := tr.LocalSize(), geom.Sz(10, 4); got != want {
		t.Errorf("local size %v, want %v", got, want)
	}
	if got, want := tr.ToLocal(f32.Pt(8, 0)), f32.Pt(0, 0); got != want {
		t.Errorf("top right maps to %v, want %v", got, want)
	}
}

func TestTransformerBadRotation(t *testing.T) {
	w := newTestWindow()
	tr := NewTransformer()
	tr.SetWindow(w)
	tr.SetRotation(45)
	if tr.Rotation() != 0 || !w.sink.HasErrors() {
		t.Errorf("rotation %d, reported %v", tr.Rotation(), w.sink.HasErrors())
	}
	tr.SetRotation(-90)
	if tr.Rotation() != 270 {
		t.Errorf("rotation %d, want 270", tr.Rotation())
	}
}

// pixels draws a red pixel followed by a blue one.
type pixels struct {
	ElementBase
}

func (p *pixels) MinSize() geom.Size { return geom.Sz(2, 1) }

func (p *pixels) Draw(r render.Renderer) error {
	o := p.Location()
	for i, c := range []color.Color{red, blue} {
		r.SetDrawColor(c)
		if err := r.FillRect(image.Rect(o.X+i, o.Y, o.X+i+1, o.Y+1)); err != nil {
			return err
		}
	}
	return nil
}

func TestTransformerDraw(t *testing.T) {
	p := new(pixels)
	p.Init(p)
	tr := NewTransformer()
	tr.SetRotation(90)
	tr.SetElement(p)
	r := soft.NewImage(image.Pt(4, 4))
	if err := Render(tr, geom.R(1, 1, 1, 2), r); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("top pixel %v, want red", got)
	}
	if got := img.RGBAAt(1, 2); got != blue {
		t.Errorf("bottom pixel %v, want blue", got)
	}
}
