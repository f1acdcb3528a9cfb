// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"celui.org/geom"
	"celui.org/render/soft"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func TestFrame(t *testing.T) {
	f := NewFrame(2, red)
	f.SetBackground(green)
	if got, want := f.MinSize(), geom.Sz(4, 4); got != want {
		t.Errorf("empty min size %v, want %v", got, want)
	}
	c := newBox(6, 4)
	c.SetPadding(1, 1, 0, 0)
	c.color = blue
	if err := f.SetElement(c); err != nil {
		t.Fatal(err)
	}
	if got, want := f.MinSize(), geom.Sz(12, 8); got != want {
		t.Errorf("min size %v, want %v", got, want)
	}
	r := soft.NewImage(image.Pt(20, 20))
	if err := Render(f, geom.R(0, 0, 20, 20), r); err != nil {
		t.Fatal(err)
	}
	if got, want := c.Rect(), geom.R(7, 8, 6, 4); got != want {
		t.Errorf("child %v, want %v", got, want)
	}
	img := r.Image()
	for _, tc := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red}, {19, 10, red}, {10, 1, red},
		{2, 2, green}, {17, 17, green},
		{8, 9, blue},
	} {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel %d,%d = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFrameReplacesChild(t *testing.T) {
	f := NewFrame(1, red)
	a, b := newBox(1, 1), newBox(1, 1)
	f.SetElement(a)
	f.SetElement(b)
	if !a.Freed() || f.Element() != Element(b) {
		t.Error("old child not replaced")
	}
	if err := f.AddElement(newBox(1, 1)); err == nil {
		t.Error("second child accepted")
	}
}

func TestSingleInsertElement(t *testing.T) {
	type single interface {
		Container
		InsertElement(n int, e Element) error
	}
	for _, c := range []single{NewFrame(1, red), NewTransformer()} {
		a := newBox(1, 1)
		if err := c.InsertElement(0, a); err != nil {
			t.Fatal(err)
		}
		if err := c.InsertElement(0, newBox(1, 1)); !errors.Is(err, ErrFull) {
			t.Errorf("%T: second insert: %v", c, err)
		}
		if c.ElementCount() != 1 || c.NthElement(0) != Element(a) {
			t.Errorf("%T: child replaced by insert", c)
		}
	}
}
