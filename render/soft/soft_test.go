// SPDX-License-Identifier: Unlicense OR MIT

package soft

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"celui.org/render"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestFillRectClip(t *testing.T) {
	r := NewImage(image.Pt(10, 10))
	r.SetDrawColor(red)
	r.PushClip(image.Rect(0, 0, 5, 5))
	if err := r.FillRect(image.Rect(2, 2, 8, 8)); err != nil {
		t.Fatal(err)
	}
	r.PopClip()
	img := r.Image()
	if got := img.RGBAAt(4, 4); got != red {
		t.Errorf("inside clip: got %v", got)
	}
	if got := img.RGBAAt(6, 6); got != (color.RGBA{}) {
		t.Errorf("outside clip: got %v", got)
	}
}

func TestDrawLine(t *testing.T) {
	r := NewImage(image.Pt(4, 4))
	r.SetDrawColor(blue)
	if err := r.DrawLine(image.Pt(0, 3), image.Pt(3, 3)); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 4; x++ {
		if got := r.Image().RGBAAt(x, 3); got != blue {
			t.Errorf("pixel (%d,3) = %v", x, got)
		}
	}
	if got := r.Image().RGBAAt(0, 2); got != (color.RGBA{}) {
		t.Errorf("pixel above line = %v", got)
	}
}

func twoPixels() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, blue)
	return img
}

func TestCopyRotated(t *testing.T) {
	tests := []struct {
		deg   int
		dst   image.Rectangle
		first image.Point
		last  image.Point
	}{
		{0, image.Rect(0, 0, 2, 1), image.Pt(0, 0), image.Pt(1, 0)},
		{90, image.Rect(0, 0, 1, 2), image.Pt(0, 0), image.Pt(0, 1)},
		{180, image.Rect(0, 0, 2, 1), image.Pt(1, 0), image.Pt(0, 0)},
		{270, image.Rect(0, 0, 1, 2), image.Pt(0, 1), image.Pt(0, 0)},
	}
	for _, tc := range tests {
		r := NewImage(image.Pt(2, 2))
		tex, err := r.NewTexture(twoPixels())
		if err != nil {
			t.Fatal(err)
		}
		if err := r.CopyRotated(tex, tc.dst, tc.deg); err != nil {
			t.Fatalf("%d: %v", tc.deg, err)
		}
		img := r.Image()
		if got := img.RGBAAt(tc.first.X, tc.first.Y); got != red {
			t.Errorf("%d degrees: first pixel at %v = %v, want red", tc.deg, tc.first, got)
		}
		if got := img.RGBAAt(tc.last.X, tc.last.Y); got != blue {
			t.Errorf("%d degrees: last pixel at %v = %v, want blue", tc.deg, tc.last, got)
		}
	}
}

func TestSurface(t *testing.T) {
	r := NewImage(image.Pt(4, 4))
	s, err := r.NewSurface(image.Pt(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	s.Renderer().SetDrawColor(red)
	s.Renderer().FillRect(image.Rect(0, 0, 2, 2))
	tex, err := s.Texture()
	if err != nil {
		t.Fatal(err)
	}
	s.Release()
	if err := r.Copy(tex, image.Rect(2, 2, 4, 4)); err != nil {
		t.Fatal(err)
	}
	if got := r.Image().RGBAAt(3, 3); got != red {
		t.Errorf("copied pixel = %v", got)
	}
	tex.Release()
	if err := r.Copy(tex, image.Rect(0, 0, 2, 2)); !errors.Is(err, render.ErrReleased) {
		t.Errorf("copy of released texture: %v", err)
	}
}
