// SPDX-License-Identifier: Unlicense OR MIT

package shinyrender

import (
	"image"
	"image/color"
	"testing"
)

var green = color.RGBA{G: 0xff, A: 0xff}

func newTest(size image.Point) (*Renderer, *Canvas) {
	c := NewCanvas(size)
	return New(Headless{}, c, c.Image().Bounds()), c
}

func TestFillAndClip(t *testing.T) {
	r, c := newTest(image.Pt(8, 8))
	r.SetDrawColor(green)
	r.PushClip(image.Rect(0, 0, 4, 8))
	r.FillRect(image.Rect(2, 0, 6, 2))
	r.PopClip()
	if got := c.Image().RGBAAt(3, 1); got != green {
		t.Errorf("inside clip = %v", got)
	}
	if got := c.Image().RGBAAt(4, 1); got != (color.RGBA{}) {
		t.Errorf("outside clip = %v", got)
	}
}

func TestSurfaceRoundTrip(t *testing.T) {
	r, c := newTest(image.Pt(6, 6))
	s, err := r.NewSurface(image.Pt(3, 2))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	s.Renderer().SetDrawColor(green)
	s.Renderer().FillRect(image.Rect(0, 0, 1, 1))
	tex, err := s.Texture()
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Release()
	if err := r.CopyRotated(tex, image.Rect(1, 1, 3, 4), 90); err != nil {
		t.Fatal(err)
	}
	// The top left source pixel ends up top right after a quarter turn.
	if got := c.Image().RGBAAt(2, 1); got != green {
		t.Errorf("rotated pixel = %v", got)
	}
	if got := c.Image().RGBAAt(1, 1); got == green {
		t.Error("rotation left the pixel in place")
	}
}

func TestClippedScale(t *testing.T) {
	r, c := newTest(image.Pt(4, 4))
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, green)
	tex, err := r.NewTexture(img)
	if err != nil {
		t.Fatal(err)
	}
	r.PushClip(image.Rect(2, 2, 4, 4))
	r.Copy(tex, image.Rect(0, 0, 4, 4))
	r.PopClip()
	if got := c.Image().RGBAAt(3, 3); got != green {
		t.Errorf("scaled pixel = %v", got)
	}
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("clipped pixel = %v", got)
	}
}
