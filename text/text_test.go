// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"errors"
	"image/color"
	"testing"
)

func TestMeasure(t *testing.T) {
	s := NewShaper()
	f := Font{Size: 16}
	short, err := s.Measure(f, "ab")
	if err != nil {
		t.Fatal(err)
	}
	long, err := s.Measure(f, "abab")
	if err != nil {
		t.Fatal(err)
	}
	if short.X <= 0 || short.Y <= 0 {
		t.Fatalf("empty measurement %v", short)
	}
	if long.X <= short.X || long.Y != short.Y {
		t.Errorf("measure(abab) = %v, measure(ab) = %v", long, short)
	}
	again, _ := s.Measure(f, "ab")
	if again != short {
		t.Errorf("cached measurement %v differs from %v", again, short)
	}
	// Unknown typefaces fall back to the default.
	fallback, err := s.Measure(Font{Typeface: "Nope", Size: 16}, "ab")
	if err != nil || fallback != short {
		t.Errorf("fallback measurement %v, %v", fallback, err)
	}
}

func TestRasterize(t *testing.T) {
	s := NewShaper()
	img, err := s.Rasterize(Font{}, "W", color.Black)
	if err != nil {
		t.Fatal(err)
	}
	sz, _ := s.Measure(Font{}, "W")
	if img.Bounds().Size() != sz {
		t.Errorf("raster size %v, measured %v", img.Bounds().Size(), sz)
	}
	inked := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("rasterized glyph has no ink")
	}
}

func TestNoFont(t *testing.T) {
	s := NewEmptyShaper()
	if _, err := s.Measure(Font{}, "x"); !errors.Is(err, ErrNoFont) {
		t.Errorf("Measure without fonts: %v", err)
	}
	if err := s.Register("bad", []byte("not a font")); err == nil {
		t.Error("Register accepted garbage")
	}
}
