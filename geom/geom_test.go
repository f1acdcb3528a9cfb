// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"errors"
	"image"
	"testing"
)

func TestSentinels(t *testing.T) {
	tests := []struct {
		s   Size
		err error
	}{
		{Sz(0, 0), nil},
		{Sz(10, 3), nil},
		{SizeNoConfig, ErrNoConfig},
		{SizeNoFont, ErrNoFont},
		{SizeNoImage, ErrNoImage},
		{SizeNoChild, ErrNoChild},
		{Sz(-7, 2), ErrBadSize},
	}
	for _, tc := range tests {
		if got := tc.s.Err(); !errors.Is(got, tc.err) {
			t.Errorf("%v.Err() = %v, want %v", tc.s, got, tc.err)
		}
		if tc.s.Valid() != (tc.err == nil) {
			t.Errorf("%v.Valid() = %v", tc.s, tc.s.Valid())
		}
	}
}

func TestRectInset(t *testing.T) {
	r := R(10, 20, 30, 40).Inset(1, 2, 3, 4)
	if r != R(11, 22, 26, 34) {
		t.Errorf("Inset: got %v", r)
	}
	if r := R(0, 0, 2, 2).Inset(5, 5, 5, 5); r.Size != (Size{}) {
		t.Errorf("Inset past zero: got %v", r)
	}
}

func TestRectImage(t *testing.T) {
	r := R(1, 2, 3, 4)
	if got, want := r.Image(), image.Rect(1, 2, 4, 6); got != want {
		t.Errorf("Image: got %v, want %v", got, want)
	}
	if got := FromImage(image.Rect(4, 6, 1, 2)); got != r {
		t.Errorf("FromImage: got %v, want %v", got, r)
	}
	if !r.Contains(1, 2) || r.Contains(4, 2) {
		t.Error("Contains does not treat the far edge as exclusive")
	}
}
