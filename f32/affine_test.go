// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func near(p, q Point) bool {
	d := p.Sub(q)
	return math.Hypot(float64(d.X), float64(d.Y)) < 1e-4
}

func TestAffine(t *testing.T) {
	p := Pt(1, 2)
	for _, tc := range []struct {
		name string
		a    Affine2D
		want Point
	}{
		{"identity", Affine2D{}, Pt(1, 2)},
		{"offset", Affine2D{}.Offset(Pt(2, -3)), Pt(3, -1)},
		{"scale", Affine2D{}.Scale(Point{}, Pt(-1, 2)), Pt(-1, 4)},
		{"scale around", Affine2D{}.Scale(Pt(1, 1), Pt(2, 2)), Pt(1, 3)},
		{"quarter turn", Affine2D{}.Rotate(Point{}, math.Pi/2), Pt(-2, 1)},
		{"half turn around", Affine2D{}.Rotate(Pt(5, 2), math.Pi), Pt(9, 2)},
		{"offset then scale", Affine2D{}.Offset(Pt(2, -3)).Scale(Point{}, Pt(-1, 2)), Pt(-3, -2)},
		{"matrix", NewAffine2D(0, -1, 10, 1, 0, 0), Pt(8, 1)},
	} {
		got := tc.a.Transform(p)
		if !near(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		if back := tc.a.Invert().Transform(got); !near(back, p) {
			t.Errorf("%s: inverse got %v, want %v", tc.name, back, p)
		}
	}
}

func TestMulOrder(t *testing.T) {
	o := Affine2D{}.Offset(Pt(5, 0))
	s := Affine2D{}.Scale(Point{}, Pt(2, 2))
	// s.Mul(o) offsets first.
	if got := s.Mul(o).Transform(Pt(1, 1)); !near(got, Pt(12, 2)) {
		t.Errorf("got %v, want (12,2)", got)
	}
	if got := o.Mul(s).Transform(Pt(1, 1)); !near(got, Pt(7, 2)) {
		t.Errorf("got %v, want (7,2)", got)
	}
}

func TestFloor(t *testing.T) {
	if got := Pt(-0.5, 2.5).Floor(); got.X != -1 || got.Y != 2 {
		t.Errorf("Floor: got %v", got)
	}
}
