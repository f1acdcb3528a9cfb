// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"
	"math"
)

// Affine2D is a 2D affine transform. The zero value is the identity.
type Affine2D struct {
	// m holds the rows [sx hx ox] and [hy sy oy] when set is true.
	m   [6]float32
	set bool
}

var identity = [6]float32{1, 0, 0, 0, 1, 0}

// NewAffine2D returns the transform with rows [sx hx ox], [hy sy oy]
// and [0 0 1].
func NewAffine2D(sx, hx, ox, hy, sy, oy float32) Affine2D {
	return Affine2D{m: [6]float32{sx, hx, ox, hy, sy, oy}, set: true}
}

func (a Affine2D) mat() [6]float32 {
	if !a.set {
		return identity
	}
	return a.m
}

// Elems returns the matrix elements in row major order.
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	m := a.mat()
	return m[0], m[1], m[2], m[3], m[4], m[5]
}

// Mul returns the transform applying b, then a.
func (a Affine2D) Mul(b Affine2D) Affine2D {
	x, y := a.mat(), b.mat()
	return NewAffine2D(
		x[0]*y[0]+x[1]*y[3], x[0]*y[1]+x[1]*y[4], x[0]*y[2]+x[1]*y[5]+x[2],
		x[3]*y[0]+x[4]*y[3], x[3]*y[1]+x[4]*y[4], x[3]*y[2]+x[4]*y[5]+x[5],
	)
}

// Offset returns a followed by a translation.
func (a Affine2D) Offset(o Point) Affine2D {
	return NewAffine2D(1, 0, o.X, 0, 1, o.Y).Mul(a)
}

// Scale returns a followed by a scale around origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	s := NewAffine2D(factor.X, 0, 0, 0, factor.Y, 0)
	return a.around(origin, s)
}

// Rotate returns a followed by a rotation around origin. Positive
// angles turn the x axis towards the y axis.
func (a Affine2D) Rotate(origin Point, radians float32) Affine2D {
	sin, cos := math.Sincos(float64(radians))
	s, c := float32(sin), float32(cos)
	return a.around(origin, NewAffine2D(c, -s, 0, s, c, 0))
}

func (a Affine2D) around(origin Point, t Affine2D) Affine2D {
	return t.Mul(a.Offset(origin.Mul(-1))).Offset(origin)
}

// Invert returns the inverse transform. Singular transforms yield
// infinities.
func (a Affine2D) Invert() Affine2D {
	m := a.mat()
	det := m[0]*m[4] - m[1]*m[3]
	sx, hx := m[4]/det, -m[1]/det
	hy, sy := -m[3]/det, m[0]/det
	return NewAffine2D(
		sx, hx, -(sx*m[2] + hx*m[5]),
		hy, sy, -(hy*m[2] + sy*m[5]),
	)
}

// Transform applies a to p.
func (a Affine2D) Transform(p Point) Point {
	m := a.mat()
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

func (a Affine2D) String() string {
	m := a.mat()
	return fmt.Sprintf("[[%g %g %g] [%g %g %g]]", m[0], m[1], m[2], m[3], m[4], m[5])
}
