// SPDX-License-Identifier: Unlicense OR MIT

// Package f32 provides float32 points and affine transforms for pointer
// coordinates. Y grows downwards.
package f32

import (
	"fmt"
	"image"
	"math"
)

// Point is a position or a vector.
type Point struct {
	X, Y float32
}

// Pt returns Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// FromImage converts an integer point.
func FromImage(p image.Point) Point {
	return Point{X: float32(p.X), Y: float32(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Mul(s float32) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Floor returns the integer point containing p.
func (p Point) Floor() image.Point {
	return image.Point{
		X: int(math.Floor(float64(p.X))),
		Y: int(math.Floor(float64(p.Y))),
	}
}
