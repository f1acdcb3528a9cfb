// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom contains the integer value types of the layout engine:
sizes, locations and rectangles.

A Size with a negative component is not a size but an error sentinel
returned by MinSize. Each failure cause has its own sentinel so that
callers further up the tree can tell them apart without a separate
error channel.
*/
package geom

import (
	"errors"
	"fmt"
	"image"
)

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Location is the top left corner of an element in screen coordinates.
type Location struct {
	X, Y int
}

// Offset is a Location used as a displacement.
type Offset = Location

// Rect is an area anchored at Min.
type Rect struct {
	Min  Location
	Size Size
}

// Error sentinels returned by MinSize.
var (
	SizeNoConfig = Size{W: -1, H: -1}
	SizeNoFont   = Size{W: -2, H: -2}
	SizeNoImage  = Size{W: -3, H: -3}
	SizeNoChild  = Size{W: -4, H: -4}
)

var (
	ErrNoConfig = errors.New("geom: element has no config")
	ErrNoFont   = errors.New("geom: no font available")
	ErrNoImage  = errors.New("geom: no image")
	ErrNoChild  = errors.New("geom: required child missing")
	ErrBadSize  = errors.New("geom: invalid size")
)

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Loc is shorthand for Location{X: x, Y: y}.
func Loc(x, y int) Location {
	return Location{X: x, Y: y}
}

// R returns the rectangle at (x, y) with size (w, h).
func R(x, y, w, h int) Rect {
	return Rect{Min: Location{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Valid reports whether s is a real size rather than a sentinel.
func (s Size) Valid() bool {
	return s.W >= 0 && s.H >= 0
}

// Err returns the error a sentinel stands for, or nil for a valid size.
func (s Size) Err() error {
	if s.Valid() {
		return nil
	}
	switch s {
	case SizeNoConfig:
		return ErrNoConfig
	case SizeNoFont:
		return ErrNoFont
	case SizeNoImage:
		return ErrNoImage
	case SizeNoChild:
		return ErrNoChild
	}
	return fmt.Errorf("%w: %v", ErrBadSize, s)
}

// Add returns the component-wise sum of s and s2.
func (s Size) Add(s2 Size) Size {
	return Size{W: s.W + s2.W, H: s.H + s2.H}
}

// Max returns the component-wise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	if s2.W > s.W {
		s.W = s2.W
	}
	if s2.H > s.H {
		s.H = s2.H
	}
	return s
}

// Transpose swaps width and height.
func (s Size) Transpose() Size {
	return Size{W: s.H, H: s.W}
}

// Point converts s to an image.Point.
func (s Size) Point() image.Point {
	return image.Point{X: s.W, Y: s.H}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Add returns l displaced by o.
func (l Location) Add(o Offset) Location {
	return Location{X: l.X + o.X, Y: l.Y + o.Y}
}

// Sub returns the displacement from l2 to l.
func (l Location) Sub(l2 Location) Offset {
	return Offset{X: l.X - l2.X, Y: l.Y - l2.Y}
}

// Point converts l to an image.Point.
func (l Location) Point() image.Point {
	return image.Point{X: l.X, Y: l.Y}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{Min: Location{X: r.Min.X, Y: r.Min.Y}, Size: Size{W: r.Dx(), H: r.Dy()}}
}

// Max returns the exclusive bottom right corner of r.
func (r Rect) Max() Location {
	return Location{X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: r.Min.Point(), Max: r.Max().Point()}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Contains reports whether the point (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Min.X && x < r.Min.X+r.Size.W &&
		y >= r.Min.Y && y < r.Min.Y+r.Size.H
}

// Add displaces r by o.
func (r Rect) Add(o Offset) Rect {
	r.Min = r.Min.Add(o)
	return r
}

// Inset shrinks r by the given edges. The result never has a negative size.
func (r Rect) Inset(left, top, right, bottom int) Rect {
	r.Min.X += left
	r.Min.Y += top
	r.Size.W -= left + right
	r.Size.H -= top + bottom
	if r.Size.W < 0 {
		r.Size.W = 0
	}
	if r.Size.H < 0 {
		r.Size.H = 0
	}
	return r
}

// Center returns the center of r in half pixels, as floats.
func (r Rect) Center() (float32, float32) {
	return float32(r.Min.X) + float32(r.Size.W)/2, float32(r.Min.Y) + float32(r.Size.H)/2
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Min, r.Size)
}
