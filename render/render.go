// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render defines the drawing service element trees draw through.

A Renderer draws into a destination: a window, or an off-screen
Surface. Backends live in the subpackages soft (a pure software
rasterizer over *image.RGBA) and shinyrender (a golang.org/x/exp/shiny
screen).
*/
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrReleased is returned when drawing with a released texture or surface.
var ErrReleased = errors.New("render: use of released resource")

// Renderer draws into a destination.
type Renderer interface {
	// Bounds returns the drawable area of the destination.
	Bounds() image.Rectangle
	// SetDrawColor sets the color used by DrawLine and FillRect.
	SetDrawColor(c color.Color)
	// DrawLine draws a one pixel wide line between p0 and p1 inclusive.
	DrawLine(p0, p1 image.Point) error
	// FillRect fills r.
	FillRect(r image.Rectangle) error
	// NewTexture uploads img for later copies.
	NewTexture(img image.Image) (Texture, error)
	// Copy draws t scaled into dst.
	Copy(t Texture, dst image.Rectangle) error
	// CopyRotated draws t into dst rotated clockwise by degrees, which
	// must be a multiple of 90. For 90 and 270 degrees the texture width
	// maps to the height of dst.
	CopyRotated(t Texture, dst image.Rectangle, degrees int) error
	// NewSurface creates an off-screen destination of the given size.
	NewSurface(size image.Point) (Surface, error)
	// PushClip restricts drawing to the intersection of r and the
	// current clip until the matching PopClip.
	PushClip(r image.Rectangle)
	PopClip()
	// Present flushes pending drawing to the destination.
	Present() error
}

// Texture is an uploaded image.
type Texture interface {
	Size() image.Point
	Release()
}

// Surface is an off-screen destination.
type Surface interface {
	// Renderer returns a renderer drawing into the surface.
	Renderer() Renderer
	// Texture uploads the surface content.
	Texture() (Texture, error)
	// Image returns the surface pixels.
	Image() *image.RGBA
	Release()
}

// Clip is a stack of clip rectangles shared by backends.
type Clip struct {
	stack []image.Rectangle
}

// Push intersects r with the current clip.
func (c *Clip) Push(bounds, r image.Rectangle) {
	cur := c.Current(bounds)
	c.stack = append(c.stack, cur.Intersect(r))
}

// Pop restores the previous clip.
func (c *Clip) Pop() {
	if n := len(c.stack); n > 0 {
		c.stack = c.stack[:n-1]
	}
}

// Current returns the active clip, bounds when no clip is pushed.
func (c *Clip) Current(bounds image.Rectangle) image.Rectangle {
	if n := len(c.stack); n > 0 {
		return c.stack[n-1]
	}
	return bounds
}

// Line returns the pixels of the line from p0 to p1 inclusive.
func Line(p0, p1 image.Point) []image.Point {
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	pts := make([]image.Point, 0, max(dx, -dy)+1)
	e := dx + dy
	p := p0
	for {
		pts = append(pts, p)
		if p == p1 {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// RotatedSize returns the destination size of a src sized texture rotated
// by degrees.
func RotatedSize(src image.Point, degrees int) image.Point {
	if d := NormalizeDegrees(degrees); d == 90 || d == 270 {
		return image.Point{X: src.Y, Y: src.X}
	}
	return src
}

// NormalizeDegrees maps degrees into [0, 360).
func NormalizeDegrees(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
