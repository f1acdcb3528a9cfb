// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"celui.org/geom"
)

// Fit scales content to the rectangle of its element.
type Fit uint8

const (
	// Unscaled does not alter the scale of the content.
	Unscaled Fit = iota
	// Contain scales the content as large as possible without cropping
	// and preserves the aspect ratio.
	Contain
	// Cover scales the content to cover the rectangle and preserves
	// the aspect ratio.
	Cover
	// ScaleDown scales the content down without cropping when it
	// exceeds the rectangle. It preserves the aspect ratio.
	ScaleDown
	// Stretch fills the rectangle with the content and does not
	// preserve the aspect ratio.
	Stretch
)

// rect returns where content of size src is drawn to fit dst. The
// result is centered on dst and may extend beyond it for Cover and
// Unscaled; callers clip to dst.
func (fit Fit) rect(src image.Point, dst geom.Rect) geom.Rect {
	size := src
	if fit != Unscaled && src.X > 0 && src.Y > 0 {
		sx := float64(dst.Size.W) / float64(src.X)
		sy := float64(dst.Size.H) / float64(src.Y)
		switch fit {
		case Contain:
			sx = min(sx, sy)
			sy = sx
		case Cover:
			sx = max(sx, sy)
			sy = sx
		case ScaleDown:
			sx = min(sx, sy, 1)
			sy = sx
		}
		size = image.Point{X: int(float64(src.X) * sx), Y: int(float64(src.Y) * sy)}
	}
	return geom.R(
		dst.Min.X+(dst.Size.W-size.X)/2,
		dst.Min.Y+(dst.Size.H-size.Y)/2,
		size.X, size.Y,
	)
}
