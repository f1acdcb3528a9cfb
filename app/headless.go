// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"golang.org/x/image/draw"

	"celui.org/render/soft"
)

// Headless is a window that draws into memory, for tests and for
// rendering trees to images.
type Headless struct {
	*Window
	r *soft.Renderer
}

// NewHeadless creates a headless window of the given size.
func NewHeadless(width, height int, options ...Option) *Headless {
	options = append([]Option{Size(width, height)}, options...)
	return &Headless{
		Window: NewWindow(options...),
		r:      soft.NewImage(image.Pt(width, height)),
	}
}

// Frame draws the tree if a redraw is pending.
func (h *Headless) Frame() error {
	return h.Window.Frame(h.r)
}

// Screenshot copies the window content into img.
func (h *Headless) Screenshot(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), h.r.Image(), image.Point{}, draw.Src)
}

// Image returns the window content.
func (h *Headless) Image() *image.RGBA { return h.r.Image() }
