// SPDX-License-Identifier: Unlicense OR MIT

package shinyrender

import (
	"errors"
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

var errNoWindows = errors.New("shinyrender: headless screen has no windows")

// Headless is an in-memory screen.Screen. Its buffers and textures are
// plain RGBA images.
type Headless struct{}

// Canvas is an in-memory Target.
type Canvas struct {
	img *image.RGBA
}

type buffer struct {
	img *image.RGBA
}

type memTexture struct {
	img *image.RGBA
}

var (
	_ screen.Screen = Headless{}
	_ Target        = (*Canvas)(nil)
)

// NewCanvas returns a Target backed by a new RGBA image.
func NewCanvas(size image.Point) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rectangle{Max: size})}
}

// Image returns the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (Headless) NewBuffer(size image.Point) (screen.Buffer, error) {
	return &buffer{img: image.NewRGBA(image.Rectangle{Max: size})}, nil
}

func (Headless) NewTexture(size image.Point) (screen.Texture, error) {
	return &memTexture{img: image.NewRGBA(image.Rectangle{Max: size})}, nil
}

func (Headless) NewWindow(opts *screen.NewWindowOptions) (screen.Window, error) {
	return nil, errNoWindows
}

func (b *buffer) Release()                {}
func (b *buffer) Size() image.Point       { return b.img.Bounds().Size() }
func (b *buffer) Bounds() image.Rectangle { return b.img.Bounds() }
func (b *buffer) RGBA() *image.RGBA       { return b.img }

func (t *memTexture) Release()                {}
func (t *memTexture) Size() image.Point       { return t.img.Bounds().Size() }
func (t *memTexture) Bounds() image.Rectangle { return t.img.Bounds() }

func (t *memTexture) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) {
	uploadRGBA(t.img, dp, src, sr)
}

func (t *memTexture) Fill(dr image.Rectangle, src color.Color, op stddraw.Op) {
	stddraw.Draw(t.img, dr, image.NewUniform(src), image.Point{}, op)
}

func (c *Canvas) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) {
	uploadRGBA(c.img, dp, src, sr)
}

func (c *Canvas) Fill(dr image.Rectangle, src color.Color, op stddraw.Op) {
	stddraw.Draw(c.img, dr, image.NewUniform(src), image.Point{}, op)
}

func (c *Canvas) Draw(src2dst f64.Aff3, src screen.Texture, sr image.Rectangle, op stddraw.Op, opts *screen.DrawOptions) {
	if t, ok := src.(*memTexture); ok {
		draw.NearestNeighbor.Transform(c.img, src2dst, t.img, sr, op, nil)
	}
}

func (c *Canvas) DrawUniform(src2dst f64.Aff3, src color.Color, sr image.Rectangle, op stddraw.Op, opts *screen.DrawOptions) {
	draw.NearestNeighbor.Transform(c.img, src2dst, image.NewUniform(src), sr, op, nil)
}

func (c *Canvas) Copy(dp image.Point, src screen.Texture, sr image.Rectangle, op stddraw.Op, opts *screen.DrawOptions) {
	if t, ok := src.(*memTexture); ok {
		stddraw.Draw(c.img, image.Rectangle{Min: dp, Max: dp.Add(sr.Size())}, t.img, sr.Min, op)
	}
}

func (c *Canvas) Scale(dr image.Rectangle, src screen.Texture, sr image.Rectangle, op stddraw.Op, opts *screen.DrawOptions) {
	if t, ok := src.(*memTexture); ok {
		draw.NearestNeighbor.Scale(c.img, dr, t.img, sr, op, nil)
	}
}

func uploadRGBA(dst *image.RGBA, dp image.Point, src screen.Buffer, sr image.Rectangle) {
	stddraw.Draw(dst, image.Rectangle{Min: dp, Max: dp.Add(sr.Size())}, src.RGBA(), sr.Min, stddraw.Src)
}
