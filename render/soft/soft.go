// SPDX-License-Identifier: Unlicense OR MIT

/*
Package soft implements a software render.Renderer drawing into an
*image.RGBA. Scaling and rotation go through golang.org/x/image/draw.
*/
package soft

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"

	"celui.org/render"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Renderer draws into an RGBA image.
type Renderer struct {
	dst    *image.RGBA
	color  color.Color
	clip   render.Clip
	scaler draw.Interpolator
}

type texture struct {
	img      *image.RGBA
	released bool
}

type surface struct {
	r *Renderer
}

// New returns a renderer drawing into dst.
func New(dst *image.RGBA) *Renderer {
	return &Renderer{dst: dst, color: color.Black, scaler: draw.NearestNeighbor}
}

// NewImage returns a renderer drawing into a new image of the given size.
func NewImage(size image.Point) *Renderer {
	return New(image.NewRGBA(image.Rectangle{Max: size}))
}

// SetInterpolator selects the scaler used by Copy. The default is
// nearest neighbor, which keeps unscaled copies exact.
func (r *Renderer) SetInterpolator(i draw.Interpolator) {
	r.scaler = i
}

// Image returns the destination.
func (r *Renderer) Image() *image.RGBA {
	return r.dst
}

func (r *Renderer) Bounds() image.Rectangle {
	return r.dst.Bounds()
}

func (r *Renderer) SetDrawColor(c color.Color) {
	r.color = c
}

func (r *Renderer) target() *image.RGBA {
	clip := r.clip.Current(r.dst.Bounds())
	return r.dst.SubImage(clip).(*image.RGBA)
}

func (r *Renderer) DrawLine(p0, p1 image.Point) error {
	dst := r.target()
	b := dst.Bounds()
	for _, p := range render.Line(p0, p1) {
		if p.In(b) {
			stddraw.Draw(dst, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, image.NewUniform(r.color), image.Point{}, stddraw.Over)
		}
	}
	return nil
}

func (r *Renderer) FillRect(rect image.Rectangle) error {
	dst := r.target()
	stddraw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(r.color), image.Point{}, stddraw.Over)
	return nil
}

func (r *Renderer) NewTexture(img image.Image) (render.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("soft: NewTexture: nil image")
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	stddraw.Draw(rgba, rgba.Bounds(), img, b.Min, stddraw.Src)
	return &texture{img: rgba}, nil
}

func (r *Renderer) Copy(t render.Texture, dst image.Rectangle) error {
	tex, err := r.texture(t)
	if err != nil {
		return err
	}
	src := tex.img.Bounds()
	if dst.Size() == src.Size() {
		stddraw.Draw(r.target(), dst, tex.img, src.Min, stddraw.Over)
		return nil
	}
	r.scaler.Scale(r.target(), dst, tex.img, src, draw.Over, nil)
	return nil
}

func (r *Renderer) CopyRotated(t render.Texture, dst image.Rectangle, degrees int) error {
	tex, err := r.texture(t)
	if err != nil {
		return err
	}
	d := render.NormalizeDegrees(degrees)
	if d == 0 {
		return r.Copy(t, dst)
	}
	m, err := Rotation(tex.img.Bounds().Size(), dst, d)
	if err != nil {
		return err
	}
	draw.NearestNeighbor.Transform(r.target(), m, tex.img, tex.img.Bounds(), draw.Over, nil)
	return nil
}

// Rotation returns the source to destination transform mapping a texture
// of size src into dst rotated clockwise by degrees.
func Rotation(src image.Point, dst image.Rectangle, degrees int) (f64.Aff3, error) {
	w, h := float64(src.X), float64(src.Y)
	dx, dy := float64(dst.Min.X), float64(dst.Min.Y)
	if w == 0 || h == 0 {
		return f64.Aff3{}, fmt.Errorf("soft: rotate empty texture")
	}
	switch render.NormalizeDegrees(degrees) {
	case 0:
		kx, ky := float64(dst.Dx())/w, float64(dst.Dy())/h
		return f64.Aff3{kx, 0, dx, 0, ky, dy}, nil
	case 90:
		kx, ky := float64(dst.Dx())/h, float64(dst.Dy())/w
		return f64.Aff3{0, -kx, dx + kx*h, ky, 0, dy}, nil
	case 180:
		kx, ky := float64(dst.Dx())/w, float64(dst.Dy())/h
		return f64.Aff3{-kx, 0, dx + kx*w, 0, -ky, dy + ky*h}, nil
	case 270:
		kx, ky := float64(dst.Dx())/h, float64(dst.Dy())/w
		return f64.Aff3{0, kx, dx, -ky, 0, dy + ky*w}, nil
	}
	return f64.Aff3{}, fmt.Errorf("soft: unsupported rotation %d", degrees)
}

func (r *Renderer) texture(t render.Texture) (*texture, error) {
	tex, ok := t.(*texture)
	if !ok {
		return nil, fmt.Errorf("soft: foreign texture %T", t)
	}
	if tex.released {
		return nil, render.ErrReleased
	}
	return tex, nil
}

func (r *Renderer) NewSurface(size image.Point) (render.Surface, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("soft: NewSurface: invalid size %v", size)
	}
	return &surface{r: NewImage(size)}, nil
}

func (r *Renderer) PushClip(rect image.Rectangle) {
	r.clip.Push(r.dst.Bounds(), rect)
}

func (r *Renderer) PopClip() {
	r.clip.Pop()
}

func (r *Renderer) Present() error {
	return nil
}

func (t *texture) Size() image.Point {
	return t.img.Bounds().Size()
}

func (t *texture) Release() {
	t.released = true
}

func (s *surface) Renderer() render.Renderer {
	return s.r
}

func (s *surface) Texture() (render.Texture, error) {
	if s.r == nil {
		return nil, render.ErrReleased
	}
	return s.r.NewTexture(s.r.dst)
}

func (s *surface) Image() *image.RGBA {
	if s.r == nil {
		return nil
	}
	return s.r.dst
}

func (s *surface) Release() {
	s.r = nil
}
