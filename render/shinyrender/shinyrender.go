// SPDX-License-Identifier: Unlicense OR MIT

/*
Package shinyrender implements render.Renderer on top of a
golang.org/x/exp/shiny screen. Any shiny window is a valid target;
Headless provides an in-memory screen for off-screen use.
*/
package shinyrender

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"celui.org/render"
	"celui.org/render/soft"

	"golang.org/x/exp/shiny/screen"
)

// Target is the destination of a Renderer. screen.Window satisfies it.
type Target interface {
	screen.Uploader
	screen.Drawer
}

type publisher interface {
	Publish() screen.PublishResult
}

// Renderer draws into a shiny Target.
type Renderer struct {
	s      screen.Screen
	dst    Target
	bounds image.Rectangle
	color  color.Color
	clip   render.Clip
}

type texture struct {
	t        screen.Texture
	released bool
}

type surface struct {
	s   screen.Screen
	buf screen.Buffer
	r   *soft.Renderer
}

// New returns a renderer drawing into dst, which covers bounds. Textures
// and surfaces are allocated from s.
func New(s screen.Screen, dst Target, bounds image.Rectangle) *Renderer {
	return &Renderer{s: s, dst: dst, bounds: bounds, color: color.Black}
}

func (r *Renderer) Bounds() image.Rectangle {
	return r.bounds
}

func (r *Renderer) SetDrawColor(c color.Color) {
	r.color = c
}

func (r *Renderer) current() image.Rectangle {
	return r.clip.Current(r.bounds)
}

func (r *Renderer) DrawLine(p0, p1 image.Point) error {
	clip := r.current()
	for _, p := range render.Line(p0, p1) {
		if p.In(clip) {
			r.dst.Fill(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, r.color, draw.Over)
		}
	}
	return nil
}

func (r *Renderer) FillRect(rect image.Rectangle) error {
	rect = rect.Intersect(r.current())
	if !rect.Empty() {
		r.dst.Fill(rect, r.color, draw.Over)
	}
	return nil
}

func (r *Renderer) NewTexture(img image.Image) (render.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("shinyrender: NewTexture: nil image")
	}
	b := img.Bounds()
	buf, err := r.s.NewBuffer(b.Size())
	if err != nil {
		return nil, fmt.Errorf("shinyrender: NewTexture: %w", err)
	}
	defer buf.Release()
	draw.Draw(buf.RGBA(), buf.Bounds(), img, b.Min, draw.Src)
	return upload(r.s, buf)
}

func upload(s screen.Screen, buf screen.Buffer) (render.Texture, error) {
	t, err := s.NewTexture(buf.Size())
	if err != nil {
		return nil, fmt.Errorf("shinyrender: upload: %w", err)
	}
	t.Upload(image.Point{}, buf, buf.Bounds())
	return &texture{t: t}, nil
}

func (r *Renderer) Copy(t render.Texture, dst image.Rectangle) error {
	tex, err := r.texture(t)
	if err != nil {
		return err
	}
	sr := tex.t.Bounds()
	clipped := dst.Intersect(r.current())
	if clipped.Empty() || sr.Empty() {
		return nil
	}
	if clipped != dst {
		// Shrink the source by the same proportion as the destination.
		sr = image.Rectangle{
			Min: image.Pt(
				sr.Min.X+(clipped.Min.X-dst.Min.X)*sr.Dx()/dst.Dx(),
				sr.Min.Y+(clipped.Min.Y-dst.Min.Y)*sr.Dy()/dst.Dy()),
			Max: image.Pt(
				sr.Max.X-(dst.Max.X-clipped.Max.X)*sr.Dx()/dst.Dx(),
				sr.Max.Y-(dst.Max.Y-clipped.Max.Y)*sr.Dy()/dst.Dy()),
		}
		dst = clipped
	}
	if dst.Size() == sr.Size() {
		r.dst.Copy(dst.Min, tex.t, sr, draw.Over, nil)
		return nil
	}
	r.dst.Scale(dst, tex.t, sr, draw.Over, nil)
	return nil
}

// CopyRotated does not clip: shiny's affine Draw has no clip support.
func (r *Renderer) CopyRotated(t render.Texture, dst image.Rectangle, degrees int) error {
	tex, err := r.texture(t)
	if err != nil {
		return err
	}
	if render.NormalizeDegrees(degrees) == 0 {
		return r.Copy(t, dst)
	}
	m, err := soft.Rotation(tex.t.Size(), dst, degrees)
	if err != nil {
		return err
	}
	r.dst.Draw(m, tex.t, tex.t.Bounds(), draw.Over, nil)
	return nil
}

func (r *Renderer) texture(t render.Texture) (*texture, error) {
	tex, ok := t.(*texture)
	if !ok {
		return nil, fmt.Errorf("shinyrender: foreign texture %T", t)
	}
	if tex.released {
		return nil, render.ErrReleased
	}
	return tex, nil
}

func (r *Renderer) NewSurface(size image.Point) (render.Surface, error) {
	buf, err := r.s.NewBuffer(size)
	if err != nil {
		return nil, fmt.Errorf("shinyrender: NewSurface: %w", err)
	}
	return &surface{s: r.s, buf: buf, r: soft.New(buf.RGBA())}, nil
}

func (r *Renderer) PushClip(rect image.Rectangle) {
	r.clip.Push(r.bounds, rect)
}

func (r *Renderer) PopClip() {
	r.clip.Pop()
}

func (r *Renderer) Present() error {
	if p, ok := r.dst.(publisher); ok {
		p.Publish()
	}
	return nil
}

func (t *texture) Size() image.Point {
	return t.t.Size()
}

func (t *texture) Release() {
	if !t.released {
		t.released = true
		t.t.Release()
	}
}

func (s *surface) Renderer() render.Renderer {
	return s.r
}

// Texture uploads the surface into a texture usable by the parent renderer.
func (s *surface) Texture() (render.Texture, error) {
	if s.buf == nil {
		return nil, render.ErrReleased
	}
	return upload(s.s, s.buf)
}

func (s *surface) Image() *image.RGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.RGBA()
}

func (s *surface) Release() {
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
}
