// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"celui.org/geom"
	"celui.org/layout"
	"celui.org/render"
	"celui.org/text"
)

// Label draws a single line of text.
type Label struct {
	layout.ElementBase
	text   string
	font   text.Font
	color  color.Color
	shaper text.Service

	tex   render.Texture
	owner render.Renderer
}

// NewLabel returns a label drawn with shaper. A nil shaper makes
// MinSize report geom.SizeNoFont.
func NewLabel(shaper text.Service, txt string) *Label {
	l := &Label{
		text:   txt,
		font:   text.Font{Typeface: text.DefaultTypeface, Size: text.DefaultSize},
		color:  color.NRGBA{A: 0xff},
		shaper: shaper,
	}
	l.Init(l)
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(txt string) {
	if txt == l.text {
		return
	}
	l.text = txt
	l.release()
	l.Invalidate()
}

func (l *Label) SetFont(f text.Font) {
	l.font = f
	l.release()
	l.Invalidate()
}

func (l *Label) SetColor(c color.Color) {
	l.color = c
	l.release()
	l.Invalidate()
}

func (l *Label) SetShaper(s text.Service) {
	l.shaper = s
	l.release()
	l.Invalidate()
}

func (l *Label) MinSize() geom.Size {
	if l.shaper == nil {
		return geom.SizeNoFont
	}
	sz, err := l.shaper.Measure(l.font, l.text)
	if err != nil {
		l.Diag().Report("Label.MinSize", err)
		return geom.SizeNoFont
	}
	return geom.Sz(sz.X, sz.Y)
}

func (l *Label) texture(r render.Renderer) (render.Texture, error) {
	if l.tex != nil && l.owner == r {
		return l.tex, nil
	}
	l.release()
	img, err := l.shaper.Rasterize(l.font, l.text, l.color)
	if err != nil {
		return nil, err
	}
	t, err := r.NewTexture(img)
	if err != nil {
		return nil, err
	}
	l.tex, l.owner = t, r
	return t, nil
}

func (l *Label) release() {
	if l.tex != nil {
		l.tex.Release()
		l.tex, l.owner = nil, nil
	}
}

func (l *Label) Draw(r render.Renderer) error {
	l.Drawn()
	rect := l.Rect()
	if l.shaper == nil || l.text == "" || rect.Empty() {
		return nil
	}
	t, err := l.texture(r)
	if err != nil {
		return err
	}
	sz := t.Size()
	r.PushClip(rect.Image())
	defer r.PopClip()
	return r.Copy(t, image.Rectangle{Min: rect.Min.Point(), Max: rect.Min.Point().Add(sz)})
}

func (l *Label) Destroy() {
	l.release()
	l.ElementBase.Destroy()
}
