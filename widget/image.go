// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"

	"celui.org/geom"
	"celui.org/layout"
	"celui.org/render"
)

// Image displays an image.Image. The image is uploaded once per
// renderer and scaled according to Fit.
type Image struct {
	layout.ElementBase
	src image.Image
	fit Fit

	tex   render.Texture
	owner render.Renderer
}

// NewImage returns an element showing src.
func NewImage(src image.Image, fit Fit) *Image {
	im := &Image{src: src, fit: fit}
	im.Init(im)
	return im
}

// SetImage replaces the image. A nil image makes MinSize report
// geom.SizeNoImage.
func (im *Image) SetImage(src image.Image) {
	im.src = src
	im.release()
	im.Invalidate()
}

func (im *Image) SetFit(fit Fit) {
	im.fit = fit
	im.Invalidate()
}

func (im *Image) MinSize() geom.Size {
	if im.src == nil {
		return geom.SizeNoImage
	}
	if im.fit == ScaleDown || im.fit == Cover {
		return geom.Size{}
	}
	return geom.FromImage(im.src.Bounds()).Size
}

func (im *Image) texture(r render.Renderer) (render.Texture, error) {
	if im.tex != nil && im.owner == r {
		return im.tex, nil
	}
	im.release()
	t, err := r.NewTexture(im.src)
	if err != nil {
		return nil, fmt.Errorf("widget: upload image: %w", err)
	}
	im.tex, im.owner = t, r
	return t, nil
}

func (im *Image) release() {
	if im.tex != nil {
		im.tex.Release()
		im.tex, im.owner = nil, nil
	}
}

func (im *Image) Draw(r render.Renderer) error {
	im.Drawn()
	rect := im.Rect()
	if im.src == nil || rect.Empty() {
		return nil
	}
	t, err := im.texture(r)
	if err != nil {
		return err
	}
	dst := im.fit.rect(t.Size(), rect)
	r.PushClip(rect.Image())
	defer r.PopClip()
	return r.Copy(t, dst.Image())
}

func (im *Image) Destroy() {
	im.release()
	im.ElementBase.Destroy()
}
