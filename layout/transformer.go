// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"celui.org/f32"
	"celui.org/geom"
	"celui.org/io/event"
	"celui.org/io/pointer"
	"celui.org/render"
)

// Transformer rotates its single child by a multiple of 90 degrees and
// scales it. The child is laid out in a local frame with its origin at
// zero, drawn off-screen and composited into the transformer rectangle.
// Pointer events are mapped back into the local frame.
type Transformer struct {
	SingleBase
	degrees      int
	zoomX, zoomY float64
	local        geom.Size
}

func NewTransformer() *Transformer {
	t := &Transformer{zoomX: 1, zoomY: 1}
	t.Init(t)
	return t
}

// SetRotation sets the clockwise rotation. Angles that aren't a
// multiple of 90 degrees are reported and treated as no rotation.
func (t *Transformer) SetRotation(degrees int) {
	d := render.NormalizeDegrees(degrees)
	if d%90 != 0 {
		t.report("SetRotation", fmt.Errorf("layout: unsupported rotation %d", degrees))
		d = 0
	}
	t.degrees = d
	t.Invalidate()
}

func (t *Transformer) Rotation() int { return t.degrees }

// SetZoom sets the scale factors applied after rotation. Non positive
// factors reset to 1.
func (t *Transformer) SetZoom(x, y float64) {
	t.zoomX, t.zoomY = scale(x), scale(y)
	t.Invalidate()
}

func (t *Transformer) quarter() bool {
	return t.degrees == 90 || t.degrees == 270
}

func (t *Transformer) MinSize() geom.Size {
	k := t.Element()
	if k == nil || !isShown(k, 0) {
		return geom.Size{}
	}
	min := k.MinSize()
	if !min.Valid() {
		return min
	}
	sz := padded(k, min)
	if t.quarter() {
		sz = sz.Transpose()
	}
	return geom.Size{
		W: int(math.Ceil(float64(sz.W) * t.zoomX)),
		H: int(math.Ceil(float64(sz.H) * t.zoomY)),
	}
}

func (t *Transformer) Layout(r geom.Rect) {
	t.SetRect(r)
	t.local = geom.Size{
		W: int(float64(r.Size.W) / t.zoomX),
		H: int(float64(r.Size.H) / t.zoomY),
	}
	if t.quarter() {
		t.local = t.local.Transpose()
	}
	k := t.Element()
	if k == nil || !isShown(k, 0) {
		return
	}
	k.Layout(Place(k, k.MinSize(), geom.Rect{Size: t.local}, t.just))
}

// LocalSize returns the size of the child frame from the last Layout.
func (t *Transformer) LocalSize() geom.Size { return t.local }

func (t *Transformer) Draw(r render.Renderer) error {
	k := t.Element()
	if k == nil || !isShown(k, 0) || t.local.W <= 0 || t.local.H <= 0 {
		t.Drawn()
		return nil
	}
	s, err := r.NewSurface(t.local.Point())
	if err != nil {
		return fmt.Errorf("layout: transformer surface: %w", err)
	}
	defer s.Release()
	if err := k.Draw(s.Renderer()); err != nil {
		return err
	}
	tex, err := s.Texture()
	if err != nil {
		return fmt.Errorf("layout: transformer texture: %w", err)
	}
	defer tex.Release()
	t.Drawn()
	return r.CopyRotated(tex, t.Rect().Image(), t.degrees)
}

// transform maps the local frame to the transformer rectangle.
func (t *Transformer) transform() f32.Affine2D {
	w, h := float32(t.local.W), float32(t.local.H)
	var rot f32.Affine2D
	rw, rh := w, h
	switch t.degrees {
	case 90:
		rot = f32.NewAffine2D(0, -1, h, 1, 0, 0)
		rw, rh = h, w
	case 180:
		rot = f32.NewAffine2D(-1, 0, w, 0, -1, h)
	case 270:
		rot = f32.NewAffine2D(0, 1, 0, -1, 0, w)
		rw, rh = h, w
	}
	r := t.Rect()
	k := f32.Pt(1, 1)
	if rw > 0 && rh > 0 {
		k = f32.Pt(float32(r.Size.W)/rw, float32(r.Size.H)/rh)
	}
	return rot.Scale(f32.Point{}, k).Offset(f32.FromImage(r.Min.Point()))
}

// ToLocal maps a point in the transformer's parent frame into the local
// frame of the child.
func (t *Transformer) ToLocal(p f32.Point) f32.Point {
	return t.transform().Invert().Transform(p)
}

func (t *Transformer) CaptureEvent(ev event.Event) Capture {
	k := t.Element()
	if k == nil {
		return NotCaptured
	}
	if pe, ok := ev.(pointer.Event); ok {
		pe.Position = t.ToLocal(pe.Position)
		ev = pe
	}
	return t.deliver(t.kids, ev, false)
}
