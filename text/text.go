// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures and rasterizes single lines of text.

A Shaper holds a set of OpenType faces keyed by typeface name. The Go
font is registered as the default so that a zero Shaper configuration
always has something to draw with.
*/
package text

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoFont is returned when no face matches a Font and no default is
// registered.
var ErrNoFont = errors.New("text: no font available")

// Font selects a registered typeface at a pixel size.
type Font struct {
	Typeface string
	// Size is the em size in pixels. Zero selects DefaultSize.
	Size int
}

// DefaultSize is the size used for a Font with zero Size.
const DefaultSize = 14

// DefaultTypeface is the name the Go font is registered under.
const DefaultTypeface = "Go"

// Service is the text service elements draw through.
type Service interface {
	// Measure returns the width and line height of str.
	Measure(f Font, str string) (image.Point, error)
	// Rasterize draws str into a new image exactly as large as Measure
	// reports.
	Rasterize(f Font, str string, c color.Color) (*image.RGBA, error)
}

// Shaper implements Service with OpenType fonts.
type Shaper struct {
	def   string
	fonts map[string]*opentype.Font
	faces map[Font]font.Face
	cache measureCache
}

var _ Service = (*Shaper)(nil)

// NewShaper returns a Shaper with the Go font registered as the default.
func NewShaper() *Shaper {
	s := NewEmptyShaper()
	if err := s.Register(DefaultTypeface, goregular.TTF); err != nil {
		panic(fmt.Errorf("text: embedded Go font: %w", err))
	}
	return s
}

// NewEmptyShaper returns a Shaper with no fonts.
func NewEmptyShaper() *Shaper {
	return &Shaper{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[Font]font.Face),
	}
}

// Register parses an OpenType or TrueType font and registers it under
// typeface. The first registered typeface becomes the default.
func (s *Shaper) Register(typeface string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: register %q: %w", typeface, err)
	}
	if s.def == "" {
		s.def = typeface
	}
	s.fonts[typeface] = f
	for k, face := range s.faces {
		if k.Typeface == typeface {
			face.Close()
			delete(s.faces, k)
		}
	}
	s.cache.Purge()
	return nil
}

func (s *Shaper) face(f Font) (font.Face, Font, error) {
	if f.Size <= 0 {
		f.Size = DefaultSize
	}
	if _, ok := s.fonts[f.Typeface]; !ok {
		f.Typeface = s.def
	}
	if face, ok := s.faces[f]; ok {
		return face, f, nil
	}
	ot, ok := s.fonts[f.Typeface]
	if !ok {
		return nil, f, ErrNoFont
	}
	face, err := opentype.NewFace(ot, &opentype.FaceOptions{
		Size:    float64(f.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, f, fmt.Errorf("text: face %q: %w", f.Typeface, err)
	}
	s.faces[f] = face
	return face, f, nil
}

// Metrics returns the metrics of the face selected by f.
func (s *Shaper) Metrics(f Font) (font.Metrics, error) {
	face, _, err := s.face(f)
	if err != nil {
		return font.Metrics{}, err
	}
	return face.Metrics(), nil
}

func (s *Shaper) Measure(f Font, str string) (image.Point, error) {
	face, f, err := s.face(f)
	if err != nil {
		return image.Point{}, err
	}
	k := measureKey{font: f, str: str}
	if sz, ok := s.cache.Get(k); ok {
		return sz, nil
	}
	m := face.Metrics()
	sz := image.Point{
		X: font.MeasureString(face, str).Ceil(),
		Y: (m.Ascent + m.Descent).Ceil(),
	}
	s.cache.Put(k, sz)
	return sz, nil
}

func (s *Shaper) Rasterize(f Font, str string, c color.Color) (*image.RGBA, error) {
	sz, err := s.Measure(f, str)
	if err != nil {
		return nil, err
	}
	face, _, err := s.face(f)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{Y: face.Metrics().Ascent},
	}
	d.DrawString(str)
	return img, nil
}
