// SPDX-License-Identifier: Unlicense OR MIT

/*
Package theme holds the colors and metrics shared by a window's
elements, and loads them from TOML or YAML files.

Colors are written as "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color
name such as "steelblue". Durations use time.ParseDuration syntax.

	background = "#1e1e1e"
	spacing = 4

	[list]
	even = "#252526"
	odd = "#2d2d30"
	selected = "steelblue"
	double_click = "400ms"
*/
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"celui.org/text"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Theme is the resolved configuration.
type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Border     color.NRGBA

	RowEven      color.NRGBA
	RowOdd       color.NRGBA
	Selected     color.NRGBA
	SelectedText color.NRGBA

	// Spacing is the default gap between children of groups.
	Spacing int
	// BorderWidth is the default frame and list border width.
	BorderWidth int
	Font        text.Font
	// DoubleClick is the longest gap between two presses on a list row
	// that still counts as a double click.
	DoubleClick time.Duration
}

// Format selects a file syntax.
type Format int

const (
	TOML Format = iota
	YAML
)

var ErrFormat = errors.New("theme: unknown file format")

// Default returns the built in theme.
func Default() *Theme {
	return &Theme{
		Background:   rgb(0xffffff),
		Foreground:   rgb(0x000000),
		Border:       rgb(0x808080),
		RowEven:      rgb(0xffffff),
		RowOdd:       rgb(0xf0f0f0),
		Selected:     rgb(0x3f51b5),
		SelectedText: rgb(0xffffff),
		Spacing:      4,
		BorderWidth:  1,
		Font:         text.Font{Typeface: text.DefaultTypeface, Size: text.DefaultSize},
		DoubleClick:  500 * time.Millisecond,
	}
}

// file mirrors the on-disk layout. Every field is optional.
type file struct {
	Background string   `toml:"background" yaml:"background"`
	Foreground string   `toml:"foreground" yaml:"foreground"`
	Border     string   `toml:"border" yaml:"border"`
	Spacing    *int     `toml:"spacing" yaml:"spacing"`
	BorderW    *int     `toml:"border_width" yaml:"border_width"`
	Font       fontFile `toml:"font" yaml:"font"`
	List       listFile `toml:"list" yaml:"list"`
}

type fontFile struct {
	Typeface string `toml:"typeface" yaml:"typeface"`
	Size     int    `toml:"size" yaml:"size"`
}

type listFile struct {
	Even         string `toml:"even" yaml:"even"`
	Odd          string `toml:"odd" yaml:"odd"`
	Selected     string `toml:"selected" yaml:"selected"`
	SelectedText string `toml:"selected_text" yaml:"selected_text"`
	DoubleClick  string `toml:"double_click" yaml:"double_click"`
}

// Load reads a theme file, choosing the syntax from its extension.
func Load(path string) (*Theme, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		f = TOML
	case ".yaml", ".yml":
		f = YAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return t, nil
}

// Decode parses data on top of the default theme.
func Decode(data []byte, format Format) (*Theme, error) {
	var f file
	switch format {
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("unknown key %q", undec[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, ErrFormat
	}
	return f.resolve()
}

func (f *file) resolve() (*Theme, error) {
	t := Default()
	colors := []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"background", f.Background, &t.Background},
		{"foreground", f.Foreground, &t.Foreground},
		{"border", f.Border, &t.Border},
		{"list.even", f.List.Even, &t.RowEven},
		{"list.odd", f.List.Odd, &t.RowOdd},
		{"list.selected", f.List.Selected, &t.Selected},
		{"list.selected_text", f.List.SelectedText, &t.SelectedText},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		v, err := ParseColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = v
	}
	if f.Spacing != nil {
		if *f.Spacing < 0 {
			return nil, fmt.Errorf("spacing: negative value %d", *f.Spacing)
		}
		t.Spacing = *f.Spacing
	}
	if f.BorderW != nil {
		if *f.BorderW < 0 {
			return nil, fmt.Errorf("border_width: negative value %d", *f.BorderW)
		}
		t.BorderWidth = *f.BorderW
	}
	if f.Font.Typeface != "" {
		t.Font.Typeface = f.Font.Typeface
	}
	if f.Font.Size > 0 {
		t.Font.Size = f.Font.Size
	}
	if f.List.DoubleClick != "" {
		d, err := time.ParseDuration(f.List.DoubleClick)
		if err != nil {
			return nil, fmt.Errorf("list.double_click: %w", err)
		}
		t.DoubleClick = d
	}
	return t, nil
}

// ParseColor parses a hex color or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBAModel.Convert(c).(color.NRGBA), nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
