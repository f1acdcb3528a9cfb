// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "celui.org/geom"

// Place computes the rectangle an element occupies inside the cell its
// container offers. The cell includes the element padding. On each axis
// a filling element takes the whole padded-in extent; otherwise it takes
// its minimum extent, clamped to the available extent, positioned by its
// own justification or else the container default, or else centered.
func Place(e Element, min geom.Size, cell geom.Rect, def Justification) geom.Rect {
	cfg := e.Base().cfg
	inner := cell.Inset(cfg.PadLeft, cfg.PadTop, cfg.PadRight, cfg.PadBottom)
	if !min.Valid() {
		min = geom.Size{}
	}
	x, w := place(inner.Min.X, inner.Size.W, min.W, cfg.HFill, pick(cfg.HJustify, def.H))
	y, h := place(inner.Min.Y, inner.Size.H, min.H, cfg.VFill, pick(cfg.VJustify, def.V))
	return geom.R(x, y, w, h)
}

func pick(own, def Justify) Justify {
	if own != JustifyDefault {
		return own
	}
	if def != JustifyDefault {
		return def
	}
	return Center
}

func place(start, avail, min int, fill bool, j Justify) (int, int) {
	if fill {
		return start, avail
	}
	sz := min
	if sz > avail {
		sz = avail
	}
	switch j {
	case Start:
		return start, sz
	case End:
		return start + avail - sz, sz
	default:
		return start + (avail-sz)/2, sz
	}
}

// padded returns the minimum size of e including its padding. Invalid
// sizes are returned unchanged.
func padded(e Element, min geom.Size) geom.Size {
	if !min.Valid() {
		return min
	}
	c := e.Base().cfg
	return geom.Size{W: min.W + c.PadLeft + c.PadRight, H: min.H + c.PadTop + c.PadBottom}
}
