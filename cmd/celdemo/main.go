// SPDX-License-Identifier: Unlicense OR MIT

// Command celdemo builds a tree using every container and leaf, lays
// it out and writes one frame to a PNG file.
//
//	celdemo -theme dark.toml -o out.png -select 2 -rotate 90
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"celui.org/app"
	"celui.org/io/event"
	"celui.org/layout"
	"celui.org/menu"
	"celui.org/theme"
	"celui.org/widget"
)

var (
	themePath = flag.String("theme", "", "theme file (.toml, .yaml or .yml)")
	destPath  = flag.String("o", "celdemo.png", "output PNG file")
	width     = flag.Int("width", 480, "frame width")
	height    = flag.Int("height", 320, "frame height")
	selectRow = flag.Int("select", -1, "list row to select")
	rotate    = flag.Int("rotate", 90, "rotation of the transformed label (0, 90, 180 or 270)")
	openMenu  = flag.Bool("menu", false, "draw with the File menu open")
)

const mainUsage = `celdemo renders a demonstration element tree to a PNG file.

Usage:

	celdemo [flags]

`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "celdemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *width <= 0 || *height <= 0 {
		return errors.New("-width and -height must be positive")
	}
	th := theme.Default()
	if *themePath != "" {
		var err error
		if th, err = theme.Load(*themePath); err != nil {
			return err
		}
	}
	d := demoOptions{
		selected: *selectRow,
		rotation: *rotate,
		menuOpen: *openMenu,
	}
	img, err := render(*width, *height, th, d)
	if err != nil {
		return err
	}
	return writePNG(*destPath, img)
}

type demoOptions struct {
	selected int
	rotation int
	menuOpen bool
}

// render draws one frame of the demo tree.
func render(w, h int, th *theme.Theme, d demoOptions) (*image.RGBA, error) {
	win := app.NewHeadless(w, h, app.Theme(th), app.Title("celdemo"))
	dm, err := newDemo(win.Window, d)
	if err != nil {
		return nil, err
	}
	win.SetRoot(dm.root)
	if err := win.Frame(); err != nil {
		return nil, err
	}
	if reps := win.Diag().Reports(); len(reps) > 0 {
		return nil, fmt.Errorf("%d layout errors, first: %w", len(reps), reps[0])
	}
	return win.Image(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// demo is the element tree and the parts of it callers poke at.
type demo struct {
	root  *layout.CelGroup
	list  *layout.ListGroup
	bar   *menu.Bar
	stack *layout.Stack
	// status shows the last action.
	status *widget.Label
}

func newDemo(win *app.Window, d demoOptions) (*demo, error) {
	th := win.Theme()
	shaper := win.Shaper()
	dm := new(demo)

	dm.status = widget.NewLabel(shaper, "ready")
	dm.status.SetFont(th.Font)
	dm.status.SetColor(th.Foreground)
	dm.status.SetJustify(layout.Start, layout.Center)
	setStatus := func(s string) { dm.status.SetText(s) }

	// Rows of the list.
	dm.list = layout.NewListGroup()
	dm.list.SetBorder(th.BorderWidth, th.Border)
	dm.list.SetColors(layout.ListColors{Even: th.RowEven, Odd: th.RowOdd, Selected: th.Selected})
	dm.list.SetDoubleClick(th.DoubleClick)
	dm.list.SetVisibleRows(6)
	dm.list.SetFill(false, true)
	for i, name := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"} {
		swatch := widget.NewFill(rowColor(i), 10, 10)
		swatch.SetPadding(2, 2, 2, 2)
		lbl := widget.NewLabel(shaper, name)
		lbl.SetFont(th.Font)
		lbl.SetColor(th.Foreground)
		lbl.SetFill(true, false)
		lbl.SetJustify(layout.Start, layout.Center)
		row := dm.list.AddRow(swatch, lbl)
		row.SetSpacing(th.Spacing)
		name := name
		row.SetOnActivate(func(layout.Element, event.Event) layout.Capture {
			setStatus("opened " + name)
			return layout.Captured
		})
	}
	if d.selected >= 0 {
		dm.list.Select(d.selected)
	}

	// A square grid of swatches.
	grid := layout.NewGridLayout(3, 2)
	grid.SetSquare(true)
	grid.SetSpacing(2, 2)
	for i := 0; i < 6; i++ {
		f := widget.NewFill(rowColor(i), 12, 12)
		f.SetFill(true, true)
		if err := grid.AddElement(f); err != nil {
			return nil, err
		}
	}

	// Buttons that wrap.
	flow := layout.NewFlowGroup()
	flow.SetSpacing(th.Spacing, th.Spacing)
	flow.SetPreferredWidth(200)
	flow.SetFill(true, false)
	for _, name := range []string{"New", "Open", "Save", "Close", "Quit"} {
		name := name
		b := widget.NewButton(shaper, name, func(layout.Element, event.Event) layout.Capture {
			setStatus("pressed " + name)
			return layout.Captured
		})
		b.Label().SetFont(th.Font)
		if err := flow.AddElement(b); err != nil {
			return nil, err
		}
	}

	// A rotated caption.
	caption := widget.NewLabel(shaper, "rotated")
	caption.SetFont(th.Font)
	caption.SetColor(th.Foreground)
	tr := layout.NewTransformer()
	tr.SetRotation(d.rotation)
	if err := tr.SetElement(caption); err != nil {
		return nil, err
	}

	// Pages of a stack.
	dm.stack = layout.NewStack()
	dm.stack.SetFill(true, true)
	pic := widget.NewImage(gradient(64, 48), widget.Contain)
	pic.SetFill(true, true)
	for _, e := range []layout.Element{pic, widget.NewFill(th.Selected, 16, 16)} {
		if err := dm.stack.AddElement(e); err != nil {
			return nil, err
		}
	}

	side := layout.NewVGroup()
	side.SetSpacing(th.Spacing)
	side.SetFill(true, true)
	top := layout.NewHGroup()
	top.SetSpacing(th.Spacing)
	top.SetFill(true, false)
	for _, e := range []layout.Element{grid, tr} {
		if err := top.AddElement(e); err != nil {
			return nil, err
		}
	}
	rule := widget.NewLine(layout.Horizontal, 1, th.Border)
	for _, e := range []layout.Element{top, rule, flow, dm.stack} {
		if err := side.AddElement(e); err != nil {
			return nil, err
		}
	}

	body := layout.NewHGroup()
	body.SetSpacing(th.Spacing)
	body.SetFill(true, true)
	for _, e := range []layout.Element{dm.list, side} {
		if err := body.AddElement(e); err != nil {
			return nil, err
		}
	}

	// The menu bar is drawn last so its popups cover the body. The body
	// reserves the bar's height as padding.
	st := menu.DefaultStyle(shaper)
	st.Font = th.Font
	st.Foreground = th.Foreground
	st.Border = th.Border
	pick := func(it *menu.Item) layout.Capture {
		setStatus("menu " + it.Label)
		return layout.Captured
	}
	file := menu.New("File",
		&menu.Item{Label: "Open", OnSelect: pick},
		menu.New("Recent",
			&menu.Item{Label: "one.toml", OnSelect: pick},
			&menu.Item{Label: "two.yaml", OnSelect: pick},
		),
		&menu.Item{Label: "Quit", OnSelect: pick},
	)
	view := menu.New("View",
		&menu.Item{Label: "Next page", OnSelect: func(*menu.Item) layout.Capture {
			dm.nextPage()
			return layout.Captured
		}},
	)
	dm.bar = menu.NewBar(st, file, view)
	dm.bar.SetFill(true, false)
	file.Open = d.menuOpen

	bottom := layout.NewHGroup()
	bottom.SetFill(true, false)
	if err := bottom.AddElement(dm.status); err != nil {
		return nil, err
	}
	content := layout.NewVGroup()
	content.SetFill(true, true)
	content.SetPadding(0, 0, dm.bar.MinSize().H, 0)
	for _, e := range []layout.Element{body, bottom} {
		if err := content.AddElement(e); err != nil {
			return nil, err
		}
	}
	frame := layout.NewFrame(th.BorderWidth, th.Border)
	frame.SetBackground(th.Background)
	frame.SetFill(true, true)
	frame.SetPadding(th.Spacing, th.Spacing, th.Spacing, th.Spacing)
	if err := frame.SetElement(content); err != nil {
		return nil, err
	}

	overlay := layout.NewVGroup()
	overlay.SetFill(true, true)
	if err := overlay.AddElement(dm.bar); err != nil {
		return nil, err
	}

	dm.root = layout.NewCelGroup()
	dm.root.SetFill(true, true)
	for _, e := range []layout.Element{frame, overlay} {
		if err := dm.root.AddElement(e); err != nil {
			return nil, err
		}
	}
	return dm, nil
}

// nextPage cycles the stack.
func (dm *demo) nextPage() {
	n := dm.stack.ElementCount()
	for i := 0; i < n; i++ {
		if dm.stack.NthElement(i) == dm.stack.ActiveElement() {
			dm.stack.SetActiveElement(dm.stack.NthElement((i + 1) % n))
			return
		}
	}
}

func rowColor(i int) color.NRGBA {
	palette := []color.NRGBA{
		{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
		{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff},
		{R: 0xfd, G: 0xd8, B: 0x35, A: 0xff},
		{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
		{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
		{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	}
	return palette[i%len(palette)]
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 0x80, A: 0xff})
		}
	}
	return img
}
