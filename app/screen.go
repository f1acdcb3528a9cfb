// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"celui.org/io/mobile"
	"celui.org/render/shinyrender"
)

// RunScreen opens a window on s and runs the event loop until the
// window is closed or ctx is done. The context is checked between
// events.
func (w *Window) RunScreen(ctx context.Context, s screen.Screen) error {
	sw, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  w.cfg.Size.X,
		Height: w.cfg.Size.Y,
		Title:  w.cfg.Title,
	})
	if err != nil {
		return fmt.Errorf("app: open window: %w", err)
	}
	defer sw.Release()
	bounds := image.Rectangle{Max: w.cfg.Size}
	var conv mobile.Converter
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := sw.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
			continue
		case size.Event:
			bounds = e.Bounds()
		case paint.Event:
			w.Invalidate()
		case error:
			w.cfg.Logger.Error("screen event", "err", e)
			continue
		}
		if ev, ok := conv.Convert(e); ok {
			w.Dispatch(ev)
		}
		if !w.NeedsRedraw() {
			continue
		}
		if err := w.Frame(shinyrender.New(s, sw, bounds)); err != nil {
			return err
		}
	}
}
