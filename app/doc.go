// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects an element tree to a drawing target and a stream
of input events.

A Window owns the root element. Each frame lays the tree out in the
renderer bounds and draws it; frames are skipped while nothing requested
a redraw and the size is unchanged. Events are dispatched to the tree:
key events go to the element with explicit focus first and then to the
root, pointer events go to the root.

For example:

	w := app.NewWindow(app.Title("demo"))
	w.SetRoot(root)
	for ev := range events {
		w.Dispatch(ev)
		if err := w.Frame(renderer); err != nil {
			...
		}
	}

Run implements that loop over a channel, and RunScreen runs a window on
a golang.org/x/exp/shiny screen.
*/
package app
