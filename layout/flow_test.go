// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"celui.org/geom"
)

func newFlow(n int) (*FlowGroup, []*box) {
	f := NewFlowGroup()
	f.SetSpacing(5, 2)
	var kids []*box
	for i := 0; i < n; i++ {
		b := newBox(30, 10)
		f.AddElement(b)
		kids = append(kids, b)
	}
	return f, kids
}

func origins(kids []*box) []geom.Location {
	var locs []geom.Location
	for _, k := range kids {
		locs = append(locs, k.Location())
	}
	return locs
}

func TestFlowMinSize(t *testing.T) {
	f, _ := newFlow(5)
	if got, want := f.MinSize(), geom.Sz(170, 10); got != want {
		t.Errorf("single row min size %v, want %v", got, want)
	}
	f.SetPreferredWidth(100)
	if got, want := f.MinSize(), geom.Sz(100, 22); got != want {
		t.Errorf("wrapped min size %v, want %v", got, want)
	}
}

func TestFlowLayout(t *testing.T) {
	f, kids := newFlow(5)
	f.Layout(geom.R(0, 0, 100, 22))
	want := []geom.Location{{X: 0, Y: 0}, {X: 35, Y: 0}, {X: 70, Y: 0}, {X: 0, Y: 12}, {X: 35, Y: 12}}
	if diff := cmp.Diff(want, origins(kids)); diff != "" {
		t.Errorf("origins (-want +got):\n%s", diff)
	}
}

func TestFlowMirroredOrders(t *testing.T) {
	f, kids := newFlow(4)
	f.SetFillOrder(RightToLeft | BottomToTop)
	f.Layout(geom.R(0, 0, 100, 22))
	want := []geom.Location{{X: 70, Y: 12}, {X: 35, Y: 12}, {X: 0, Y: 12}, {X: 70, Y: 0}}
	if diff := cmp.Diff(want, origins(kids)); diff != "" {
		t.Errorf("origins (-want +got):\n%s", diff)
	}
}

func TestFlowOversizedChild(t *testing.T) {
	f := NewFlowGroup()
	wide := newBox(150, 10)
	f.AddElement(wide)
	f.AddElement(newBox(10, 10))
	f.Layout(geom.R(0, 0, 100, 30))
	if got := wide.Size().W; got != 100 {
		t.Errorf("oversized child width %d, want clamp to 100", got)
	}
}
