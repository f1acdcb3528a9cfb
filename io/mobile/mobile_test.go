// SPDX-License-Identifier: Unlicense OR MIT

package mobile

import (
	"testing"
	"time"

	"celui.org/f32"
	"celui.org/io/event"
	"celui.org/io/key"
	"celui.org/io/pointer"

	"github.com/google/go-cmp/cmp"
	mkey "golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
)

func TestConvertMouse(t *testing.T) {
	var clock time.Duration
	c := &Converter{Now: func() time.Duration { clock += time.Millisecond; return clock }}
	in := []interface{}{
		mouse.Event{X: 1, Y: 2, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
		mouse.Event{X: 3, Y: 4},
		mouse.Event{X: 3, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
		mouse.Event{X: 5, Y: 6},
		mouse.Event{X: 5, Y: 6, Button: mouse.ButtonWheelDown, Direction: mouse.DirStep},
	}
	want := []event.Event{
		pointer.Event{Kind: pointer.Press, Time: 1 * time.Millisecond, Buttons: pointer.ButtonPrimary, Position: f32.Pt(1, 2)},
		pointer.Event{Kind: pointer.Drag, Time: 2 * time.Millisecond, Buttons: pointer.ButtonPrimary, Position: f32.Pt(3, 4)},
		pointer.Event{Kind: pointer.Release, Time: 3 * time.Millisecond, Buttons: pointer.ButtonPrimary, Position: f32.Pt(3, 4)},
		pointer.Event{Kind: pointer.Move, Time: 4 * time.Millisecond, Position: f32.Pt(5, 6)},
		pointer.Event{Kind: pointer.Scroll, Time: 5 * time.Millisecond, Position: f32.Pt(5, 6), Scroll: f32.Pt(0, 1)},
	}
	var got []event.Event
	for _, e := range in {
		ev, ok := c.Convert(e)
		if !ok {
			t.Fatalf("Convert(%#v) not converted", e)
		}
		got = append(got, ev)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("converted events mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertKey(t *testing.T) {
	var c Converter
	tests := []struct {
		in   mkey.Event
		want key.Event
	}{
		{mkey.Event{Code: mkey.CodeUpArrow, Direction: mkey.DirPress}, key.Event{Name: key.NameUpArrow}},
		{mkey.Event{Code: mkey.CodeReturnEnter, Direction: mkey.DirRelease}, key.Event{Name: key.NameReturn, State: key.Release}},
		{mkey.Event{Rune: 'q', Code: mkey.CodeQ, Modifiers: mkey.ModControl, Direction: mkey.DirPress}, key.Event{Name: "Q", Modifiers: key.ModCtrl}},
	}
	for _, tc := range tests {
		got, ok := c.Convert(tc.in)
		if !ok {
			t.Errorf("Convert(%v) not converted", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("Convert(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, ok := c.Convert(mkey.Event{Code: mkey.CodeF1, Direction: mkey.DirPress}); ok {
		t.Error("unmapped non-printable key was converted")
	}
}

func TestConvertSize(t *testing.T) {
	var c Converter
	got, ok := c.Convert(size.Event{WidthPx: 640, HeightPx: 480})
	if !ok || got != (event.FrameEvent{Width: 640, Height: 480}) {
		t.Errorf("Convert(size) = %v, %v", got, ok)
	}
}
