// SPDX-License-Identifier: Unlicense OR MIT

package key

import "testing"

func TestModifiersString(t *testing.T) {
	m := ModCtrl | ModShift
	if got, want := m.String(), "Ctrl+Shift"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !m.Contain(ModShift) || m.Contain(ModAlt) {
		t.Error("Contain mismatch")
	}
}

func TestActivate(t *testing.T) {
	for _, n := range []Name{NameReturn, NameEnter, NameSpace} {
		if !(Event{Name: n}).IsActivate() {
			t.Errorf("%s press should activate", n)
		}
	}
	if (Event{Name: NameReturn, State: Release}).IsActivate() {
		t.Error("release should not activate")
	}
	if !(Event{Name: NameUpArrow}).Pressed(NameUpArrow) {
		t.Error("Pressed mismatch")
	}
}
