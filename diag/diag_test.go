// SPDX-License-Identifier: Unlicense OR MIT

package diag

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func quiet() *Sink {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSinkOverflow(t *testing.T) {
	s := quiet()
	if s.HasErrors() {
		t.Fatal("fresh sink has errors")
	}
	for i := 0; i < Capacity+5; i++ {
		s.Reportf("TestOp", "failure %d", i)
	}
	if !s.HasErrors() {
		t.Error("HasErrors false after reports")
	}
	if got := len(s.Reports()); got != Capacity {
		t.Errorf("retained %d reports, want %d", got, Capacity)
	}
	if got := s.Overflow(); got != 5 {
		t.Errorf("overflow %d, want 5", got)
	}
	if first := s.Reports()[0]; first.Error() != "TestOp: failure 0" {
		t.Errorf("first report %q", first.Error())
	}
	s.Reset()
	if s.HasErrors() {
		t.Error("HasErrors true after Reset")
	}
}

func TestReportWraps(t *testing.T) {
	s := quiet()
	base := errors.New("boom")
	err := s.Report("Op", base)
	if !errors.Is(err, base) {
		t.Errorf("report %v does not wrap %v", err, base)
	}
}
