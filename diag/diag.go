// SPDX-License-Identifier: Unlicense OR MIT

/*
Package diag implements the diagnostics channel for structural errors:
wrong element types, nil arguments and broken container invariants.

A Sink keeps the first Capacity reports in order and only counts the rest.
Callers check HasErrors; they do not branch on individual messages.
*/
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Capacity is the number of reports a Sink retains.
const Capacity = 16

// Report is one structural error tagged with the operation that raised it.
type Report struct {
	Op  string
	Err error
}

func (r Report) Error() string {
	return r.Op + ": " + r.Err.Error()
}

func (r Report) Unwrap() error {
	return r.Err
}

// Sink collects reports. The zero value is ready to use and logs to
// slog.Default.
type Sink struct {
	mu       sync.Mutex
	logger   *slog.Logger
	reports  []Report
	overflow int
}

// Default is the sink used by elements that are not attached to a window.
var Default = new(Sink)

// New returns a sink logging to logger.
func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Report records err under op and returns it wrapped as a Report so
// that callers can return it directly.
func (s *Sink) Report(op string, err error) error {
	r := Report{Op: op, Err: err}
	s.mu.Lock()
	if len(s.reports) < Capacity {
		s.reports = append(s.reports, r)
	} else {
		s.overflow++
	}
	l := s.logger
	s.mu.Unlock()
	if l == nil {
		l = slog.Default()
	}
	l.LogAttrs(context.Background(), slog.LevelError, "structural error",
		slog.String("op", op), slog.String("err", err.Error()))
	return r
}

// Reportf is like Report with a formatted message.
func (s *Sink) Reportf(op, format string, args ...any) error {
	return s.Report(op, fmt.Errorf(format, args...))
}

// HasErrors reports whether anything was reported since the last Reset.
func (s *Sink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports) > 0 || s.overflow > 0
}

// Reports returns a copy of the retained reports.
func (s *Sink) Reports() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Report(nil), s.reports...)
}

// Overflow returns the number of reports dropped because the sink was full.
func (s *Sink) Overflow() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overflow
}

// Reset clears the sink.
func (s *Sink) Reset() {
	s.mu.Lock()
	s.reports = nil
	s.overflow = 0
	s.mu.Unlock()
}
