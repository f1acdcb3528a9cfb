// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"log/slog"

	"celui.org/diag"
	"celui.org/text"
	"celui.org/theme"
)

// Option configures a window.
type Option func(*Config)

// Config describes a Window configuration.
type Config struct {
	// Title is the window title.
	Title string
	// Size is the initial size of windows opened on a screen.
	Size image.Point
	// Theme supplies the colors and metrics of the window.
	Theme *theme.Theme
	// Shaper measures and draws text.
	Shaper text.Service
	// Logger receives frame and dispatch diagnostics.
	Logger *slog.Logger
	// Diag collects structural errors reported by the element tree.
	Diag *diag.Sink
}

func (c *Config) apply(options []Option) {
	for _, o := range options {
		o(c)
	}
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the size of windows opened on a screen.
func Size(w, h int) Option {
	if w <= 0 || h <= 0 {
		panic("width and height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = image.Point{X: w, Y: h}
	}
}

// Theme sets the window theme.
func Theme(th *theme.Theme) Option {
	return func(cnf *Config) {
		cnf.Theme = th
	}
}

// Shaper sets the text service.
func Shaper(s text.Service) Option {
	return func(cnf *Config) {
		cnf.Shaper = s
	}
}

// Logger sets the logger.
func Logger(l *slog.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}

// Diag sets the diagnostics sink. By default every window has a sink of
// its own that logs to the window logger.
func Diag(s *diag.Sink) Option {
	return func(cnf *Config) {
		cnf.Diag = s
	}
}
