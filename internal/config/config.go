// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config reduces the engine's start-up API footprint using
// functional options, the same shape the teacher's config.go uses for its
// NewEngine constructor.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
package config

// Config holds the knobs an application can set before starting the
// engine: window geometry, where to find mod content, and which render
// pipeline and tactical-camera preset to activate by default.
type Config struct {
	Title        string
	Windowed     bool
	X, Y         int32
	W, H         int32
	ModPaths     []string
	Pipeline     string
	CameraPreset string
}

// defaults provides reasonable values so the engine runs even if no
// options are supplied.
var defaults = Config{
	Title:        "tacticus",
	Windowed:     false,
	X:            0,
	Y:            0,
	W:            1280,
	H:            720,
	Pipeline:     "default",
	CameraPreset: "default",
}

// Option overrides one or more Config fields. For use with New.
type Option func(*Config)

// New builds a Config from defaults overridden by the given options, in
// the order given (later options win on conflicting fields).
func New(opts ...Option) Config {
	c := defaults
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Title sets the window title.
func Title(t string) Option {
	return func(c *Config) { c.Title = t }
}

// Size sets the window's top-left corner and extent in pixels. Values
// outside a sane range are ignored, keeping whatever the config already
// held.
func Size(x, y, w, h int32) Option {
	return func(c *Config) {
		if x >= 0 && x < 10_000 {
			c.X = x
		}
		if y >= 0 && y < 10_000 {
			c.Y = y
		}
		if w > 10 && w < 10_000 {
			c.W = w
		}
		if h > 10 && h < 10_000 {
			c.H = h
		}
	}
}

// Windowed runs in windowed mode instead of fullscreen.
func Windowed() Option {
	return func(c *Config) { c.Windowed = true }
}

// ModPaths sets the ordered list of mod content directories or mega
// archives to load, later entries overriding earlier ones on name
// collision.
func ModPaths(paths ...string) Option {
	return func(c *Config) { c.ModPaths = append([]string{}, paths...) }
}

// Pipeline sets the default render pipeline name to activate at startup.
func Pipeline(name string) Option {
	return func(c *Config) { c.Pipeline = name }
}

// CameraPreset sets the default tactical-camera preset name to activate
// at startup.
func CameraPreset(name string) Option {
	return func(c *Config) { c.CameraPreset = name }
}
