// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package logx wraps log/slog with the "log at most once per key"
// convention the engine uses for negative caches and loader misses (see
// asset.Cache.logMiss). asset.Cache itself does not use this package and
// keeps its own plain log.Printf.
package logx

import (
	"log/slog"
	"os"
	"sync"
)

// Once logs a distinct message for each key at most once per process
// lifetime. The zero value is ready to use.
type Once struct {
	mu     sync.Mutex
	logged map[string]bool
}

// Warn logs msg/args under key at slog.LevelWarn the first time key is
// seen, and is a no-op on every later call for that key.
func (o *Once) Warn(key, msg string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.logged == nil {
		o.logged = map[string]bool{}
	}
	if o.logged[key] {
		return
	}
	o.logged[key] = true
	slog.Warn(msg, args...)
}

// Fatal logs msg/args at slog.LevelError and terminates the process.
// Reserved for unrecoverable startup failures (a missing mod path, a
// render pipeline that fails to compile), mirroring how vu_macos.go /
// vu_windows.go treat initializeDevice and loader.Load failures, except
// those call sites return instead of exiting since Apple/Windows control
// the run loop; a CLI entry point has no caller left to return to.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	osExit(1)
}

// osExit is a seam so tests can intercept process termination instead of
// killing the test binary.
var osExit = os.Exit
