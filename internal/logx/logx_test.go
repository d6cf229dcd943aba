// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func withCapturedSlog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })
	return &buf
}

func TestOnceWarnLogsOnlyFirstOccurrence(t *testing.T) {
	buf := withCapturedSlog(t)

	var once Once
	once.Warn("texture:brick", "missing texture", "name", "brick")
	once.Warn("texture:brick", "missing texture", "name", "brick")
	once.Warn("texture:stone", "missing texture", "name", "stone")

	got := buf.String()
	if n := strings.Count(got, "brick"); n != 1 {
		t.Errorf("brick message logged %d times, want 1: %q", n, got)
	}
	if n := strings.Count(got, "stone"); n != 1 {
		t.Errorf("stone message logged %d times, want 1: %q", n, got)
	}
}

func TestOnceWarnDistinctInstancesAreIndependent(t *testing.T) {
	buf := withCapturedSlog(t)

	var a, b Once
	a.Warn("k", "from a")
	b.Warn("k", "from b")

	got := buf.String()
	if !strings.Contains(got, "from a") || !strings.Contains(got, "from b") {
		t.Errorf("expected both instances to log independently, got %q", got)
	}
}

func TestFatalLogsAndExits(t *testing.T) {
	buf := withCapturedSlog(t)

	var exitCode int
	orig := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = orig }()

	Fatal("mod path missing", "path", "mods/broken")

	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
	if !strings.Contains(buf.String(), "mod path missing") {
		t.Errorf("expected log output to contain the message, got %q", buf.String())
	}
}
