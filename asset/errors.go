// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package asset

import "errors"

// Error kinds returned (wrapped with additional context via %w) by the
// asset cache and its manifest loader.
var (
	// ErrNotFound marks a requested named resource that has no registered
	// or loadable entry.
	ErrNotFound = errors.New("asset: not found")

	// ErrLoadFailure marks a lazy cache's loader closure returning an
	// error on miss.
	ErrLoadFailure = errors.New("asset: load failure")

	// ErrParseFailure marks a manifest that failed to parse.
	ErrParseFailure = errors.New("asset: parse failure")
)
