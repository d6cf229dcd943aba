// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "errors"

// Error kinds returned (wrapped with additional context via %w) by the
// material/pipeline state machine and the scene render loop.
var (
	// ErrBadArgument marks a caller-supplied resource as null, mistyped, or
	// produced by a different renderer. Raised before any GPU state changes.
	ErrBadArgument = errors.New("render: bad argument")

	// ErrInvalidFormat marks a descriptor or binary stream that failed a
	// structural check.
	ErrInvalidFormat = errors.New("render: invalid format")

	// ErrNotFound marks a requested named resource that does not exist.
	ErrNotFound = errors.New("render: not found")

	// ErrIoFailure marks an OS-level stream failure.
	ErrIoFailure = errors.New("render: io failure")

	// ErrResourceCreation marks a GPU backend rejection of a shader,
	// pipeline, buffer, or texture creation.
	ErrResourceCreation = errors.New("render: resource creation failed")

	// ErrParseFailure marks an attribute or text node that could not be
	// parsed into its expected type.
	ErrParseFailure = errors.New("render: parse failure")

	// ErrConfiguration marks a material/shader mismatch: a declared
	// property colliding with a predefined name, a type mismatch between
	// a property and its reflected shader variable, or an unmatched
	// shader variable.
	ErrConfiguration = errors.New("render: configuration error")
)
