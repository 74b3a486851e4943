// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods
// return these sentinels and tests check them via errors.Is. No method
// panics on user-triggered conditions; panics are reserved for the
// allocation core's programmer-error contracts.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative
	// dimension. Zero-sized shapes are legal and allocate zero slots.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds. At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
