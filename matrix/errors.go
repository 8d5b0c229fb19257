// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests match
// them via errors.Is. No operation panics on user input.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (n < 0)
	// or when input rows do not form a square matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands of Or, And, or Product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadCSV indicates malformed CSV input: ragged rows, non-square
	// data, or a cell other than "0"/"1".
	ErrBadCSV = errors.New("matrix: malformed CSV")
)
