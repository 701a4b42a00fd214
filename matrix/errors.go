// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned for a negative dimension or one above MaxDimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrAlreadySized is returned by SetDimension/ReadFrom on a sized matrix.
	ErrAlreadySized = errors.New("matrix: dimension already set")

	// ErrUnsized is returned by At/Set before the dimension is known.
	ErrUnsized = errors.New("matrix: dimension not set")

	// ErrOutOfRange indicates that a row or column is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDiagonal indicates an (i, i) cell; loops have no storage.
	ErrDiagonal = errors.New("matrix: diagonal cell has no storage")

	// ErrMalformed reports a text artifact that does not follow the format.
	ErrMalformed = errors.New("matrix: malformed text")
)
