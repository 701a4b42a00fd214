// SPDX-License-Identifier: MIT
// Package: planegraph/storage
//
// errors.go - sentinel errors.

package storage

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrMissingArtifact indicates the matrix or node file is absent.
	ErrMissingArtifact = fmt.Errorf("storage: missing artifact: %w", fs.ErrNotExist)

	// ErrCountMismatch indicates the node count differs from the matrix dimension.
	ErrCountMismatch = errors.New("storage: node count does not match matrix")

	// ErrMalformed indicates an artifact that does not parse.
	ErrMalformed = errors.New("storage: malformed artifact")

	// ErrBadName indicates an empty artifact name or one containing a path separator.
	ErrBadName = errors.New("storage: bad artifact name")

	// ErrBadSubgraph indicates an unparsable subgraph id list.
	ErrBadSubgraph = errors.New("storage: bad subgraph list")
)
