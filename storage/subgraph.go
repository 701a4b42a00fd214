// SPDX-License-Identifier: MIT
// Package: planegraph/storage
//
// subgraph.go - parsing of display-filter id lists such as "{0, 2 5}".

package storage

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseSubgraph parses vertex ids separated by commas and/or whitespace,
// optionally wrapped in braces. Duplicates are kept; order is preserved.
// An empty list yields an empty, non-nil slice.
func ParseSubgraph(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") != strings.HasSuffix(s, "}") {
		return nil, fmt.Errorf("ParseSubgraph: unbalanced braces in %q: %w", s, ErrBadSubgraph)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	ids := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("ParseSubgraph: id %q: %w", f, ErrBadSubgraph)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
