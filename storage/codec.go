// SPDX-License-Identifier: MIT
// Package: planegraph/storage
//
// codec.go - stream encoding of the two artifacts.

package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planegraph/core"
	"github.com/katalvlaran/planegraph/geom"
	"github.com/katalvlaran/planegraph/matrix"
)

const (
	methodEncode = "Encode"
	methodDecode = "Decode"
)

// Encode writes the matrix artifact to mw and the node list to nw.
// Labels must not contain line breaks.
func Encode(g *core.Graph, mw, nw io.Writer) error {
	vs := g.Vertices()
	for _, v := range vs {
		if strings.ContainsAny(v.Label, "\r\n") {
			return fmt.Errorf("%s: vertex %d label %q has a line break: %w", methodEncode, v.ID, v.Label, ErrMalformed)
		}
	}

	if _, err := g.Adjacency().WriteTo(mw); err != nil {
		return fmt.Errorf("%s: matrix: %w", methodEncode, err)
	}

	bw := bufio.NewWriter(nw)
	fmt.Fprintf(bw, "%d\n", len(vs))
	for _, v := range vs {
		bw.WriteString(formatCoord(v.Pos.X))
		bw.WriteByte(' ')
		bw.WriteString(formatCoord(v.Pos.Y))
		bw.WriteByte(' ')
		bw.WriteString(v.Label)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: nodes: %w", methodEncode, err)
	}

	return nil
}

// Decode reads both artifacts and rebuilds the graph. opts are passed to
// core.FromMatrix.
func Decode(mr, nr io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	m := matrix.NewTriangle()
	if _, err := m.ReadFrom(mr); err != nil {
		if errors.Is(err, matrix.ErrMalformed) {
			return nil, fmt.Errorf("%s: matrix: %w: %w", methodDecode, ErrMalformed, err)
		}

		return nil, fmt.Errorf("%s: matrix: %w", methodDecode, err)
	}

	vs, err := readNodes(nr, m.Dimension())
	if err != nil {
		return nil, fmt.Errorf("%s: nodes: %w", methodDecode, err)
	}

	g, err := core.FromMatrix(m, vs, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}

	return g, nil
}

// readNodes parses the node list and checks its count against want.
func readNodes(r io.Reader, want int) ([]core.Vertex, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("missing count: %w", ErrMalformed)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("count %q: %w", sc.Text(), ErrMalformed)
	}
	if n != want {
		return nil, fmt.Errorf("%d nodes, matrix dimension %d: %w", n, want, ErrCountMismatch)
	}

	vs := make([]core.Vertex, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, err
			}

			return nil, fmt.Errorf("line %d missing: %w", i+2, ErrMalformed)
		}
		pos, label, err := parseNode(strings.TrimSuffix(sc.Text(), "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		vs = append(vs, core.Vertex{ID: i, Label: label, Pos: pos})
	}

	return vs, nil
}

// parseNode splits "<x> <y> <label>"; the label may be absent.
func parseNode(line string) (geom.Point, string, error) {
	xs, rest, ok := strings.Cut(line, " ")
	if !ok {
		return geom.Point{}, "", fmt.Errorf("%q has no y: %w", line, ErrMalformed)
	}
	ys, label, _ := strings.Cut(rest, " ")

	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Point{}, "", fmt.Errorf("x %q: %w", xs, ErrMalformed)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, "", fmt.Errorf("y %q: %w", ys, ErrMalformed)
	}

	return geom.Point{X: x, Y: y}, label, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
