// SPDX-License-Identifier: MIT
// Package: planegraph/matrix
//
// codec.go - text artifact encoding (see package doc for the layout).

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	methodWriteTo  = "WriteTo"
	methodReadFrom = "ReadFrom"
)

// WriteTo writes the text artifact. It implements io.WriterTo.
func (t *Triangle) WriteTo(w io.Writer) (int64, error) {
	if !t.sized {
		return 0, fmt.Errorf("%s: %w", methodWriteTo, ErrUnsized)
	}

	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw, "%d\n", t.n)
	total += int64(n)
	if err != nil {
		return total, err
	}

	line := make([]byte, 0, 2*t.n)
	for i := 1; i < t.n; i++ {
		line = line[:0]
		base := i * (i - 1) / 2
		for j := 0; j < i; j++ {
			if j > 0 {
				line = append(line, ' ')
			}
			if t.cells[base+j] {
				line = append(line, '1')
			} else {
				line = append(line, '0')
			}
		}
		line = append(line, '\n')
		n, err = bw.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// ReadFrom parses the text artifact into an unsized Triangle and sizes it.
// Short rows, extra cells, values other than 0/1 and missing rows are all
// ErrMalformed. It implements io.ReaderFrom.
func (t *Triangle) ReadFrom(r io.Reader) (int64, error) {
	if t.sized {
		return 0, fmt.Errorf("%s: %w", methodReadFrom, ErrAlreadySized)
	}

	cr := &countingReader{r: r}
	sc := bufio.NewScanner(cr)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return cr.n, fmt.Errorf("%s: %w", methodReadFrom, err)
		}

		return cr.n, fmt.Errorf("%s: missing dimension: %w", methodReadFrom, ErrMalformed)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 || n > MaxDimension {
		return cr.n, fmt.Errorf("%s: dimension %q: %w", methodReadFrom, sc.Text(), ErrMalformed)
	}

	// cells grow row by row, so a header alone allocates nothing
	var cells []bool
	for i := 1; i < n; i++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return cr.n, fmt.Errorf("%s: %w", methodReadFrom, err)
			}

			return cr.n, fmt.Errorf("%s: row %d missing: %w", methodReadFrom, i, ErrMalformed)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != i {
			return cr.n, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodReadFrom, i, len(fields), i, ErrMalformed)
		}
		for j, f := range fields {
			switch f {
			case "0":
				cells = append(cells, false)
			case "1":
				cells = append(cells, true)
			default:
				return cr.n, fmt.Errorf("%s: cell (%d,%d)=%q: %w", methodReadFrom, i, j, f, ErrMalformed)
			}
		}
	}

	t.n, t.cells, t.sized = n, cells, true

	return cr.n, nil
}

// countingReader tracks bytes consumed for the io.ReaderFrom result.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
