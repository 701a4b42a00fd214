// SPDX-License-Identifier: MIT
// Package: planegraph/combtree
//
// tree.go - arena trie of increasing sequences.

package combtree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/planegraph/geom"
)

// MaxNodes bounds Enumerate; the flattened graph needs an n² matrix.
const MaxNodes = 10000

const methodEnumerate = "Enumerate"

var (
	// ErrInvalidParams indicates n ≤ 0, k ≤ 0 or k > n.
	ErrInvalidParams = errors.New("combtree: invalid tree parameters")
	// ErrTooLarge indicates the tree would exceed MaxNodes.
	ErrTooLarge = errors.New("combtree: tree too large")
	// ErrSideTooSmall indicates the tree does not fit the square.
	ErrSideTooSmall = errors.New("combtree: side too small for tree")
)

// Node is one arena slot. Parent is -1 for the root.
type Node struct {
	Seq      []int
	Parent   int
	Children []int
	Depth    int
	Pos      geom.Point
}

// Tree is the enumerated trie.
type Tree struct {
	N, K  int
	Nodes []Node

	leaves int
}

// Enumerate builds the combination trie for k-subsets of {1..n}.
// Complexity: O(NodeCount · k).
func Enumerate(n, k int) (*Tree, error) {
	if n <= 0 || k <= 0 || k > n {
		return nil, fmt.Errorf("%s: n=%d k=%d: %w", methodEnumerate, n, k, ErrInvalidParams)
	}
	total, ok := countNodes(n, k)
	if !ok {
		return nil, fmt.Errorf("%s: n=%d k=%d exceeds %d nodes: %w", methodEnumerate, n, k, MaxNodes, ErrTooLarge)
	}

	t := &Tree{N: n, K: k, Nodes: make([]Node, 0, total)}
	t.expand(nil, -1)

	return t, nil
}

// expand appends the node for seq and, recursively, its subtree.
func (t *Tree) expand(seq []int, parent int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Seq: seq, Parent: parent, Depth: len(seq)})
	if len(seq) == t.K {
		t.leaves++

		return idx
	}

	first := 1
	if len(seq) > 0 {
		first = seq[len(seq)-1] + 1
	}
	last := t.N - t.K + len(seq) + 1
	for v := first; v <= last; v++ {
		child := make([]int, len(seq)+1)
		copy(child, seq)
		child[len(seq)] = v
		c := t.expand(child, idx)
		t.Nodes[idx].Children = append(t.Nodes[idx].Children, c)
	}

	return idx
}

// NodeCount returns the total number of nodes, root included.
func (t *Tree) NodeCount() int { return len(t.Nodes) }

// LeafCount returns C(n, k).
func (t *Tree) LeafCount() int { return t.leaves }

// Label renders the node's sequence, e.g. "{1, 2}".
func (t *Tree) Label(idx int) string { return Label(t.Nodes[idx].Seq) }

// PreOrder lists node indices root first, children left to right.
func (t *Tree) PreOrder() []int {
	out := make([]int, 0, len(t.Nodes))
	var walk func(int)
	walk = func(i int) {
		out = append(out, i)
		for _, c := range t.Nodes[i].Children {
			walk(c)
		}
	}
	if len(t.Nodes) > 0 {
		walk(0)
	}

	return out
}

// Label renders a sequence as "{}", "{1}", "{1, 2}".
func Label(seq []int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range seq {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')

	return sb.String()
}

// countNodes returns Σ_{d=0..k} C(n−k+d, d), or false once it passes MaxNodes.
func countNodes(n, k int) (int, bool) {
	total := 0
	for d := 0; d <= k; d++ {
		c, ok := binomial(n-k+d, d)
		if !ok {
			return 0, false
		}
		total += c
		if total > MaxNodes {
			return 0, false
		}
	}

	return total, true
}

// binomial computes C(n, r), reporting false once it passes MaxNodes.
func binomial(n, r int) (int, bool) {
	if r > n-r {
		r = n - r
	}
	c := 1
	for i := 1; i <= r; i++ {
		c = c * (n - r + i) / i
		if c > MaxNodes {
			return 0, false
		}
	}

	return c, true
}
