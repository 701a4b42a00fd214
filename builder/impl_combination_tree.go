// SPDX-License-Identifier: MIT
// Package: planegraph/builder
//
// impl_combination_tree.go — implementation of CombinationTree(n, k).
//
// Contract:
//   • 0 < k ≤ n and the tree within combtree.MaxNodes (else ErrInvalidTreeParams).
//   • The layout must fit cfg.side for cfg.radius (else ErrSideTooSmall).
//   • Empty target graph (else ErrGraphNotEmpty). No rng needed.
//   • Vertex ids follow pre-order (root = 0); labels are the sequences
//     ("{}", "{1}", "{1, 2}"); the matrix is sized to the total node count.
//   • Edges are emitted parent→child in the child's pre-order position.
//
// Complexity: O(T·k) enumeration + O(T) layout + O(T²) matrix, T = node count.

package builder

import (
	"errors"
	"fmt"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/planegraph/combtree"
	"github.com/katalvlaran/planegraph/core"
)

// CombinationTree returns a Constructor that flattens the laid-out trie of
// all k-combinations of 1..n into g.
func CombinationTree(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		start := time.Now()

		if g.VertexCount() != 0 || g.Adjacency().Sized() {
			return fmt.Errorf("%s: %d vertices present: %w", MethodCombinationTree, g.VertexCount(), ErrGraphNotEmpty)
		}

		tree, err := combtree.Enumerate(n, k)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", MethodCombinationTree, ErrInvalidTreeParams, err)
		}
		if err = tree.Layout(cfg.side, cfg.radius); err != nil {
			if errors.Is(err, combtree.ErrSideTooSmall) {
				return fmt.Errorf("%s: %w: %w", MethodCombinationTree, ErrSideTooSmall, err)
			}

			return fmt.Errorf("%s: %w", MethodCombinationTree, err)
		}

		// Flatten: vertices in pre-order, then one edge per non-root node.
		order := tree.PreOrder()
		ids := make([]int, tree.NodeCount())
		for _, idx := range order {
			ids[idx] = g.AddVertex(tree.Label(idx), tree.Nodes[idx].Pos)
		}
		if err = g.InitAdjacency(tree.NodeCount()); err != nil {
			return fmt.Errorf("%s: %w", MethodCombinationTree, err)
		}
		for _, idx := range order[1:] {
			parent := tree.Nodes[idx].Parent
			if err = g.AddEdge(ids[parent], ids[idx]); err != nil {
				return fmt.Errorf("%s: %w", MethodCombinationTree, err)
			}
		}

		elapsed := time.Since(start)
		cfg.observer.Generated(KindTree, g.VertexCount(), g.EdgeCount(), elapsed)
		klog.V(2).Infof("%s: graph %s: n=%d k=%d, %d nodes (%d leaves)",
			MethodCombinationTree, g.ID(), n, k, tree.NodeCount(), tree.LeafCount())

		return nil
	}
}
