// Package combtree enumerates all strictly increasing K-sequences over 1..N as
// a prefix tree and lays that tree out in a square.
//
// What:
//
//   - Enumerate(n, k): the trie of all k-combinations of {1..n}. The root holds
//     the empty sequence; a node holding S (|S| < k) has one child per value
//     v ∈ [last(S)+1, n−k+|S|+1] (starting at 1 for the root). Depth-k nodes
//     are the leaves, C(n, k) of them.
//   - Layout(side, radius): post-order width allocation for X, depth for Y.
//     With W leaves the horizontal spacing is (side − 2·radius·W)/(W+1); a
//     leaf is 2·radius wide, an internal node spans its children plus the
//     spacings between them and sits at the middle of that span. With k+1
//     levels the vertical spacing is (side − 2·radius·(k+1))/(k+2) and a node
//     at depth d sits at y = spacing + radius + d·(spacing + 2·radius).
//   - PreOrder(): root first, children left to right. Nodes are stored in the
//     arena in that order, so arena index = flattened vertex id.
//
// Node count (the adjacency matrix size after flattening) is root + internal
// + leaves, Σ_{d=0..k} C(n−k+d, d); for n=4, k=2 that is 1 + 3 + 6 = 10.
//
// Errors:
//
//   - ErrInvalidParams: n ≤ 0, k ≤ 0 or k > n.
//   - ErrTooLarge:      the tree would exceed MaxNodes.
//   - ErrSideTooSmall:  a spacing would be negative for the requested square.
package combtree
