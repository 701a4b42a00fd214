// Package matrix holds the triangular adjacency matrix that backs every
// generated graph.
//
// An undirected simple graph needs only the strict lower triangle of its
// adjacency matrix: cell (i, j) with i > j. Triangle stores exactly those
// n·(n−1)/2 cells in one flat slice, addresses them with either index order,
// and reads/writes the plain-text artifact used by storage:
//
//	3
//	1
//	0 1
//
// Line 1 is the dimension n; line i+1 (i = 1..n−1) holds the i cells
// (i,0)..(i,i−1) as space-separated 0/1 digits.
//
// A Triangle is sized once. Generation and loading both size it exactly once,
// and a second SetDimension is reported as ErrAlreadySized rather than
// silently discarding the edges it holds.
//
// Complexity: At/Set O(1); WriteTo/ReadFrom O(n²); memory n·(n−1)/2 bools.
package matrix
