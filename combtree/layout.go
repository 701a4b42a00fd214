// SPDX-License-Identifier: MIT
// Package: planegraph/combtree
//
// layout.go - X by post-order width allocation, Y by depth.

package combtree

import "fmt"

const methodLayout = "Layout"

// Layout assigns Pos to every node so the tree fits a side×side square with
// vertex disks of the given radius.
func (t *Tree) Layout(side, radius float64) error {
	w := float64(t.LeafCount())
	xSpace := (side - 2*radius*w) / (w + 1)
	if xSpace < 0 {
		return fmt.Errorf("%s: %d leaves need width %g > %g: %w",
			methodLayout, t.LeafCount(), 2*radius*w, side, ErrSideTooSmall)
	}
	levels := float64(t.K + 1)
	ySpace := (side - 2*radius*levels) / (levels + 1)
	if ySpace < 0 {
		return fmt.Errorf("%s: %d levels need height %g > %g: %w",
			methodLayout, t.K+1, 2*radius*levels, side, ErrSideTooSmall)
	}

	t.placeX(0, xSpace, xSpace, radius)
	for i := range t.Nodes {
		t.Nodes[i].Pos.Y = ySpace + radius + float64(t.Nodes[i].Depth)*(ySpace+2*radius)
	}

	return nil
}

// placeX positions the subtree of idx starting at offset and returns its width.
func (t *Tree) placeX(idx int, offset, space, radius float64) float64 {
	node := &t.Nodes[idx]
	if len(node.Children) == 0 {
		node.Pos.X = offset + radius

		return 2 * radius
	}

	width := 0.0
	for i, c := range node.Children {
		if i > 0 {
			width += space
		}
		width += t.placeX(c, offset+width, space, radius)
	}
	node.Pos.X = offset + width/2

	return width
}
