package bsp

import (
	"math"

	"github.com/bnema/tiler/internal/domain/entity"
)

// Edges returns the sides of a leaf that lie on the outer boundary of the
// tree. A side shared with a sibling subtree at any ancestor is not included.
func (t *Tree) Edges(leaf NodeID) entity.Edge {
	if !t.IsLeaf(leaf) {
		return entity.EdgeNone
	}
	edges := entity.EdgeAll
	child := leaf
	for p := t.nodes[leaf].parent; p != NoNode; child, p = p, t.nodes[p].parent {
		n := &t.nodes[p]
		first := n.first == child
		switch {
		case n.axis == entity.SplitHorizontal && first:
			edges &^= entity.EdgeRight
		case n.axis == entity.SplitHorizontal:
			edges &^= entity.EdgeLeft
		case first:
			edges &^= entity.EdgeBottom
		default:
			edges &^= entity.EdgeTop
		}
	}
	return edges
}

// dividerFor walks up from id to the nearest split of the given axis whose
// divider is on the requested side of id's subtree. towardsFirst selects the
// left/top side. It returns the split and whether id's subtree is its first
// child.
func (t *Tree) dividerFor(id NodeID, axis entity.SplitAxis, towardsFirst bool) (NodeID, bool) {
	child := id
	for p := t.nodes[id].parent; p != NoNode; child, p = p, t.nodes[p].parent {
		n := &t.nodes[p]
		if n.axis != axis {
			continue
		}
		isFirst := n.first == child
		if towardsFirst && !isFirst {
			return p, false
		}
		if !towardsFirst && isFirst {
			return p, true
		}
	}
	return NoNode, false
}

// Move swaps the leaf's window with its neighbour across the nearest ancestor
// split in direction dir. The tree shape is unchanged. It returns false when
// the leaf already sits on that edge of the whole tree.
func (t *Tree) Move(leaf NodeID, dir entity.Direction) bool {
	target := t.Neighbor(leaf, dir)
	if target == NoNode {
		return false
	}
	return t.Swap(leaf, target)
}

// Neighbor returns the leaf adjacent to leaf in direction dir, or NoNode.
// Among several candidates the one facing the center of leaf's last laid out
// rectangle wins.
func (t *Tree) Neighbor(leaf NodeID, dir entity.Direction) NodeID {
	if !t.IsLeaf(leaf) {
		return NoNode
	}
	towardsFirst := dir == entity.DirLeft || dir == entity.DirUp
	split, _ := t.dividerFor(leaf, dir.Axis(), towardsFirst)
	if split == NoNode {
		return NoNode
	}

	id := t.nodes[split].second
	if towardsFirst {
		id = t.nodes[split].first
	}

	cx, cy := t.nodes[leaf].rect.Center()
	for !t.nodes[id].leaf() {
		n := &t.nodes[id]
		if n.axis == dir.Axis() {
			if towardsFirst {
				id = n.second
			} else {
				id = n.first
			}
			continue
		}
		sr := t.nodes[n.second].rect
		takeSecond := false
		if !sr.Empty() {
			if n.axis == entity.SplitHorizontal {
				takeSecond = cx >= sr.X
			} else {
				takeSecond = cy >= sr.Y
			}
		}
		if takeSecond {
			id = n.second
		} else {
			id = n.first
		}
	}
	return id
}

type ratioChange struct {
	split NodeID
	ratio float64
}

// Resize applies a user resize of leaf to the tree.
//
// wRatio and hRatio are new/old size factors; wDir and hDir tell which edge
// moved: -1 for the left/top edge, +1 for the right/bottom edge. For every
// axis whose factor differs from 1, the divider on the moved edge is shifted:
// the pane on the far side of that divider is scaled by the inverse factor.
// Ratios are clamped to [MinRatio, MaxRatio].
//
// The change is all or nothing. Resize returns false, leaving the tree
// untouched, when an axis has no divider on the moved edge, a factor is not a
// positive finite number, or a divider is already pinned at its bound.
func (t *Tree) Resize(leaf NodeID, wDir int, wRatio float64, hDir int, hRatio float64) bool {
	if !t.IsLeaf(leaf) {
		return false
	}

	var changes []ratioChange
	for _, req := range []struct {
		axis  entity.SplitAxis
		dir   int
		ratio float64
	}{
		{entity.SplitHorizontal, wDir, wRatio},
		{entity.SplitVertical, hDir, hRatio},
	} {
		if req.ratio == 1 {
			continue
		}
		c, ok := t.resizeAxis(leaf, req.axis, req.dir, req.ratio)
		if !ok {
			return false
		}
		changes = append(changes, c)
	}

	for _, c := range changes {
		t.nodes[c.split].ratio = c.ratio
	}
	return true
}

func (t *Tree) resizeAxis(leaf NodeID, axis entity.SplitAxis, dir int, factor float64) (ratioChange, bool) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ratioChange{}, false
	}
	split, isFirst := t.dividerFor(leaf, axis, dir < 0)
	if split == NoNode {
		return ratioChange{}, false
	}

	old := t.nodes[split].ratio
	var next float64
	if isFirst {
		next = 1 - (1-old)/factor
	} else {
		next = old / factor
	}
	next = clampRatio(next)
	if math.Abs(next-old) < 1e-9 {
		return ratioChange{}, false
	}
	return ratioChange{split: split, ratio: next}, true
}
