package bsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/tiler/internal/domain/entity"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be turned into a tree.
var ErrInvalidSnapshot = errors.New("bsp: invalid snapshot")

// Snapshot returns a serialisable copy of the tree, or nil when it is empty.
func (t *Tree) Snapshot() *entity.SnapshotNode {
	if t.root == NoNode {
		return nil
	}
	var build func(id NodeID) *entity.SnapshotNode
	build = func(id NodeID) *entity.SnapshotNode {
		n := &t.nodes[id]
		if n.leaf() {
			return &entity.SnapshotNode{Window: n.window}
		}
		return &entity.SnapshotNode{
			Axis:   n.axis,
			Ratio:  n.ratio,
			First:  build(n.first),
			Second: build(n.second),
		}
	}
	return build(t.root)
}

// FromSnapshot rebuilds a tree from a snapshot. Leaves whose window keep
// rejects are dropped and their parent split collapses, exactly as Remove
// would. A nil keep keeps every window.
func FromSnapshot(root *entity.SnapshotNode, keep func(entity.WindowID) bool) (*Tree, error) {
	t := New()
	if root == nil {
		return t, nil
	}
	r := restorer{tree: t, keep: keep, seen: make(map[entity.WindowID]struct{})}
	id, err := r.restore(root, NoNode)
	if err != nil {
		return nil, err
	}
	t.root = id
	return t, nil
}

// restorer rebuilds a tree from a snapshot. seen holds every window the
// snapshot names, kept or not, so validation does not depend on keep.
type restorer struct {
	tree *Tree
	keep func(entity.WindowID) bool
	seen map[entity.WindowID]struct{}
}

func (r *restorer) restore(s *entity.SnapshotNode, parent NodeID) (NodeID, error) {
	t := r.tree
	if s.IsLeaf() {
		if s.Window == "" {
			return NoNode, fmt.Errorf("%w: leaf without window", ErrInvalidSnapshot)
		}
		if _, dup := r.seen[s.Window]; dup {
			return NoNode, fmt.Errorf("%w: window %s appears twice", ErrInvalidSnapshot, s.Window)
		}
		r.seen[s.Window] = struct{}{}
		if r.keep != nil && !r.keep(s.Window) {
			return NoNode, nil
		}
		id := t.alloc(node{parent: parent, first: NoNode, second: NoNode, window: s.Window})
		t.leaves[s.Window] = id
		return id, nil
	}
	if s.First == nil || s.Second == nil {
		return NoNode, fmt.Errorf("%w: split with a single child", ErrInvalidSnapshot)
	}

	ratio := s.Ratio
	if math.IsNaN(ratio) {
		ratio = DefaultRatio
	}
	split := t.alloc(node{parent: parent, first: NoNode, second: NoNode, axis: s.Axis, ratio: clampRatio(ratio)})
	first, err := r.restore(s.First, split)
	if err != nil {
		return NoNode, err
	}
	second, err := r.restore(s.Second, split)
	if err != nil {
		return NoNode, err
	}

	switch {
	case first != NoNode && second != NoNode:
		t.nodes[split].first = first
		t.nodes[split].second = second
		return split, nil
	case first != NoNode:
		t.nodes[first].parent = parent
		t.release(split)
		return first, nil
	case second != NoNode:
		t.nodes[second].parent = parent
		t.release(split)
		return second, nil
	default:
		t.release(split)
		return NoNode, nil
	}
}
