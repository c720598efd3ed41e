// Package bsp implements the binary space partition tree that holds the tiled
// windows of one desktop.
//
// Nodes live in an arena owned by the Tree and are referenced by NodeID.
// A node is either a leaf holding exactly one window, or a split holding two
// ordered children, an axis and the fraction of the box given to the first
// child. Leaves reference windows by ID only; the tree never owns them.
package bsp

import (
	"errors"
	"fmt"

	"github.com/bnema/tiler/internal/domain/entity"
)

// NodeID references a node inside a Tree's arena.
type NodeID int32

// NoNode is the null node reference.
const NoNode NodeID = -1

// Ratio bounds applied to every split.
const (
	MinRatio     = 0.05
	MaxRatio     = 0.95
	DefaultRatio = 0.5
)

// ErrCorrupt is returned by Validate when a structural invariant is broken.
var ErrCorrupt = errors.New("bsp: corrupt tree")

type node struct {
	used   bool
	parent NodeID
	first  NodeID // NoNode for leaves
	second NodeID

	window entity.WindowID
	axis   entity.SplitAxis
	ratio  float64
	rect   entity.Rect
}

func (n *node) leaf() bool {
	return n.first == NoNode
}

// Tree is a BSP of windows. The zero value is not usable; call New.
type Tree struct {
	nodes  []node
	free   []NodeID
	root   NodeID
	leaves map[entity.WindowID]NodeID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		root:   NoNode,
		leaves: make(map[entity.WindowID]NodeID),
	}
}

func (t *Tree) alloc(n node) NodeID {
	n.used = true
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) release(id NodeID) {
	t.nodes[id] = node{}
	t.free = append(t.free, id)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].used
}

// Root returns the root node, or NoNode when the tree is empty.
func (t *Tree) Root() NodeID { return t.root }

// Empty reports whether no window is tiled.
func (t *Tree) Empty() bool { return t.root == NoNode }

// Len returns the number of leaves.
func (t *Tree) Len() int { return len(t.leaves) }

// IsLeaf reports whether id is a live leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.valid(id) && t.nodes[id].leaf()
}

// Window returns the window held by a leaf, or "" for splits and invalid ids.
func (t *Tree) Window(id NodeID) entity.WindowID {
	if !t.IsLeaf(id) {
		return ""
	}
	return t.nodes[id].window
}

// Rect returns the rectangle assigned by the last Layout.
func (t *Tree) Rect(id NodeID) entity.Rect {
	if !t.valid(id) {
		return entity.Rect{}
	}
	return t.nodes[id].rect
}

// Parent returns the parent of id, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children returns both children of a split. Leaves return NoNode twice.
func (t *Tree) Children(id NodeID) (first, second NodeID) {
	if !t.valid(id) {
		return NoNode, NoNode
	}
	return t.nodes[id].first, t.nodes[id].second
}

// Axis returns the split axis of a split node.
func (t *Tree) Axis(id NodeID) entity.SplitAxis {
	if !t.valid(id) {
		return entity.SplitHorizontal
	}
	return t.nodes[id].axis
}

// Ratio returns the fraction of the box given to a split's first child.
func (t *Tree) Ratio(id NodeID) float64 {
	if !t.valid(id) || t.nodes[id].leaf() {
		return 0
	}
	return t.nodes[id].ratio
}

// SetRatio sets a split's ratio, clamped to [MinRatio, MaxRatio].
func (t *Tree) SetRatio(id NodeID, ratio float64) bool {
	if !t.valid(id) || t.nodes[id].leaf() {
		return false
	}
	t.nodes[id].ratio = clampRatio(ratio)
	return true
}

// Find returns the leaf holding w. The empty window ID returns the root,
// which Insert treats as "split the whole tree".
func (t *Tree) Find(w entity.WindowID) NodeID {
	if w == "" {
		return t.root
	}
	if id, ok := t.leaves[w]; ok {
		return id
	}
	return NoNode
}

// Contains reports whether w is tiled in this tree.
func (t *Tree) Contains(w entity.WindowID) bool {
	_, ok := t.leaves[w]
	return ok
}

// Insert adds w to the tree and returns its leaf.
//
// An empty tree gets w as a single-leaf root. Otherwise the anchor node
// (the root when anchor is NoNode) is replaced by a split whose children are
// the anchor subtree and the new leaf, in that order, with the given axis and
// an even ratio. Inserting a window that is already tiled returns its leaf
// unchanged.
func (t *Tree) Insert(anchor NodeID, w entity.WindowID, axis entity.SplitAxis) NodeID {
	if w == "" {
		return NoNode
	}
	if id, ok := t.leaves[w]; ok {
		return id
	}

	if t.root == NoNode {
		leaf := t.alloc(node{parent: NoNode, first: NoNode, second: NoNode, window: w})
		t.root = leaf
		t.leaves[w] = leaf
		return leaf
	}

	if !t.valid(anchor) {
		anchor = t.root
	}

	oldParent := t.nodes[anchor].parent
	split := t.alloc(node{
		parent: oldParent,
		first:  anchor,
		second: NoNode,
		axis:   axis,
		ratio:  DefaultRatio,
		rect:   t.nodes[anchor].rect,
	})
	leaf := t.alloc(node{parent: split, first: NoNode, second: NoNode, window: w})
	t.nodes[split].second = leaf
	t.nodes[anchor].parent = split
	t.replaceChild(oldParent, anchor, split)
	t.leaves[w] = leaf

	return leaf
}

// replaceChild points parent's slot holding old at repl. A NoNode parent
// means old was the root.
func (t *Tree) replaceChild(parent, old, repl NodeID) {
	if parent == NoNode {
		t.root = repl
		return
	}
	p := &t.nodes[parent]
	if p.first == old {
		p.first = repl
	} else {
		p.second = repl
	}
}

// Remove deletes a leaf. Its parent split collapses and the sibling subtree
// takes the parent's place. Removing the last leaf empties the tree.
// Non-leaf or unknown ids are ignored.
func (t *Tree) Remove(leaf NodeID) bool {
	if !t.IsLeaf(leaf) {
		return false
	}

	delete(t.leaves, t.nodes[leaf].window)
	parent := t.nodes[leaf].parent

	if parent == NoNode {
		t.release(leaf)
		t.root = NoNode
		return true
	}

	p := t.nodes[parent]
	sibling := p.first
	if sibling == leaf {
		sibling = p.second
	}

	t.nodes[sibling].parent = p.parent
	t.replaceChild(p.parent, parent, sibling)

	t.release(leaf)
	t.release(parent)
	return true
}

// RemoveWindow removes the leaf holding w.
func (t *Tree) RemoveWindow(w entity.WindowID) bool {
	id, ok := t.leaves[w]
	if !ok {
		return false
	}
	return t.Remove(id)
}

// Swap exchanges the windows of two leaves without changing the tree shape.
func (t *Tree) Swap(a, b NodeID) bool {
	if !t.IsLeaf(a) || !t.IsLeaf(b) {
		return false
	}
	if a == b {
		return true
	}
	wa, wb := t.nodes[a].window, t.nodes[b].window
	t.nodes[a].window, t.nodes[b].window = wb, wa
	t.leaves[wa], t.leaves[wb] = b, a
	return true
}

// Walk calls fn for every leaf in post-order. fn may remove the leaf it is
// given.
func (t *Tree) Walk(fn func(leaf NodeID, w entity.WindowID)) {
	for _, id := range t.Leaves() {
		if !t.IsLeaf(id) {
			continue
		}
		fn(id, t.nodes[id].window)
	}
}

// Leaves returns every leaf, first child before second.
func (t *Tree) Leaves() []NodeID {
	out := make([]NodeID, 0, len(t.leaves))
	var visit func(id NodeID)
	visit = func(id NodeID) {
		n := &t.nodes[id]
		if n.leaf() {
			out = append(out, id)
			return
		}
		visit(n.first)
		visit(n.second)
	}
	if t.root != NoNode {
		visit(t.root)
	}
	return out
}

// Windows returns every tiled window in leaf order.
func (t *Tree) Windows() []entity.WindowID {
	leaves := t.Leaves()
	out := make([]entity.WindowID, len(leaves))
	for i, id := range leaves {
		out[i] = t.nodes[id].window
	}
	return out
}

// Free releases every node. Windows are not touched.
func (t *Tree) Free() {
	t.nodes = nil
	t.free = nil
	t.root = NoNode
	clear(t.leaves)
}

// Validate checks the structural invariants: every split has two children
// that point back to it, ratios are in bounds, every leaf holds a distinct
// window and the window index matches the reachable leaves.
func (t *Tree) Validate() error {
	if t.root == NoNode {
		if len(t.leaves) != 0 {
			return fmt.Errorf("%w: empty tree indexes %d windows", ErrCorrupt, len(t.leaves))
		}
		return nil
	}
	if !t.valid(t.root) || t.nodes[t.root].parent != NoNode {
		return fmt.Errorf("%w: bad root %d", ErrCorrupt, t.root)
	}

	seen := make(map[entity.WindowID]NodeID)
	reachable := 0
	var check func(id NodeID) error
	check = func(id NodeID) error {
		reachable++
		n := &t.nodes[id]
		if n.leaf() {
			if n.second != NoNode {
				return fmt.Errorf("%w: node %d has only a second child", ErrCorrupt, id)
			}
			if n.window == "" {
				return fmt.Errorf("%w: leaf %d has no window", ErrCorrupt, id)
			}
			if other, dup := seen[n.window]; dup {
				return fmt.Errorf("%w: window %s in leaves %d and %d", ErrCorrupt, n.window, other, id)
			}
			seen[n.window] = id
			return nil
		}
		if !t.valid(n.first) || !t.valid(n.second) {
			return fmt.Errorf("%w: split %d is missing a child", ErrCorrupt, id)
		}
		if n.ratio < MinRatio || n.ratio > MaxRatio {
			return fmt.Errorf("%w: split %d ratio %.3f out of bounds", ErrCorrupt, id, n.ratio)
		}
		for _, c := range []NodeID{n.first, n.second} {
			if t.nodes[c].parent != id {
				return fmt.Errorf("%w: node %d does not point back to parent %d", ErrCorrupt, c, id)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(t.root); err != nil {
		return err
	}

	if len(seen) != len(t.leaves) {
		return fmt.Errorf("%w: %d reachable leaves, %d indexed", ErrCorrupt, len(seen), len(t.leaves))
	}
	for w, id := range t.leaves {
		if seen[w] != id {
			return fmt.Errorf("%w: index maps %s to %d", ErrCorrupt, w, id)
		}
	}
	if used := len(t.nodes) - len(t.free); used != reachable {
		return fmt.Errorf("%w: %d live nodes, %d reachable", ErrCorrupt, used, reachable)
	}
	return nil
}

func clampRatio(r float64) float64 {
	if r < MinRatio {
		return MinRatio
	}
	if r > MaxRatio {
		return MaxRatio
	}
	return r
}
