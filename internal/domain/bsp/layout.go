package bsp

import (
	"math"

	"github.com/bnema/tiler/internal/domain/entity"
)

// Layout assigns rectangles to every node, top-down from box.
// A split divides its box along its axis at its ratio, leaving padding pixels
// between the two children; a leaf receives its whole box. Calling Layout
// twice with the same arguments yields the same rectangles.
func (t *Tree) Layout(box entity.Rect, padding int) {
	if t.root == NoNode {
		return
	}
	if padding < 0 {
		padding = 0
	}
	t.layout(t.root, box, padding)
}

func (t *Tree) layout(id NodeID, box entity.Rect, padding int) {
	n := &t.nodes[id]
	n.rect = box
	if n.leaf() {
		return
	}
	first, second := n.first, n.second
	a, b := splitRect(box, n.axis, n.ratio, padding)
	t.layout(first, a, padding)
	t.layout(second, b, padding)
}

// splitRect divides box at ratio along axis with a padding gap.
func splitRect(box entity.Rect, axis entity.SplitAxis, ratio float64, padding int) (entity.Rect, entity.Rect) {
	if axis == entity.SplitHorizontal {
		avail := max(box.W-padding, 0)
		w1 := splitLength(avail, ratio)
		return entity.Rect{X: box.X, Y: box.Y, W: w1, H: box.H},
			entity.Rect{X: box.X + w1 + padding, Y: box.Y, W: avail - w1, H: box.H}
	}
	avail := max(box.H-padding, 0)
	h1 := splitLength(avail, ratio)
	return entity.Rect{X: box.X, Y: box.Y, W: box.W, H: h1},
		entity.Rect{X: box.X, Y: box.Y + h1 + padding, W: box.W, H: avail - h1}
}

func splitLength(avail int, ratio float64) int {
	l := int(math.Round(float64(avail) * ratio))
	return min(max(l, 0), avail)
}

// Rects returns the last assigned rectangle of every tiled window.
func (t *Tree) Rects() map[entity.WindowID]entity.Rect {
	out := make(map[entity.WindowID]entity.Rect, len(t.leaves))
	for w, id := range t.leaves {
		out[w] = t.nodes[id].rect
	}
	return out
}
