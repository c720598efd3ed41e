package bsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/domain/bsp"
	"github.com/bnema/tiler/internal/domain/entity"
)

var screen = entity.Rect{X: 0, Y: 0, W: 1000, H: 800}

// threeWindowTree builds A | (B / C).
func threeWindowTree(t *testing.T) (*bsp.Tree, bsp.NodeID, bsp.NodeID, bsp.NodeID) {
	t.Helper()
	tree := bsp.New()
	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	b := tree.Insert(a, "B", entity.SplitHorizontal)
	c := tree.Insert(b, "C", entity.SplitVertical)
	require.NoError(t, tree.Validate())
	tree.Layout(screen, 0)
	return tree, a, b, c
}

func TestInsert_FirstWindowBecomesRootLeaf(t *testing.T) {
	tree := bsp.New()
	require.True(t, tree.Empty())

	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)

	assert.Equal(t, a, tree.Root())
	assert.True(t, tree.IsLeaf(a))
	assert.Equal(t, entity.WindowID("A"), tree.Window(a))
	assert.Equal(t, 1, tree.Len())
}

func TestInsert_AnchoredHorizontalSplit(t *testing.T) {
	tree := bsp.New()
	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	b := tree.Insert(a, "B", entity.SplitHorizontal)

	root := tree.Root()
	first, second := tree.Children(root)
	assert.Equal(t, a, first)
	assert.Equal(t, b, second)
	assert.Equal(t, entity.SplitHorizontal, tree.Axis(root))
	assert.InDelta(t, 0.5, tree.Ratio(root), 1e-9)

	tree.Layout(screen, 0)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 500, H: 800}, tree.Rect(a))
	assert.Equal(t, entity.Rect{X: 500, Y: 0, W: 500, H: 800}, tree.Rect(b))
}

func TestInsert_NoAnchorSplitsRoot(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)
	oldRoot := tree.Root()

	d := tree.Insert(bsp.NoNode, "D", entity.SplitVertical)

	root := tree.Root()
	first, second := tree.Children(root)
	assert.Equal(t, oldRoot, first)
	assert.Equal(t, d, second)
	assert.Equal(t, entity.SplitVertical, tree.Axis(root))
	require.NoError(t, tree.Validate())
}

func TestInsert_FindEmptyWindowReturnsRoot(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)
	assert.Equal(t, tree.Root(), tree.Find(""))
	assert.Equal(t, bsp.NoNode, tree.Find("missing"))
}

func TestInsert_DuplicateWindowIsNoop(t *testing.T) {
	tree, _, b, _ := threeWindowTree(t)

	got := tree.Insert(tree.Root(), "B", entity.SplitVertical)

	assert.Equal(t, b, got)
	assert.Equal(t, 3, tree.Len())
	require.NoError(t, tree.Validate())
}

func TestRemove_PromotesSibling(t *testing.T) {
	tree := bsp.New()
	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	b := tree.Insert(a, "B", entity.SplitHorizontal)

	require.True(t, tree.Remove(a))

	assert.Equal(t, b, tree.Root())
	tree.Layout(screen, 0)
	assert.Equal(t, screen, tree.Rect(b))
	require.NoError(t, tree.Validate())
}

func TestRemove_LastLeafEmptiesTree(t *testing.T) {
	tree := bsp.New()
	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)

	require.True(t, tree.Remove(a))

	assert.True(t, tree.Empty())
	assert.Equal(t, bsp.NoNode, tree.Root())
	assert.Equal(t, 0, tree.Len())
	require.NoError(t, tree.Validate())
}

func TestRemove_KeepsGrandparentAxisAndRatio(t *testing.T) {
	tree, _, b, _ := threeWindowTree(t)
	root := tree.Root()
	require.True(t, tree.SetRatio(root, 0.7))

	require.True(t, tree.Remove(b))

	assert.Equal(t, root, tree.Root())
	assert.Equal(t, entity.SplitHorizontal, tree.Axis(root))
	assert.InDelta(t, 0.7, tree.Ratio(root), 1e-9)
	assert.Equal(t, []entity.WindowID{"A", "C"}, tree.Windows())
}

func TestRemove_UnknownOrSplitIsNoop(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)

	assert.False(t, tree.Remove(bsp.NoNode))
	assert.False(t, tree.Remove(tree.Root()))
	assert.False(t, tree.Remove(bsp.NodeID(999)))
	assert.False(t, tree.RemoveWindow("missing"))
	assert.Equal(t, 3, tree.Len())
}

func TestLayout_ThreeWindowScenario(t *testing.T) {
	tree, a, b, c := threeWindowTree(t)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 500, H: 800}, tree.Rect(a))
	assert.Equal(t, entity.Rect{X: 500, Y: 0, W: 500, H: 400}, tree.Rect(b))
	assert.Equal(t, entity.Rect{X: 500, Y: 400, W: 500, H: 400}, tree.Rect(c))
}

func TestLayout_Idempotent(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)
	tree.Layout(screen, 6)
	first := tree.Rects()
	tree.Layout(screen, 6)
	assert.Equal(t, first, tree.Rects())
}

func TestLayout_PaddingLeavesGap(t *testing.T) {
	tree := bsp.New()
	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	b := tree.Insert(a, "B", entity.SplitHorizontal)

	tree.Layout(screen, 10)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 495, H: 800}, tree.Rect(a))
	assert.Equal(t, entity.Rect{X: 505, Y: 0, W: 495, H: 800}, tree.Rect(b))
}

func TestResize_ThreeWindowScenario(t *testing.T) {
	tree, _, b, c := threeWindowTree(t)
	root := tree.Root()
	bc := tree.Parent(b)

	ok := tree.Resize(c, 1, 1.0, -1, 1.5)

	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, tree.Ratio(bc), 1e-9)
	assert.InDelta(t, 0.5, tree.Ratio(root), 1e-9)
}

func TestResize_FirstChildGrowsRightEdge(t *testing.T) {
	tree, a, _, _ := threeWindowTree(t)

	require.True(t, tree.Resize(a, 1, 1.2, 1, 1.0))

	// far side (0.5) scaled by 1/1.2
	assert.InDelta(t, 1-0.5/1.2, tree.Ratio(tree.Root()), 1e-9)
}

func TestResize_OuterEdgeIsRejected(t *testing.T) {
	tree, a, b, _ := threeWindowTree(t)
	before := tree.Snapshot()

	assert.False(t, tree.Resize(a, -1, 1.3, 1, 1.0), "left edge of A is the screen edge")
	assert.False(t, tree.Resize(b, 1, 1.0, -1, 1.3), "top edge of B is the screen edge")
	assert.Equal(t, before, tree.Snapshot())
}

func TestResize_AllOrNothing(t *testing.T) {
	tree, _, b, _ := threeWindowTree(t)
	before := tree.Snapshot()

	// width change is valid, height change on the top edge is not
	assert.False(t, tree.Resize(b, -1, 1.2, -1, 1.2))
	assert.Equal(t, before, tree.Snapshot())
}

func TestResize_RejectsBadFactors(t *testing.T) {
	tree, _, _, c := threeWindowTree(t)
	assert.False(t, tree.Resize(c, 1, 1.0, -1, 0))
	assert.False(t, tree.Resize(c, 1, 1.0, -1, -2))
	assert.False(t, tree.Resize(bsp.NoNode, 1, 1.2, 1, 1.0))
}

func TestResize_ClampsAndRejectsWhenPinned(t *testing.T) {
	tree, _, b, c := threeWindowTree(t)
	bc := tree.Parent(b)

	require.True(t, tree.Resize(c, 1, 1.0, -1, 1000))
	assert.InDelta(t, bsp.MinRatio, tree.Ratio(bc), 1e-9)

	assert.False(t, tree.Resize(c, 1, 1.0, -1, 2), "divider already at its bound")
}

func TestEdges(t *testing.T) {
	tree, a, b, c := threeWindowTree(t)

	assert.Equal(t, entity.EdgeLeft|entity.EdgeTop|entity.EdgeBottom, tree.Edges(a))
	assert.Equal(t, entity.EdgeRight|entity.EdgeTop, tree.Edges(b))
	assert.Equal(t, entity.EdgeRight|entity.EdgeBottom, tree.Edges(c))
	assert.Equal(t, entity.EdgeNone, tree.Edges(tree.Root()))

	single := bsp.New()
	only := single.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	assert.Equal(t, entity.EdgeAll, single.Edges(only))
}

func TestMove_SwapsContentKeepsShape(t *testing.T) {
	tree, a, b, c := threeWindowTree(t)
	shapeRoot := tree.Root()

	require.True(t, tree.Move(b, entity.DirLeft))

	assert.Equal(t, shapeRoot, tree.Root())
	assert.Equal(t, entity.WindowID("B"), tree.Window(a))
	assert.Equal(t, entity.WindowID("A"), tree.Window(b))
	assert.Equal(t, b, tree.Find("A"))
	assert.Equal(t, a, tree.Find("B"))

	require.True(t, tree.Move(c, entity.DirUp))
	assert.Equal(t, []entity.WindowID{"B", "C", "A"}, tree.Windows())
	require.NoError(t, tree.Validate())
}

func TestMove_AtTreeEdgeReturnsFalse(t *testing.T) {
	tree, a, b, c := threeWindowTree(t)

	assert.False(t, tree.Move(a, entity.DirLeft))
	assert.False(t, tree.Move(a, entity.DirUp))
	assert.False(t, tree.Move(b, entity.DirUp))
	assert.False(t, tree.Move(c, entity.DirRight))
	assert.Equal(t, []entity.WindowID{"A", "B", "C"}, tree.Windows())
}

func TestMove_PicksNeighbourFacingCenter(t *testing.T) {
	tree, a, b, c := threeWindowTree(t)

	require.True(t, tree.SetRatio(tree.Parent(c), 0.2))
	tree.Layout(screen, 0)
	assert.Equal(t, c, tree.Neighbor(a, entity.DirRight))

	require.True(t, tree.SetRatio(tree.Parent(c), 0.8))
	tree.Layout(screen, 0)
	assert.Equal(t, b, tree.Neighbor(a, entity.DirRight))
}

func TestWalk_AllowsRemovalDuringVisit(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)

	var visited []entity.WindowID
	tree.Walk(func(leaf bsp.NodeID, w entity.WindowID) {
		visited = append(visited, w)
		require.True(t, tree.Remove(leaf))
	})

	assert.ElementsMatch(t, []entity.WindowID{"A", "B", "C"}, visited)
	assert.True(t, tree.Empty())
	require.NoError(t, tree.Validate())
}

func TestFree_ReleasesEverything(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)
	tree.Free()

	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.Contains("A"))
	require.NoError(t, tree.Validate())

	a := tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal)
	assert.Equal(t, a, tree.Root())
}

func TestSwap_Symmetry(t *testing.T) {
	tree, a, _, c := threeWindowTree(t)
	before := tree.Windows()

	require.True(t, tree.Swap(a, c))
	assert.NotEqual(t, before, tree.Windows())
	require.True(t, tree.Swap(a, c))

	assert.Equal(t, before, tree.Windows())
	require.NoError(t, tree.Validate())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tree, _, b, c := threeWindowTree(t)
	require.True(t, tree.Resize(c, 1, 1.0, -1, 1.5))
	snap := tree.Snapshot()

	restored, err := bsp.FromSnapshot(snap, nil)
	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	assert.Equal(t, snap, restored.Snapshot())
	assert.Equal(t, tree.Ratio(tree.Parent(b)), restored.Ratio(restored.Parent(restored.Find("B"))))
}

func TestFromSnapshot_DropsMissingWindows(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)

	restored, err := bsp.FromSnapshot(tree.Snapshot(), func(w entity.WindowID) bool { return w != "B" })

	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	assert.Equal(t, []entity.WindowID{"A", "C"}, restored.Windows())
	assert.Equal(t, entity.SplitHorizontal, restored.Axis(restored.Root()))
}

func TestFromSnapshot_Invalid(t *testing.T) {
	_, err := bsp.FromSnapshot(&entity.SnapshotNode{First: &entity.SnapshotNode{Window: "A"}}, nil)
	assert.ErrorIs(t, err, bsp.ErrInvalidSnapshot)

	dup := &entity.SnapshotNode{
		Ratio:  0.5,
		First:  &entity.SnapshotNode{Window: "A"},
		Second: &entity.SnapshotNode{Window: "A"},
	}
	_, err = bsp.FromSnapshot(dup, nil)
	assert.ErrorIs(t, err, bsp.ErrInvalidSnapshot)

	empty, err := bsp.FromSnapshot(nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestFromSnapshot_DuplicateOfDroppedWindowIsInvalid(t *testing.T) {
	snap := &entity.SnapshotNode{
		Ratio: 0.5,
		First: &entity.SnapshotNode{Window: "A"},
		Second: &entity.SnapshotNode{
			Axis:   entity.SplitVertical,
			Ratio:  0.5,
			First:  &entity.SnapshotNode{Window: "B"},
			Second: &entity.SnapshotNode{Window: "A"},
		},
	}

	for name, keep := range map[string]func(entity.WindowID) bool{
		"keep all": nil,
		"drop A":   func(w entity.WindowID) bool { return w != "A" },
		"drop all": func(entity.WindowID) bool { return false },
	} {
		_, err := bsp.FromSnapshot(snap, keep)
		assert.ErrorIs(t, err, bsp.ErrInvalidSnapshot, name)
	}
}

func TestFromSnapshot_DroppingEverythingYieldsEmptyTree(t *testing.T) {
	tree, _, _, _ := threeWindowTree(t)
	empty, err := bsp.FromSnapshot(tree.Snapshot(), func(entity.WindowID) bool { return false })
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

// randomTree applies a random sequence of inserts and removes.
func randomTree(rng *rand.Rand, ops int) (*bsp.Tree, int) {
	tree := bsp.New()
	next := 0
	for i := 0; i < ops; i++ {
		leaves := tree.Leaves()
		if len(leaves) > 0 && rng.Intn(3) == 0 {
			tree.Remove(leaves[rng.Intn(len(leaves))])
			continue
		}
		anchor := bsp.NoNode
		if len(leaves) > 0 && rng.Intn(4) != 0 {
			anchor = leaves[rng.Intn(len(leaves))]
		}
		axis := entity.SplitAxis(rng.Intn(2))
		tree.Insert(anchor, entity.WindowID(fmt.Sprintf("w%d", next)), axis)
		next++
	}
	return tree, next
}

func TestProperty_InsertRemoveKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		tree, _ := randomTree(rng, 1+rng.Intn(30))
		require.NoError(t, tree.Validate(), "round %d", round)
	}
}

func TestProperty_InsertThenRemoveRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for round := 0; round < 200; round++ {
		tree, n := randomTree(rng, rng.Intn(20))
		leaves := tree.Leaves()
		for _, id := range leaves {
			if tree.Parent(id) != bsp.NoNode {
				tree.SetRatio(tree.Parent(id), 0.05+rng.Float64()*0.9)
			}
		}
		before := tree.Snapshot()

		anchor := bsp.NoNode
		if len(leaves) > 0 && rng.Intn(3) != 0 {
			anchor = leaves[rng.Intn(len(leaves))]
		}
		w := entity.WindowID(fmt.Sprintf("w%d", n))
		leaf := tree.Insert(anchor, w, entity.SplitAxis(rng.Intn(2)))
		require.Equal(t, leaf, tree.Find(w))
		require.True(t, tree.Remove(tree.Find(w)))

		assert.Equal(t, before, tree.Snapshot(), "round %d", round)
		require.NoError(t, tree.Validate())
	}
}

func TestProperty_LayoutCoversBox(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 200; round++ {
		tree, _ := randomTree(rng, 1+rng.Intn(16))
		if tree.Empty() {
			continue
		}
		box := entity.Rect{X: rng.Intn(100), Y: rng.Intn(100), W: 200 + rng.Intn(1800), H: 200 + rng.Intn(1000)}
		tree.Layout(box, 0)

		rects := tree.Rects()
		total := 0
		all := make([]entity.Rect, 0, len(rects))
		for w, r := range rects {
			require.True(t, box.Contains(r), "round %d: %s %v outside %v", round, w, r, box)
			total += r.Area()
			all = append(all, r)
		}
		for i := range all {
			for j := i + 1; j < len(all); j++ {
				require.False(t, all[i].Intersects(all[j]), "round %d: %v overlaps %v", round, all[i], all[j])
			}
		}
		assert.Equal(t, box.Area(), total, "round %d", round)
	}
}

func TestProperty_PaddedLayoutNeverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for round := 0; round < 100; round++ {
		tree, _ := randomTree(rng, 1+rng.Intn(6))
		tree.Layout(screen, 4)
		rects := make([]entity.Rect, 0)
		for _, r := range tree.Rects() {
			require.True(t, screen.Contains(r))
			rects = append(rects, r)
		}
		for i := range rects {
			for j := i + 1; j < len(rects); j++ {
				require.False(t, rects[i].Intersects(rects[j]))
			}
		}
	}
}

// coveredArea sums the leaf rectangles under id plus the padding strip
// each split leaves between its children.
func coveredArea(tree *bsp.Tree, id bsp.NodeID, padding int) int {
	r := tree.Rect(id)
	if tree.IsLeaf(id) {
		return r.Area()
	}
	var strip int
	if tree.Axis(id) == entity.SplitHorizontal {
		strip = min(padding, r.W) * r.H
	} else {
		strip = min(padding, r.H) * r.W
	}
	first, second := tree.Children(id)
	return coveredArea(tree, first, padding) + strip + coveredArea(tree, second, padding)
}

func TestProperty_PaddedLayoutCoversBox(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for round := 0; round < 300; round++ {
		tree, _ := randomTree(rng, 1+rng.Intn(16))
		if tree.Empty() {
			continue
		}
		padding := 1 + rng.Intn(12)
		// One round in four uses a box thinner than the padding on some axis.
		box := entity.Rect{X: rng.Intn(100), Y: rng.Intn(100), W: 200 + rng.Intn(1800), H: 200 + rng.Intn(1000)}
		if rng.Intn(4) == 0 {
			box.W = rng.Intn(padding + 1)
			box.H = rng.Intn(3 * padding)
		}
		tree.Layout(box, padding)

		assert.Equal(t, box.Area(), coveredArea(tree, tree.Root(), padding),
			"round %d: box %v padding %d", round, box, padding)
	}
}

func TestLayout_BoxThinnerThanPadding(t *testing.T) {
	tree := bsp.New()
	b := tree.Insert(tree.Insert(bsp.NoNode, "A", entity.SplitHorizontal), "B", entity.SplitHorizontal)
	a := tree.Find("A")

	tree.Layout(entity.Rect{X: 10, Y: 0, W: 3, H: 50}, 8)

	assert.Zero(t, tree.Rect(a).W)
	assert.Zero(t, tree.Rect(b).W)
	assert.Equal(t, 50, tree.Rect(b).H)
}

func TestProperty_ResizeKeepsRatiosInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	factors := []float64{0.01, 0.3, 0.9, 1.1, 1.5, 3, 50, 1e6}
	dirs := []int{-1, 1}
	for round := 0; round < 200; round++ {
		tree, _ := randomTree(rng, 2+rng.Intn(20))
		for step := 0; step < 10; step++ {
			leaves := tree.Leaves()
			if len(leaves) == 0 {
				break
			}
			leaf := leaves[rng.Intn(len(leaves))]
			tree.Resize(leaf,
				dirs[rng.Intn(2)], factors[rng.Intn(len(factors))],
				dirs[rng.Intn(2)], factors[rng.Intn(len(factors))])
		}
		require.NoError(t, tree.Validate(), "round %d", round)
	}
}
