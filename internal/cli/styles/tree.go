package styles

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/tiler/internal/domain/entity"
)

// TreeRenderer draws stored layout trees.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// RenderSnapshot renders the header and the tree of a stored layout.
func (r *TreeRenderer) RenderSnapshot(snap *entity.LayoutSnapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s  %s\n",
		r.theme.Highlight.Render(IconDesktop),
		r.theme.Title.Render("desktop "+snap.Desktop.String()),
		r.theme.Subtle.Render(fmt.Sprintf("%d windows, saved %s",
			snap.WindowCount, snap.SavedAt.Local().Format(time.DateTime))),
	))
	if snap.Root == nil {
		sb.WriteString("  " + r.theme.Subtle.Render("empty") + "\n")
		return sb.String()
	}
	for _, line := range TreeLines(snap.Root) {
		sb.WriteString("  " + r.theme.Normal.Render(line) + "\n")
	}
	return sb.String()
}

// TreeLines renders a snapshot tree as indented text, one node per line.
// Splits show their axis and the share of the first child.
func TreeLines(root *entity.SnapshotNode) []string {
	if root == nil {
		return nil
	}
	var out []string
	var walk func(n *entity.SnapshotNode, prefix, branch, indent string)
	walk = func(n *entity.SnapshotNode, prefix, branch, indent string) {
		if n == nil {
			return
		}
		out = append(out, prefix+branch+nodeLabel(n))
		if n.IsLeaf() {
			return
		}
		walk(n.First, prefix+indent, "├── ", "│   ")
		walk(n.Second, prefix+indent, "└── ", "    ")
	}
	walk(root, "", "", "")
	return out
}

func nodeLabel(n *entity.SnapshotNode) string {
	if n.IsLeaf() {
		return string(n.Window)
	}
	return "split " + n.Axis.String() + " " + strconv.FormatFloat(n.Ratio, 'f', 2, 64)
}
