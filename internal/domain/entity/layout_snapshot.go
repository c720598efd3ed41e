package entity

import "time"

// LayoutSnapshotVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// LayoutSnapshot captures one desktop's tiling tree.
// This is serialized to JSON and stored in the database.
type LayoutSnapshot struct {
	Version     int           `json:"version"`
	Desktop     DesktopID     `json:"desktop"`
	Root        *SnapshotNode `json:"root"`
	WindowCount int           `json:"window_count"`
	SavedAt     time.Time     `json:"saved_at"`
}

// SnapshotNode captures a node in the tiling tree.
// Leaves carry a Window; splits carry Axis, Ratio and both children.
type SnapshotNode struct {
	Window WindowID      `json:"window,omitempty"`
	Axis   SplitAxis     `json:"axis"`
	Ratio  float64       `json:"ratio,omitempty"`
	First  *SnapshotNode `json:"first,omitempty"`
	Second *SnapshotNode `json:"second,omitempty"`
}

// IsLeaf returns true if the node holds a window.
func (n *SnapshotNode) IsLeaf() bool {
	return n != nil && n.First == nil && n.Second == nil
}

// Windows returns the windows of the subtree in depth-first order.
func (n *SnapshotNode) Windows() []WindowID {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return []WindowID{n.Window}
	}
	return append(n.First.Windows(), n.Second.Windows()...)
}
