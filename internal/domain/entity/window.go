package entity

import "fmt"

// WindowID uniquely identifies a host window.
// It is assigned by the host and stays stable for the window's lifetime.
type WindowID string

// DefaultDecoration is the decoration restored when none was recorded.
const DefaultDecoration = "default"

// PixelDecoration is the title-less border used while tiled with titles hidden.
const PixelDecoration = "pixel"

// Maximize describes a window's maximize state.
type Maximize int

const (
	MaximizeNone Maximize = iota
	MaximizeHorizontal
	MaximizeVertical
	MaximizeBoth
)

func (m Maximize) String() string {
	switch m {
	case MaximizeHorizontal:
		return "horizontal"
	case MaximizeVertical:
		return "vertical"
	case MaximizeBoth:
		return "both"
	default:
		return "none"
	}
}

// ResizeHandle identifies which edge or corner the host is dragging.
type ResizeHandle int

const (
	ResizeNone ResizeHandle = iota
	ResizeLeft
	ResizeRight
	ResizeTop
	ResizeBottom
	ResizeTopLeft
	ResizeTopRight
	ResizeBottomLeft
	ResizeBottomRight
)

var resizeHandleNames = map[ResizeHandle]string{
	ResizeNone:        "none",
	ResizeLeft:        "left",
	ResizeRight:       "right",
	ResizeTop:         "top",
	ResizeBottom:      "bottom",
	ResizeTopLeft:     "top-left",
	ResizeTopRight:    "top-right",
	ResizeBottomLeft:  "bottom-left",
	ResizeBottomRight: "bottom-right",
}

func (h ResizeHandle) String() string {
	if name, ok := resizeHandleNames[h]; ok {
		return name
	}
	return fmt.Sprintf("ResizeHandle(%d)", int(h))
}

// ParseResizeHandle parses names such as "left" or "bottom-right".
func ParseResizeHandle(s string) (ResizeHandle, error) {
	for h, name := range resizeHandleNames {
		if name == s {
			return h, nil
		}
	}
	return ResizeNone, fmt.Errorf("unknown resize handle %q", s)
}

// Edges returns the sides moved by the handle.
func (h ResizeHandle) Edges() Edge {
	switch h {
	case ResizeLeft:
		return EdgeLeft
	case ResizeRight:
		return EdgeRight
	case ResizeTop:
		return EdgeTop
	case ResizeBottom:
		return EdgeBottom
	case ResizeTopLeft:
		return EdgeTop | EdgeLeft
	case ResizeTopRight:
		return EdgeTop | EdgeRight
	case ResizeBottomLeft:
		return EdgeBottom | EdgeLeft
	case ResizeBottomRight:
		return EdgeBottom | EdgeRight
	}
	return EdgeNone
}

// Without drops the given sides from the handle, turning a corner into the
// remaining edge and a single edge into ResizeNone.
func (h ResizeHandle) Without(e Edge) ResizeHandle {
	return ResizeHandleFromEdges(h.Edges() &^ e)
}

// Directions returns the per-axis direction of the moved edges:
// -1 when the left/top edge moves, +1 otherwise.
func (h ResizeHandle) Directions() (wDir, hDir int) {
	wDir, hDir = 1, 1
	e := h.Edges()
	if e&EdgeLeft != 0 {
		wDir = -1
	}
	if e&EdgeTop != 0 {
		hDir = -1
	}
	return wDir, hDir
}

// ResizeHandleFromEdges builds a handle from an edge mask.
// Masks that cannot be dragged at once (left|right) yield ResizeNone.
func ResizeHandleFromEdges(e Edge) ResizeHandle {
	switch e {
	case EdgeLeft:
		return ResizeLeft
	case EdgeRight:
		return ResizeRight
	case EdgeTop:
		return ResizeTop
	case EdgeBottom:
		return ResizeBottom
	case EdgeTop | EdgeLeft:
		return ResizeTopLeft
	case EdgeTop | EdgeRight:
		return ResizeTopRight
	case EdgeBottom | EdgeLeft:
		return ResizeBottomLeft
	case EdgeBottom | EdgeRight:
		return ResizeBottomRight
	}
	return ResizeNone
}

// WindowInfo is the host's current view of a window.
type WindowInfo struct {
	ID      WindowID
	Desktop DesktopID

	// Geometry is the frame geometry including decorations.
	Geometry Rect
	// ClientW and ClientH are the inner client size without decorations.
	ClientW, ClientH int

	Decoration string
	Maximize   Maximize

	Sticky        bool
	Iconic        bool
	Fullscreen    bool
	Transient     bool
	Dialog        bool
	Centered      bool
	StaticGravity bool
	Ignored       bool
	// DeskShow is set while the host iconifies windows to show the desktop.
	DeskShow bool

	MinH, MaxH int

	// ResizeHandle is the edge being dragged during an interactive resize.
	ResizeHandle ResizeHandle
}

// FrameAdjustment returns how much larger the frame is than the client area.
func (w WindowInfo) FrameAdjustment() int {
	return max(w.Geometry.H-w.ClientH, w.Geometry.W-w.ClientW)
}

// WindowShadow is the tiling engine's memory of a window: what it looked like
// before tiling touched it and what tiling last told the host to do.
// Whether the window is tiled is not stored here; it is derived from tree
// membership.
type WindowShadow struct {
	ID       WindowID
	Floating bool

	// Expected is the geometry most recently requested from the host.
	Expected Rect
	Original WindowOriginal

	// LastFrameAdjustment is the frame/client size delta observed when the
	// last geometry command was issued.
	LastFrameAdjustment int
}

// WindowOriginal captures pre-tiling state restored when a window leaves the tree.
type WindowOriginal struct {
	Geometry   Rect
	Decoration string
	Maximize   Maximize
}
