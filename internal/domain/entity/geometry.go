// Package entity defines domain entities for the tiling engine.
package entity

import "fmt"

// Rect represents a window's screen position and size in pixels.
type Rect struct {
	X, Y int // Top-left position in screen coordinates
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share any pixel.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Edge is a bitmask of the four sides of a rectangle.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeNone Edge = 0
	EdgeAll       = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has reports whether every bit of o is set in e.
func (e Edge) Has(o Edge) bool {
	return e&o == o && o != 0
}

func (e Edge) String() string {
	if e == EdgeNone {
		return "none"
	}
	s := ""
	for _, p := range []struct {
		bit  Edge
		name string
	}{{EdgeLeft, "left"}, {EdgeRight, "right"}, {EdgeTop, "top"}, {EdgeBottom, "bottom"}} {
		if e&p.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += p.name
		}
	}
	return s
}

// Direction is a cardinal direction used for moves and focus.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// ParseDirection converts a user-facing string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirLeft, DirRight, DirUp, DirDown:
		return Direction(s), nil
	}
	return "", fmt.Errorf("invalid direction %q", s)
}

// Axis returns the split axis a move in this direction crosses.
func (d Direction) Axis() SplitAxis {
	switch d {
	case DirUp, DirDown:
		return SplitVertical
	default:
		return SplitHorizontal
	}
}

// Edge returns the side of a rectangle that faces the direction.
func (d Direction) Edge() Edge {
	switch d {
	case DirLeft:
		return EdgeLeft
	case DirRight:
		return EdgeRight
	case DirUp:
		return EdgeTop
	case DirDown:
		return EdgeBottom
	}
	return EdgeNone
}

// SplitAxis indicates how a split node divides its box.
type SplitAxis int

const (
	SplitHorizontal SplitAxis = iota // Left/right, children side by side
	SplitVertical                    // Top/bottom, children stacked
)

func (a SplitAxis) String() string {
	if a == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// SplitMode is the insertion mode selected by the user.
// It extends SplitAxis with a mode where new windows float.
type SplitMode int

const (
	SplitModeHorizontal SplitMode = iota
	SplitModeVertical
	SplitModeFloat

	splitModeCount
)

// Next cycles to the following mode. Float is skipped when allowFloat is false.
func (m SplitMode) Next(allowFloat bool) SplitMode {
	next := (m + 1) % splitModeCount
	if next == SplitModeFloat && !allowFloat {
		next = (next + 1) % splitModeCount
	}
	return next
}

// Axis returns the split axis for tiling modes. Float maps to horizontal.
func (m SplitMode) Axis() SplitAxis {
	if m == SplitModeVertical {
		return SplitVertical
	}
	return SplitHorizontal
}

func (m SplitMode) String() string {
	switch m {
	case SplitModeVertical:
		return "vertical"
	case SplitModeFloat:
		return "float"
	default:
		return "horizontal"
	}
}

// ParseSplitMode converts a user-facing string into a SplitMode.
func ParseSplitMode(s string) (SplitMode, error) {
	switch s {
	case "horizontal", "h":
		return SplitModeHorizontal, nil
	case "vertical", "v":
		return SplitModeVertical, nil
	case "float", "f":
		return SplitModeFloat, nil
	}
	return SplitModeHorizontal, fmt.Errorf("invalid split mode %q", s)
}
