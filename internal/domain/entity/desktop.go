package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// DesktopID identifies a virtual desktop by grid position and zone.
type DesktopID struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Zone int `json:"zone"`
}

func (d DesktopID) String() string {
	return fmt.Sprintf("%d:%d,%d", d.Zone, d.X, d.Y)
}

// ParseDesktopID parses the String form "zone:x,y". The zone may be left
// out and defaults to 0.
func ParseDesktopID(s string) (DesktopID, error) {
	var d DesktopID
	pos := strings.TrimSpace(s)
	if zone, rest, ok := strings.Cut(pos, ":"); ok {
		z, err := strconv.Atoi(zone)
		if err != nil || z < 0 {
			return DesktopID{}, fmt.Errorf("invalid desktop %q: bad zone", s)
		}
		d.Zone, pos = z, rest
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return DesktopID{}, fmt.Errorf("invalid desktop %q: want zone:x,y", s)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return DesktopID{}, fmt.Errorf("invalid desktop %q: bad position", s)
	}
	d.X, d.Y = x, y
	return d, nil
}

// DesktopSettings is the tiling configuration of a single desktop.
// Stacks == 0 disables tiling on the desktop.
type DesktopSettings struct {
	Stacks  int
	Padding int
}

// Enabled reports whether tiling is active for the desktop.
func (s DesktopSettings) Enabled() bool {
	return s.Stacks > 0
}

// GlobalSettings are process-wide tiling options.
type GlobalSettings struct {
	TileDialogs  bool // Tile transient and dialog windows
	ShowTitles   bool // Keep title decorations while tiled
	FloatingMode bool // Offer the float split mode
	Padding      int  // Default gap between tiled windows
}
