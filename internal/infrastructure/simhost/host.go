// Package simhost provides an in-memory window host.
//
// The host keeps windows, focus, desktops and decorations in memory and
// records every command it receives. Simulation methods mutate the host the
// way a user or a client application would and return the event a real
// window manager would emit, leaving dispatch to the caller.
//
// A Host is not safe for concurrent use.
package simhost

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/domain/entity"
)

// ErrUnknownWindow is returned for window IDs the host never created.
var ErrUnknownWindow = errors.New("simhost: unknown window")

// ErrUnknownDesktop is returned for desktops outside the configured grid.
var ErrUnknownDesktop = errors.New("simhost: unknown desktop")

var _ port.WindowHost = (*Host)(nil)

// Config describes the simulated screen.
type Config struct {
	// Screen is the output geometry shared by every desktop.
	Screen entity.Rect
	// ReservedTop is taken off the top of the screen for a panel.
	ReservedTop int
	// Columns and Rows size the desktop grid; Zones is the number of outputs.
	Columns, Rows, Zones int
	// TitleHeight and BorderWidth size the "default" decoration.
	TitleHeight, BorderWidth int
}

// DefaultConfig returns a single 1920x1080 desktop with a 24px panel.
func DefaultConfig() Config {
	return Config{
		Screen:      entity.Rect{W: 1920, H: 1080},
		ReservedTop: 24,
		Columns:     1,
		Rows:        1,
		Zones:       1,
		TitleHeight: 22,
		BorderWidth: 1,
	}
}

// Host is the in-memory window host.
type Host struct {
	cfg      Config
	desktops []entity.DesktopID
	current  entity.DesktopID

	windows map[entity.WindowID]*entity.WindowInfo
	order   []entity.WindowID
	focused entity.WindowID
	pointer entity.WindowID

	commands []Command
	failures map[CommandKind]error
	newID    func() entity.WindowID
}

// New creates a host with the given configuration.
func New(cfg Config) *Host {
	def := DefaultConfig()
	if cfg.Screen.Empty() {
		cfg.Screen = def.Screen
	}
	cfg.Columns = max(cfg.Columns, 1)
	cfg.Rows = max(cfg.Rows, 1)
	cfg.Zones = max(cfg.Zones, 1)

	h := &Host{
		cfg:      cfg,
		windows:  make(map[entity.WindowID]*entity.WindowInfo),
		failures: make(map[CommandKind]error),
		newID: func() entity.WindowID {
			return entity.WindowID(uuid.NewString())
		},
	}
	for zone := 0; zone < cfg.Zones; zone++ {
		for y := 0; y < cfg.Rows; y++ {
			for x := 0; x < cfg.Columns; x++ {
				h.desktops = append(h.desktops, entity.DesktopID{X: x, Y: y, Zone: zone})
			}
		}
	}
	h.current = h.desktops[0]
	return h
}

func (h *Host) hasDesktop(desk entity.DesktopID) bool {
	return slices.Contains(h.desktops, desk)
}

func (h *Host) lookup(id entity.WindowID) (*entity.WindowInfo, error) {
	w, ok := h.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWindow, id)
	}
	return w, nil
}

// frame returns the width and height added by a decoration.
func (h *Host) frame(decoration string) (dw, dh int) {
	switch decoration {
	case entity.PixelDecoration:
		return 2, 2
	case "none", "borderless":
		return 0, 0
	default:
		b := h.cfg.BorderWidth
		return 2 * b, h.cfg.TitleHeight + 2*b
	}
}

func (h *Host) updateClientSize(w *entity.WindowInfo) {
	dw, dh := h.frame(w.Decoration)
	w.ClientW = max(w.Geometry.W-dw, 0)
	w.ClientH = max(w.Geometry.H-dh, 0)
}

func (h *Host) usableArea() entity.Rect {
	r := h.cfg.Screen
	r.Y += h.cfg.ReservedTop
	r.H = max(r.H-h.cfg.ReservedTop, 0)
	return r
}

// Windows implements port.WindowHost.
func (h *Host) Windows(_ context.Context, desk entity.DesktopID) ([]entity.WindowInfo, error) {
	if !h.hasDesktop(desk) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDesktop, desk)
	}
	var out []entity.WindowInfo
	for _, id := range h.order {
		w := h.windows[id]
		if w.Desktop == desk || w.Sticky {
			out = append(out, *w)
		}
	}
	return out, nil
}

// Window implements port.WindowHost.
func (h *Host) Window(_ context.Context, id entity.WindowID) (entity.WindowInfo, bool, error) {
	w, ok := h.windows[id]
	if !ok {
		return entity.WindowInfo{}, false, nil
	}
	return *w, true, nil
}

// FocusedWindow implements port.WindowHost.
func (h *Host) FocusedWindow(context.Context) (entity.WindowID, error) {
	return h.focused, nil
}

// FocusWindow implements port.WindowHost.
func (h *Host) FocusWindow(_ context.Context, id entity.WindowID) error {
	if err := h.record(Command{Kind: CommandFocus, Window: id}); err != nil {
		return err
	}
	if _, err := h.lookup(id); err != nil {
		return err
	}
	h.focused = id
	h.raise(id)
	return nil
}

// WindowUnderPointer implements port.WindowHost.
func (h *Host) WindowUnderPointer(context.Context) (entity.WindowID, error) {
	return h.pointer, nil
}

// CurrentDesktop implements port.WindowHost.
func (h *Host) CurrentDesktop(context.Context) (entity.DesktopID, error) {
	return h.current, nil
}

// Desktops implements port.WindowHost.
func (h *Host) Desktops(context.Context) ([]entity.DesktopID, error) {
	return slices.Clone(h.desktops), nil
}

// UsableArea implements port.WindowHost.
func (h *Host) UsableArea(_ context.Context, desk entity.DesktopID) (entity.Rect, error) {
	if !h.hasDesktop(desk) {
		return entity.Rect{}, fmt.Errorf("%w: %s", ErrUnknownDesktop, desk)
	}
	return h.usableArea(), nil
}

// MoveResize implements port.WindowHost.
func (h *Host) MoveResize(_ context.Context, id entity.WindowID, geom entity.Rect) error {
	if err := h.record(Command{Kind: CommandMoveResize, Window: id, Geometry: geom}); err != nil {
		return err
	}
	w, err := h.lookup(id)
	if err != nil {
		return err
	}
	w.Geometry = geom
	h.updateClientSize(w)
	return nil
}

// SetDecoration implements port.WindowHost.
func (h *Host) SetDecoration(_ context.Context, id entity.WindowID, decoration string) error {
	if err := h.record(Command{Kind: CommandDecoration, Window: id, Decoration: decoration}); err != nil {
		return err
	}
	w, err := h.lookup(id)
	if err != nil {
		return err
	}
	w.Decoration = decoration
	h.updateClientSize(w)
	return nil
}

// SetMaximize implements port.WindowHost.
func (h *Host) SetMaximize(_ context.Context, id entity.WindowID, state entity.Maximize) error {
	if err := h.record(Command{Kind: CommandMaximize, Window: id, Maximize: state}); err != nil {
		return err
	}
	w, err := h.lookup(id)
	if err != nil {
		return err
	}
	w.Maximize = state
	area := h.usableArea()
	switch state {
	case entity.MaximizeBoth:
		w.Geometry = area
	case entity.MaximizeHorizontal:
		w.Geometry.X, w.Geometry.W = area.X, area.W
	case entity.MaximizeVertical:
		w.Geometry.Y, w.Geometry.H = area.Y, area.H
	}
	h.updateClientSize(w)
	return nil
}

// SetResizeHandle implements port.WindowHost.
func (h *Host) SetResizeHandle(_ context.Context, id entity.WindowID, handle entity.ResizeHandle) error {
	if err := h.record(Command{Kind: CommandResizeHandle, Window: id, Handle: handle}); err != nil {
		return err
	}
	w, err := h.lookup(id)
	if err != nil {
		return err
	}
	w.ResizeHandle = handle
	return nil
}

func (h *Host) raise(id entity.WindowID) {
	i := slices.Index(h.order, id)
	if i < 0 {
		return
	}
	h.order = append(slices.Delete(h.order, i, i+1), id)
}
