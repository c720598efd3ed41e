package simhost

import (
	"fmt"
	"slices"

	"github.com/bnema/tiler/internal/domain/entity"
)

// WindowSpec describes a window to spawn.
type WindowSpec struct {
	// ID is generated when empty.
	ID entity.WindowID
	// Desktop defaults to the current desktop.
	Desktop *entity.DesktopID
	// Geometry defaults to a cascaded 640x480 frame.
	Geometry entity.Rect
	// Decoration defaults to "default".
	Decoration string
	Maximize   entity.Maximize

	Sticky        bool
	Dialog        bool
	Transient     bool
	Fullscreen    bool
	Centered      bool
	StaticGravity bool
	Ignored       bool
	MinH, MaxH    int
}

// Spawn maps a new window. Focus is not changed.
func (h *Host) Spawn(spec WindowSpec) (entity.WindowInfo, entity.Event, error) {
	id := spec.ID
	if id == "" {
		id = h.newID()
	}
	if _, dup := h.windows[id]; dup {
		return entity.WindowInfo{}, nil, fmt.Errorf("simhost: window %s already exists", id)
	}

	desk := h.current
	if spec.Desktop != nil {
		desk = *spec.Desktop
	}
	if !h.hasDesktop(desk) {
		return entity.WindowInfo{}, nil, fmt.Errorf("%w: %s", ErrUnknownDesktop, desk)
	}

	geom := spec.Geometry
	if geom.Empty() {
		area := h.usableArea()
		offset := 32 * (len(h.windows) % 8)
		geom = entity.Rect{X: area.X + 40 + offset, Y: area.Y + 40 + offset, W: 640, H: 480}
	}
	decoration := spec.Decoration
	if decoration == "" {
		decoration = entity.DefaultDecoration
	}

	w := &entity.WindowInfo{
		ID:            id,
		Desktop:       desk,
		Geometry:      geom,
		Decoration:    decoration,
		Maximize:      spec.Maximize,
		Sticky:        spec.Sticky,
		Dialog:        spec.Dialog,
		Transient:     spec.Transient,
		Fullscreen:    spec.Fullscreen,
		Centered:      spec.Centered,
		StaticGravity: spec.StaticGravity,
		Ignored:       spec.Ignored,
		MinH:          spec.MinH,
		MaxH:          spec.MaxH,
	}
	h.updateClientSize(w)
	h.windows[id] = w
	h.order = append(h.order, id)

	return *w, entity.WindowAdded{Window: id}, nil
}

// Close destroys a window. Focus moves to the topmost remaining window of
// the current desktop.
func (h *Host) Close(id entity.WindowID) (entity.Event, error) {
	if _, err := h.lookup(id); err != nil {
		return nil, err
	}
	delete(h.windows, id)
	h.order = slices.DeleteFunc(h.order, func(o entity.WindowID) bool { return o == id })
	if h.pointer == id {
		h.pointer = ""
	}
	if h.focused == id {
		h.focused = h.topmost(h.current)
	}
	return entity.WindowRemoved{Window: id}, nil
}

func (h *Host) topmost(desk entity.DesktopID) entity.WindowID {
	for i := len(h.order) - 1; i >= 0; i-- {
		w := h.windows[h.order[i]]
		if (w.Desktop == desk || w.Sticky) && !w.Iconic {
			return w.ID
		}
	}
	return ""
}

// SetPointer places the mouse pointer over a window. "" clears it.
func (h *Host) SetPointer(id entity.WindowID) error {
	if id != "" {
		if _, err := h.lookup(id); err != nil {
			return err
		}
	}
	h.pointer = id
	return nil
}

// SwitchDesktop makes desk the current desktop.
func (h *Host) SwitchDesktop(desk entity.DesktopID) error {
	if !h.hasDesktop(desk) {
		return fmt.Errorf("%w: %s", ErrUnknownDesktop, desk)
	}
	h.current = desk
	if f, ok := h.windows[h.focused]; !ok || (f.Desktop != desk && !f.Sticky) {
		h.focused = h.topmost(desk)
	}
	return nil
}

// SendToDesktop moves a window to another desktop.
func (h *Host) SendToDesktop(id entity.WindowID, desk entity.DesktopID) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	if !h.hasDesktop(desk) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDesktop, desk)
	}
	from := w.Desktop
	w.Desktop = desk
	return entity.WindowDeskChanged{Window: id, From: from}, nil
}

// SetSticky changes the sticky property.
func (h *Host) SetSticky(id entity.WindowID, sticky bool) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.Sticky = sticky
	return entity.WindowPropertyChanged{Window: id, Property: entity.PropertySticky}, nil
}

// Iconify minimizes a window.
func (h *Host) Iconify(id entity.WindowID) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.Iconic = true
	w.DeskShow = false
	if h.focused == id {
		h.focused = h.topmost(h.current)
	}
	return entity.WindowIconified{Window: id}, nil
}

// Uniconify restores a minimized window.
func (h *Host) Uniconify(id entity.WindowID) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.Iconic = false
	w.DeskShow = false
	return entity.WindowUniconified{Window: id}, nil
}

// ShowDesktop iconifies (or restores) every window of the current desktop
// the way a "show desktop" action does. The windows keep DeskShow set until
// they are next iconified or restored individually.
func (h *Host) ShowDesktop(show bool) []entity.Event {
	var events []entity.Event
	for _, id := range h.order {
		w := h.windows[id]
		if w.Desktop != h.current {
			continue
		}
		if show && !w.Iconic {
			w.Iconic, w.DeskShow = true, true
			events = append(events, entity.WindowIconified{Window: id})
		} else if !show && w.DeskShow && w.Iconic {
			w.Iconic = false
			events = append(events, entity.WindowUniconified{Window: id})
		}
	}
	return events
}

// BeginResize starts an interactive resize with the given handle.
func (h *Host) BeginResize(id entity.WindowID, handle entity.ResizeHandle) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.ResizeHandle = handle
	return entity.WindowResizeBegin{Window: id}, nil
}

// ResizeTo reports a user-driven geometry change during a resize.
func (h *Host) ResizeTo(id entity.WindowID, geom entity.Rect) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.Geometry = geom
	h.updateClientSize(w)
	return entity.WindowResizeEnded{Window: id}, nil
}

// EndResize finishes an interactive resize.
func (h *Host) EndResize(id entity.WindowID) error {
	w, err := h.lookup(id)
	if err != nil {
		return err
	}
	w.ResizeHandle = entity.ResizeNone
	return nil
}

// MoveTo reports the end of a user-driven move.
func (h *Host) MoveTo(id entity.WindowID, geom entity.Rect) (entity.Event, error) {
	w, err := h.lookup(id)
	if err != nil {
		return nil, err
	}
	w.Geometry = geom
	h.updateClientSize(w)
	return entity.WindowMoveEnded{Window: id}, nil
}

// ResizeScreen changes the output size.
func (h *Host) ResizeScreen(screen entity.Rect) entity.Event {
	h.cfg.Screen = screen
	return entity.OutputResized{}
}

// Info returns a window by ID.
func (h *Host) Info(id entity.WindowID) (entity.WindowInfo, bool) {
	w, ok := h.windows[id]
	if !ok {
		return entity.WindowInfo{}, false
	}
	return *w, true
}

// All returns every window in stacking order, bottom first.
func (h *Host) All() []entity.WindowInfo {
	out := make([]entity.WindowInfo, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, *h.windows[id])
	}
	return out
}

// Screen returns the output geometry.
func (h *Host) Screen() entity.Rect {
	return h.cfg.Screen
}

// Current returns the current desktop.
func (h *Host) Current() entity.DesktopID {
	return h.current
}

// Focused returns the focused window.
func (h *Host) Focused() entity.WindowID {
	return h.focused
}
