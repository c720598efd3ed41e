package port

import (
	"context"

	"github.com/bnema/tiler/internal/domain/entity"
)

// WindowHost is the window-manager runtime that owns windows.
// It is the only source of window state and the only sink for geometry
// commands issued by the tiling controller.
type WindowHost interface {
	// Windows lists the windows currently on a desktop, in stacking order.
	Windows(ctx context.Context, desk entity.DesktopID) ([]entity.WindowInfo, error)

	// Window returns the current state of a window. ok is false when the host
	// does not know the window.
	Window(ctx context.Context, id entity.WindowID) (info entity.WindowInfo, ok bool, err error)

	// FocusedWindow returns the focused window, or "" when none has focus.
	FocusedWindow(ctx context.Context) (entity.WindowID, error)
	FocusWindow(ctx context.Context, id entity.WindowID) error

	// WindowUnderPointer returns the window below the mouse pointer, or "".
	WindowUnderPointer(ctx context.Context) (entity.WindowID, error)

	CurrentDesktop(ctx context.Context) (entity.DesktopID, error)
	Desktops(ctx context.Context) ([]entity.DesktopID, error)

	// UsableArea is the desktop's screen area minus reserved edges.
	UsableArea(ctx context.Context, desk entity.DesktopID) (entity.Rect, error)

	// MoveResize sets the frame geometry of a window.
	MoveResize(ctx context.Context, id entity.WindowID, geom entity.Rect) error
	SetDecoration(ctx context.Context, id entity.WindowID, decoration string) error
	SetMaximize(ctx context.Context, id entity.WindowID, state entity.Maximize) error

	// SetResizeHandle replaces the handle of an interactive resize in progress.
	SetResizeHandle(ctx context.Context, id entity.WindowID, handle entity.ResizeHandle) error
}
