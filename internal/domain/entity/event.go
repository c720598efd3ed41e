package entity

// Event is a host notification consumed by the tiling controller.
// The set of implementations is closed; see the types below.
type Event interface {
	isEvent()
}

// WindowAdded is emitted when the host maps a new window.
type WindowAdded struct{ Window WindowID }

// WindowRemoved is emitted when the host destroys a window.
type WindowRemoved struct{ Window WindowID }

// WindowMoveEnded is emitted when an interactive move finishes.
type WindowMoveEnded struct{ Window WindowID }

// WindowResizeBegin is emitted when an interactive resize starts.
type WindowResizeBegin struct{ Window WindowID }

// WindowResizeEnded is emitted for each geometry report during and after an
// interactive resize.
type WindowResizeEnded struct{ Window WindowID }

// WindowIconified is emitted when a window is minimized.
type WindowIconified struct{ Window WindowID }

// WindowUniconified is emitted when a window is restored from minimized.
type WindowUniconified struct{ Window WindowID }

// WindowProperty names a window property whose change matters to tiling.
type WindowProperty int

const (
	PropertyOther WindowProperty = iota
	PropertySticky
)

// WindowPropertyChanged is emitted when a window property changes.
type WindowPropertyChanged struct {
	Window   WindowID
	Property WindowProperty
}

// WindowDeskChanged is emitted after a window moved to another desktop.
type WindowDeskChanged struct {
	Window WindowID
	From   DesktopID
}

// OutputResized is emitted when the compositor output changes size.
type OutputResized struct{}

func (WindowAdded) isEvent()           {}
func (WindowRemoved) isEvent()         {}
func (WindowMoveEnded) isEvent()       {}
func (WindowResizeBegin) isEvent()     {}
func (WindowResizeEnded) isEvent()     {}
func (WindowIconified) isEvent()       {}
func (WindowUniconified) isEvent()     {}
func (WindowPropertyChanged) isEvent() {}
func (WindowDeskChanged) isEvent()     {}
func (OutputResized) isEvent()         {}
