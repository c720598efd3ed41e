package port

import "github.com/bnema/tiler/internal/domain/entity"

// TilingConfig is the read side of the tiling configuration store.
type TilingConfig interface {
	// Desktop returns the settings of one desktop. Unconfigured desktops get
	// the configured default stack count and global padding.
	Desktop(desk entity.DesktopID) entity.DesktopSettings
	Global() entity.GlobalSettings
}

// TilablePredicate decides whether a window may enter the tiling tree.
type TilablePredicate func(info entity.WindowInfo, global entity.GlobalSettings) bool
