package usecase

import "github.com/bnema/tiler/internal/domain/entity"

// DefaultTilable rejects windows that cannot sensibly share the screen:
// fixed-height windows, static gravity, centered or fullscreen windows,
// minimized or ignored windows, and dialogs or transients unless tile_dialogs
// is set.
func DefaultTilable(info entity.WindowInfo, global entity.GlobalSettings) bool {
	switch {
	case info.MinH > 0 && info.MinH == info.MaxH:
		return false
	case info.StaticGravity, info.Centered, info.Fullscreen:
		return false
	case info.Iconic, info.Ignored:
		return false
	case (info.Transient || info.Dialog) && !global.TileDialogs:
		return false
	}
	return true
}
