package config

import (
	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/domain/entity"
)

// TilingGateway implements port.TilingConfig on top of the Manager.
// Every call reads the current configuration, so reloads are visible
// to the next OnConfigurationChanged pass.
type TilingGateway struct {
	source func() *Config
}

var _ port.TilingConfig = (*TilingGateway)(nil)

// NewTilingGateway creates a gateway reading from mgr.
func NewTilingGateway(mgr *Manager) *TilingGateway {
	return &TilingGateway{source: mgr.Get}
}

// NewStaticTilingGateway serves a fixed configuration.
func NewStaticTilingGateway(cfg *Config) *TilingGateway {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &TilingGateway{source: func() *Config { return cfg }}
}

// Global returns the settings shared by every desktop.
func (g *TilingGateway) Global() entity.GlobalSettings {
	t := g.source().Tiling
	return entity.GlobalSettings{
		TileDialogs:  t.TileDialogs,
		ShowTitles:   t.ShowTitles,
		FloatingMode: t.FloatingMode,
		Padding:      t.WindowPadding,
	}
}

// Desktop returns the settings of desk, falling back to default_stacks and
// the global padding.
func (g *TilingGateway) Desktop(desk entity.DesktopID) entity.DesktopSettings {
	t := g.source().Tiling
	settings := entity.DesktopSettings{Stacks: t.DefaultStacks, Padding: t.WindowPadding}

	for _, d := range t.Desktops {
		if d.X != desk.X || d.Y != desk.Y || d.Zone != desk.Zone {
			continue
		}
		settings.Stacks = d.Stacks
		if d.Padding != nil && *d.Padding > UnsetPadding {
			settings.Padding = *d.Padding
		}
		break
	}
	return settings
}
