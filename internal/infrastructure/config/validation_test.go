package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "max padding", mutate: func(c *Config) { c.Tiling.WindowPadding = MaxPadding }},
		{name: "padding too large", mutate: func(c *Config) { c.Tiling.WindowPadding = 65 }, wantErr: "tiling.window_padding"},
		{name: "negative padding", mutate: func(c *Config) { c.Tiling.WindowPadding = -1 }, wantErr: "tiling.window_padding"},
		{name: "too many stacks", mutate: func(c *Config) { c.Tiling.DefaultStacks = 9 }, wantErr: "tiling.default_stacks"},
		{
			name:   "desktop unset padding",
			mutate: func(c *Config) { c.Tiling.Desktops = []DesktopEntry{{Stacks: 1, Padding: intPtr(-1)}} },
		},
		{
			name:    "desktop padding below -1",
			mutate:  func(c *Config) { c.Tiling.Desktops = []DesktopEntry{{Stacks: 1, Padding: intPtr(-2)}} },
			wantErr: "tiling.desktops[0].padding",
		},
		{
			name:    "desktop stacks",
			mutate:  func(c *Config) { c.Tiling.Desktops = []DesktopEntry{{Stacks: 10}} },
			wantErr: "tiling.desktops[0].stacks",
		},
		{
			name:    "negative desktop coordinates",
			mutate:  func(c *Config) { c.Tiling.Desktops = []DesktopEntry{{X: -1, Stacks: 1}} },
			wantErr: "must be non-negative",
		},
		{
			name:    "duplicate desktop",
			mutate:  func(c *Config) { c.Tiling.Desktops = []DesktopEntry{{X: 1}, {X: 1, Stacks: 2}} },
			wantErr: "tiling.desktops[1] duplicates desktop (1,0,0)",
		},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{
			name: "file log size",
			mutate: func(c *Config) {
				c.Logging.EnableFileLog = true
				c.Logging.MaxSizeMB = 0
			},
			wantErr: "logging.max_size_mb",
		},
		{name: "snapshot interval", mutate: func(c *Config) { c.Snapshots.IntervalMs = -5 }, wantErr: "snapshots.interval_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tiling.WindowPadding = 100
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tiling.window_padding")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidate_NormalizesFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "WARNING"
	cfg.Tiling.Desktops = []DesktopEntry{{X: 1, Stacks: 2}}

	require.NoError(t, Validate(cfg))
	assert.Equal(t, "warn", cfg.Logging.Level)
	require.NotNil(t, cfg.Tiling.Desktops[0].Padding)
	assert.Equal(t, UnsetPadding, *cfg.Tiling.Desktops[0].Padding)
}
