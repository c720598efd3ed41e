package config

// Default configuration constants
const (
	// Tiling defaults
	defaultStacks        = 1
	defaultWindowPadding = 0 // pixels

	// Logging defaults
	defaultLogLevel      = "info"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3

	// Snapshot defaults
	defaultSnapshotIntervalMs = 2000

	// UnsetPadding marks a desktop entry that uses the global padding.
	UnsetPadding = -1
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tiling: TilingConfig{
			TileDialogs:   true,
			ShowTitles:    true,
			FloatingMode:  true,
			WindowPadding: defaultWindowPadding,
			DefaultStacks: defaultStacks,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     LogFormatConsole,
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxLogBackups,
		},
		Snapshots: SnapshotConfig{
			Enabled:        true,
			IntervalMs:     defaultSnapshotIntervalMs,
			RestoreOnStart: true,
		},
	}
}
