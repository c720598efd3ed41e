package config

// Config represents the complete configuration for tiler.
type Config struct {
	// Tiling holds the engine settings and the per-desktop overrides.
	Tiling   TilingConfig   `mapstructure:"tiling" toml:"tiling" json:"tiling"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Snapshots controls automatic persistence of desktop layouts.
	Snapshots SnapshotConfig `mapstructure:"snapshots" toml:"snapshots" json:"snapshots"`
}

// TilingConfig holds global tiling settings.
type TilingConfig struct {
	// TileDialogs tiles transient and dialog windows like regular windows.
	TileDialogs bool `mapstructure:"tile_dialogs" toml:"tile_dialogs" json:"tile_dialogs" jsonschema:"default=true"`
	// ShowTitles keeps title decorations on tiled windows. When false tiled
	// windows get the "pixel" decoration.
	ShowTitles bool `mapstructure:"show_titles" toml:"show_titles" json:"show_titles" jsonschema:"default=true"`
	// FloatingMode offers the float split mode in the split mode cycle.
	FloatingMode bool `mapstructure:"floating_mode" toml:"floating_mode" json:"floating_mode" jsonschema:"default=true"`
	// WindowPadding is the gap in pixels between tiled windows.
	WindowPadding int `mapstructure:"window_padding" toml:"window_padding" json:"window_padding" jsonschema:"minimum=0,maximum=64"`
	// DefaultStacks applies to desktops without an entry in Desktops.
	// 0 leaves them untiled.
	DefaultStacks int `mapstructure:"default_stacks" toml:"default_stacks" json:"default_stacks" jsonschema:"minimum=0,maximum=8,default=1"`
	// Desktops overrides settings per virtual desktop.
	Desktops []DesktopEntry `mapstructure:"desktops" toml:"desktops,omitempty" json:"desktops,omitempty"`
}

// DesktopEntry configures one virtual desktop.
type DesktopEntry struct {
	X      int `mapstructure:"x" toml:"x" json:"x" jsonschema:"minimum=0"`
	Y      int `mapstructure:"y" toml:"y" json:"y" jsonschema:"minimum=0"`
	Zone   int `mapstructure:"zone" toml:"zone" json:"zone" jsonschema:"minimum=0"`
	Stacks int `mapstructure:"stacks" toml:"stacks" json:"stacks" jsonschema:"minimum=0,maximum=8"`
	// Padding overrides WindowPadding; unset or -1 uses the global value.
	Padding *int `mapstructure:"padding" toml:"padding,omitempty" json:"padding,omitempty" jsonschema:"minimum=-1,maximum=64,default=-1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// EnableFileLog additionally writes JSON logs to LogDir.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	// Path of the sqlite file. Empty resolves to the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// SnapshotConfig controls layout snapshot persistence.
type SnapshotConfig struct {
	// Enabled saves desktop layouts after every change.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// IntervalMs debounces saves.
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=0,default=2000"`
	// RestoreOnStart rebuilds saved layouts when the engine starts.
	RestoreOnStart bool `mapstructure:"restore_on_start" toml:"restore_on_start" json:"restore_on_start"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Limits enforced by validation.
const (
	MaxPadding = 64
	MaxStacks  = 8
)
