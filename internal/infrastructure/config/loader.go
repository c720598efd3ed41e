// Package config loads, validates, watches and writes the tiler configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	log            zerolog.Logger
}

// NewManager creates a new configuration manager. An empty configFile
// resolves config.toml in the XDG config directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		configFile = filepath.Join(configDir, configFileName)
		v.SetConfigFile(configFile)
	}

	// TILER_TILING_WINDOW_PADDING, TILER_DATABASE_PATH, ...
	v.SetEnvPrefix("TILER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TILER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TILER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TILER_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "TILER_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind TILER_DB: %w", err)
	}

	return &Manager{
		log:        zerolog.Nop(),
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// BindFlag lets a command line flag override a config key when the flag
// was set explicitly.
func (m *Manager) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("flag for %s is nil", key)
	}
	return m.viper.BindPFlag(key, flag)
}

// Load loads the configuration from file and environment variables,
// creating a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, os.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", LogFormatConsole:
		config.Logging.Format = LogFormatConsole
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	}

	for i := range config.Tiling.Desktops {
		if config.Tiling.Desktops[i].Padding == nil {
			unset := UnsetPadding
			config.Tiling.Desktops[i].Padding = &unset
		}
	}

	config.Database.Path = strings.TrimSpace(config.Database.Path)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Tiling.Desktops = append([]DesktopEntry(nil), m.config.Tiling.Desktops...)
	return &configCopy
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	// The watcher will see our own write; the in-memory config is already
	// correct so it only needs to resync viper.
	if m.watching {
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path and Logging.LogDir are resolved in Load()

	m.setTilingDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setSnapshotDefaults(defaults)
}

func (m *Manager) setTilingDefaults(defaults *Config) {
	m.viper.SetDefault("tiling.tile_dialogs", defaults.Tiling.TileDialogs)
	m.viper.SetDefault("tiling.show_titles", defaults.Tiling.ShowTitles)
	m.viper.SetDefault("tiling.floating_mode", defaults.Tiling.FloatingMode)
	m.viper.SetDefault("tiling.window_padding", defaults.Tiling.WindowPadding)
	m.viper.SetDefault("tiling.default_stacks", defaults.Tiling.DefaultStacks)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setSnapshotDefaults(defaults *Config) {
	m.viper.SetDefault("snapshots.enabled", defaults.Snapshots.Enabled)
	m.viper.SetDefault("snapshots.interval_ms", defaults.Snapshots.IntervalMs)
	m.viper.SetDefault("snapshots.restore_on_start", defaults.Snapshots.RestoreOnStart)
}
