package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName        = "tiler"
	configFileName = "config.toml"
	databaseName   = "tiler.sqlite"

	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Dirs holds the XDG Base Directory paths for the application.
type Dirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetDirs returns the XDG Base Directory paths for tiler:
// - $XDG_CONFIG_HOME/tiler (default: ~/.config/tiler)
// - $XDG_DATA_HOME/tiler (default: ~/.local/share/tiler)
// - $XDG_STATE_HOME/tiler (default: ~/.local/state/tiler)
//
// ENV=dev keeps everything under ./.dev/tiler.
func GetDirs() (*Dirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &Dirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	// adrg/xdg caches the environment at init; reload so XDG_* overrides
	// set after start (tests, wrappers) are honoured.
	xdg.Reload()

	return &Dirs{
		ConfigHome: filepath.Join(xdg.ConfigHome, appName),
		DataHome:   filepath.Join(xdg.DataHome, appName),
		StateHome:  filepath.Join(xdg.StateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for tiler.
func GetConfigDir() (string, error) {
	dirs, err := GetDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetDatabaseFile returns the path to the layout database.
func GetDatabaseFile() (string, error) {
	dirs, err := GetDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetLogDir returns the log directory. Logs live in XDG_STATE_HOME.
func GetLogDir() (string, error) {
	dirs, err := GetDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
