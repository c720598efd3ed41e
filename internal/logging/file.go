package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogFileName is the name of the log file inside FileConfig.LogDir.
const LogFileName = "tiler.log"

// FileConfig enables logging to a rotated file next to stderr.
type FileConfig struct {
	Enabled    bool
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
}

// NewWithFile creates a logger writing to stderr and, when enabled, to a
// rotated JSON log file. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled || fileCfg.LogDir == "" {
		return New(cfg), func() {}, nil
	}

	rot, err := NewRotator(fileCfg.LogDir, LogFileName, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return New(cfg), func() {}, err
	}

	stderr := cfg.Output
	if stderr == nil {
		stderr = os.Stderr
	}
	var console io.Writer = stderr
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{Out: stderr, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rot)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = rot.Close() }, nil
}
