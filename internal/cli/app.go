// Package cli wires the tiling engine to the command line: configuration,
// layout storage, the simulated host and the terminal renderers.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/repository"
	"github.com/bnema/tiler/internal/infrastructure/cache"
	"github.com/bnema/tiler/internal/infrastructure/config"
	"github.com/bnema/tiler/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tiler/internal/logging"
)

// Flag names bound to config keys when present on the command line.
const (
	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagDB        = "db"
)

var flagKeys = map[string]string{
	FlagLogLevel:  "logging.level",
	FlagLogFormat: "logging.format",
	FlagDB:        "database.path",
}

// App holds CLI dependencies.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Theme   *styles.Theme

	// DB opens the layout database on first use so config commands never
	// touch sqlite.
	DB      *sqlite.LazyDB
	Layouts repository.LayoutRepository

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the CLI dependencies. Flags in
// flags named after FlagLogLevel, FlagLogFormat and FlagDB override the
// matching config keys.
func NewApp(configFile string, flags *pflag.FlagSet) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := mgr.BindFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: time.TimeOnly},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	)
	if err != nil {
		// Keep going with stderr only.
		logger.Warn().Err(err).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", db.Path()).
		Msg("cli initialized")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		DB:         db,
		Layouts:    cache.NewLayoutRepository(sqlite.NewLazyLayoutRepository(db), cache.DefaultLayoutCapacity),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.DB.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
