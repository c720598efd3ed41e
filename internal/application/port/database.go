// Package port declares what the tiling use cases need from the outside:
// the window host, the configuration store and layout storage.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database. The file is opened and
// migrated on first use, so commands that never read layouts never create it.
type DatabaseProvider interface {
	// DB opens and migrates the database on the first call.
	DB(ctx context.Context) (*sql.DB, error)

	// IsInitialized reports whether DB has opened the file.
	IsInitialized() bool

	// Close closes the connection if it was opened.
	Close() error
}
