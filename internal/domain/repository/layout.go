// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"
	"errors"

	"github.com/bnema/tiler/internal/domain/entity"
)

// ErrSnapshotNotFound is returned when no layout is stored for a desktop.
var ErrSnapshotNotFound = errors.New("layout snapshot not found")

// LayoutRepository persists per-desktop layout snapshots.
type LayoutRepository interface {
	// Save saves or replaces the snapshot of snap.Desktop.
	Save(ctx context.Context, snap *entity.LayoutSnapshot) error

	// Get returns the snapshot of a desktop or ErrSnapshotNotFound.
	Get(ctx context.Context, desk entity.DesktopID) (*entity.LayoutSnapshot, error)

	// List returns every stored snapshot, most recently saved first.
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)

	// Delete removes the snapshot of a desktop. Missing snapshots are ignored.
	Delete(ctx context.Context, desk entity.DesktopID) error
}
