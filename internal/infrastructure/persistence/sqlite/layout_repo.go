package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository"
	"github.com/bnema/tiler/internal/logging"
)

const (
	upsertLayoutQuery = `
INSERT INTO layout_snapshots (desk_x, desk_y, desk_zone, version, window_count, tree_json, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (desk_x, desk_y, desk_zone) DO UPDATE SET
    version = excluded.version,
    window_count = excluded.window_count,
    tree_json = excluded.tree_json,
    saved_at = excluded.saved_at`

	selectLayoutColumns = `SELECT desk_x, desk_y, desk_zone, version, window_count, tree_json, saved_at FROM layout_snapshots`

	getLayoutQuery   = selectLayoutColumns + ` WHERE desk_x = ? AND desk_y = ? AND desk_zone = ?`
	listLayoutsQuery = selectLayoutColumns + ` ORDER BY saved_at DESC, desk_x, desk_y, desk_zone`

	deleteLayoutQuery = `DELETE FROM layout_snapshots WHERE desk_x = ? AND desk_y = ? AND desk_zone = ?`
)

type layoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutRepository creates a new layout snapshot repository.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db, now: time.Now}
}

// Save saves or replaces the snapshot of snap.Desktop.
func (r *layoutRepo) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snap.Root == nil {
		return errors.New("layout snapshot has no tree")
	}

	treeJSON, err := json.Marshal(snap.Root)
	if err != nil {
		log.Error().Err(err).Str("desktop", snap.Desktop.String()).Msg("failed to marshal layout tree")
		return err
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = r.now()
	}

	log.Debug().
		Str("desktop", snap.Desktop.String()).
		Int("window_count", snap.WindowCount).
		Msg("saving layout snapshot")

	_, err = r.db.ExecContext(ctx, upsertLayoutQuery,
		snap.Desktop.X, snap.Desktop.Y, snap.Desktop.Zone,
		snap.Version, snap.WindowCount, string(treeJSON), savedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save layout %s: %w", snap.Desktop, err)
	}
	return nil
}

// Get returns the snapshot of a desktop.
func (r *layoutRepo) Get(ctx context.Context, desk entity.DesktopID) (*entity.LayoutSnapshot, error) {
	row := r.db.QueryRowContext(ctx, getLayoutQuery, desk.X, desk.Y, desk.Zone)
	snap, err := scanLayout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", repository.ErrSnapshotNotFound, desk)
	}
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("desktop", desk.String()).
			Msg("failed to read layout snapshot")
		return nil, err
	}
	return snap, nil
}

// List returns every stored snapshot, most recently saved first.
// Corrupted rows are skipped.
func (r *layoutRepo) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []*entity.LayoutSnapshot
	for rows.Next() {
		snap, err := scanLayout(rows)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("skipping corrupted layout snapshot")
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Delete removes the snapshot of a desktop.
func (r *layoutRepo) Delete(ctx context.Context, desk entity.DesktopID) error {
	logging.FromContext(ctx).Debug().Str("desktop", desk.String()).Msg("deleting layout snapshot")
	_, err := r.db.ExecContext(ctx, deleteLayoutQuery, desk.X, desk.Y, desk.Zone)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLayout(row rowScanner) (*entity.LayoutSnapshot, error) {
	var (
		snap     entity.LayoutSnapshot
		treeJSON string
		savedAt  int64
	)
	if err := row.Scan(
		&snap.Desktop.X, &snap.Desktop.Y, &snap.Desktop.Zone,
		&snap.Version, &snap.WindowCount, &treeJSON, &savedAt,
	); err != nil {
		return nil, err
	}

	var root entity.SnapshotNode
	if err := json.Unmarshal([]byte(treeJSON), &root); err != nil {
		return nil, fmt.Errorf("decode layout tree of %s: %w", snap.Desktop, err)
	}
	snap.Root = &root
	snap.SavedAt = time.UnixMilli(savedAt).UTC()
	return &snap, nil
}
