package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository"
	"github.com/bnema/tiler/internal/logging"
)

// ErrSnapshotVersion is returned for snapshots written by an incompatible
// version.
var ErrSnapshotVersion = errors.New("unsupported layout snapshot version")

// PersistLayoutsUseCase saves and restores desktop trees.
type PersistLayoutsUseCase struct {
	repo repository.LayoutRepository
	ctrl *TilingController
}

// NewPersistLayoutsUseCase creates a new PersistLayoutsUseCase.
func NewPersistLayoutsUseCase(repo repository.LayoutRepository, ctrl *TilingController) *PersistLayoutsUseCase {
	return &PersistLayoutsUseCase{repo: repo, ctrl: ctrl}
}

// SaveAll stores the tree of every enabled desktop that tiles at least one
// window. It returns the number of snapshots written.
func (uc *PersistLayoutsUseCase) SaveAll(ctx context.Context) (int, error) {
	var snaps []*entity.LayoutSnapshot
	for _, d := range uc.ctrl.Desktops() {
		if !d.Settings.Enabled() {
			continue
		}
		if snap, ok := uc.ctrl.Snapshot(d.ID); ok {
			snaps = append(snaps, snap)
		}
	}
	return uc.Store(ctx, snaps)
}

// Store writes already captured snapshots.
func (uc *PersistLayoutsUseCase) Store(ctx context.Context, snaps []*entity.LayoutSnapshot) (int, error) {
	log := logging.FromContext(ctx)

	saved := 0
	var errs []error
	for _, snap := range snaps {
		if err := uc.repo.Save(ctx, snap); err != nil {
			errs = append(errs, fmt.Errorf("save layout of %s: %w", snap.Desktop, err))
			continue
		}
		saved++
		log.Debug().
			Stringer("desktop", snap.Desktop).
			Int("window_count", snap.WindowCount).
			Msg("layout saved")
	}
	return saved, errors.Join(errs...)
}

// Restore rebuilds the tree of a desktop from its stored snapshot.
func (uc *PersistLayoutsUseCase) Restore(ctx context.Context, desk entity.DesktopID) error {
	snap, err := uc.repo.Get(ctx, desk)
	if err != nil {
		return fmt.Errorf("load layout of %s: %w", desk, err)
	}
	if snap.Version != entity.LayoutSnapshotVersion {
		return fmt.Errorf("layout of %s has version %d: %w", desk, snap.Version, ErrSnapshotVersion)
	}
	return uc.ctrl.ApplySnapshot(ctx, snap)
}

// RestoreAll restores every stored layout whose desktop has tiling enabled.
// It returns the number of desktops restored.
func (uc *PersistLayoutsUseCase) RestoreAll(ctx context.Context) (int, error) {
	snaps, err := uc.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list layouts: %w", err)
	}

	restored := 0
	var errs []error
	for _, snap := range snaps {
		err := uc.Restore(ctx, snap.Desktop)
		switch {
		case err == nil:
			restored++
		case errors.Is(err, ErrTilingDisabled):
			logging.FromContext(ctx).Debug().
				Stringer("desktop", snap.Desktop).
				Msg("skipping layout of desktop without tiling")
		default:
			errs = append(errs, err)
		}
	}
	return restored, errors.Join(errs...)
}

// List returns every stored layout, most recent first.
func (uc *PersistLayoutsUseCase) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	snaps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return snaps, nil
}

// Get returns the stored layout of a desktop.
func (uc *PersistLayoutsUseCase) Get(ctx context.Context, desk entity.DesktopID) (*entity.LayoutSnapshot, error) {
	snap, err := uc.repo.Get(ctx, desk)
	if err != nil {
		return nil, fmt.Errorf("load layout of %s: %w", desk, err)
	}
	return snap, nil
}

// Delete removes the stored layout of a desktop.
func (uc *PersistLayoutsUseCase) Delete(ctx context.Context, desk entity.DesktopID) error {
	if err := uc.repo.Delete(ctx, desk); err != nil {
		return fmt.Errorf("delete layout of %s: %w", desk, err)
	}
	logging.FromContext(ctx).Info().Stringer("desktop", desk).Msg("layout deleted")
	return nil
}
