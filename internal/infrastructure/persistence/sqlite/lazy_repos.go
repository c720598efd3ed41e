package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository"
)

// LazyLayoutRepository wraps the layout repository with lazy database
// initialization.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a lazy-loading layout repository.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutRepository) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snap)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, desk entity.DesktopID) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, desk)
}

func (r *LazyLayoutRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, desk entity.DesktopID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, desk)
}
