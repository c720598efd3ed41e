package cache

import (
	"context"
	"sync"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/repository"
)

// DefaultLayoutCapacity covers a 4x4 desktop grid on two outputs.
const DefaultLayoutCapacity = 32

// LayoutRepository is a read-through cache in front of another layout
// repository. Reads fill the cache; writes go to the backing store and
// then invalidate the desktop so the stored SavedAt is read back.
//
// Every completed write bumps the desktop's generation. A read only fills
// the cache when no write finished while it was reading the backing store,
// so a read racing a write never reinstates the old row.
type LayoutRepository struct {
	next  repository.LayoutRepository
	cache port.Cache[entity.DesktopID, *entity.LayoutSnapshot]

	mu  sync.Mutex
	gen map[entity.DesktopID]uint64
}

// NewLayoutRepository wraps next with an LRU of the given capacity.
func NewLayoutRepository(next repository.LayoutRepository, capacity int) *LayoutRepository {
	return &LayoutRepository{
		next:  next,
		cache: NewLRU[entity.DesktopID, *entity.LayoutSnapshot](capacity),
		gen:   make(map[entity.DesktopID]uint64),
	}
}

var _ repository.LayoutRepository = (*LayoutRepository)(nil)

func (r *LayoutRepository) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	err := r.next.Save(ctx, snap)
	r.invalidate(snap.Desktop)
	return err
}

func (r *LayoutRepository) Get(ctx context.Context, desk entity.DesktopID) (*entity.LayoutSnapshot, error) {
	if snap, ok := r.cache.Get(desk); ok {
		return snap, nil
	}
	gen := r.generation(desk)
	snap, err := r.next.Get(ctx, desk)
	if err != nil {
		return nil, err
	}
	r.fill(desk, gen, snap)
	return snap, nil
}

// List always reads the backing store, since the cache may not hold every
// desktop, and refreshes the cache with what it returns.
func (r *LayoutRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	r.mu.Lock()
	gens := make(map[entity.DesktopID]uint64, len(r.gen))
	for desk, g := range r.gen {
		gens[desk] = g
	}
	r.mu.Unlock()

	snaps, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, snap := range snaps {
		r.fill(snap.Desktop, gens[snap.Desktop], snap)
	}
	return snaps, nil
}

func (r *LayoutRepository) Delete(ctx context.Context, desk entity.DesktopID) error {
	err := r.next.Delete(ctx, desk)
	r.invalidate(desk)
	return err
}

// invalidate runs after every write, failed ones included.
func (r *LayoutRepository) invalidate(desk entity.DesktopID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen[desk]++
	r.cache.Remove(desk)
}

func (r *LayoutRepository) generation(desk entity.DesktopID) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen[desk]
}

// fill caches snap unless a write to desk completed after gen was taken.
func (r *LayoutRepository) fill(desk entity.DesktopID, gen uint64, snap *entity.LayoutSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen[desk] == gen {
		r.cache.Set(desk, snap)
	}
}
