// Package snapshot debounces layout persistence.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

const (
	defaultInterval   = 2 * time.Second
	defaultRetries    = 2
	defaultRetryDelay = 100 * time.Millisecond
)

// LayoutProvider captures the current tree of a desktop.
type LayoutProvider interface {
	Snapshot(desk entity.DesktopID) (*entity.LayoutSnapshot, bool)
}

// LayoutStore writes captured snapshots.
type LayoutStore interface {
	Store(ctx context.Context, snaps []*entity.LayoutSnapshot) (int, error)
}

// Service handles debounced layout snapshots.
//
// MarkDirty captures the snapshot synchronously, so it must be called from
// the goroutine that drives the controller. Writes happen on a timer.
type Service struct {
	provider   LayoutProvider
	store      LayoutStore
	interval   time.Duration
	retries    int
	retryDelay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending map[entity.DesktopID]*entity.LayoutSnapshot
	ready   bool // false while layouts are being restored at startup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates a new snapshot service.
func NewService(provider LayoutProvider, store LayoutStore, intervalMs int) *Service {
	interval := defaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		provider:   provider,
		store:      store,
		interval:   interval,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		pending:    make(map[entity.DesktopID]*entity.LayoutSnapshot),
	}
}

// Start begins accepting dirty desktops.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// SetReady allows saves. Snapshots marked before are written right away.
func (s *Service) SetReady() {
	s.mu.Lock()
	s.ready = true
	flush := len(s.pending) > 0
	s.mu.Unlock()

	if flush {
		s.schedule(0)
	}
}

// Stop stops the service and saves pending layouts.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty records that the layout of a desktop changed. Empty trees are
// not saved, so the last stored layout survives closing every window.
func (s *Service) MarkDirty(desk entity.DesktopID) {
	snap, ok := s.provider.Snapshot(desk)

	s.mu.Lock()
	if ok {
		s.pending[desk] = snap
	} else {
		delete(s.pending, desk)
	}
	empty := len(s.pending) == 0
	s.mu.Unlock()

	if !empty {
		s.schedule(s.interval)
	}
}

func (s *Service) schedule(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layouts")
		}
	})
}

// SaveNow writes pending layouts immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.save(ctx)
}

// Pending returns the number of desktops waiting to be saved.
func (s *Service) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready || len(s.pending) == 0 {
		// Keep pending snapshots until ready
		s.mu.Unlock()
		return nil
	}
	batch := s.pending
	s.pending = make(map[entity.DesktopID]*entity.LayoutSnapshot, len(batch))
	s.mu.Unlock()

	snaps := make([]*entity.LayoutSnapshot, 0, len(batch))
	for _, snap := range batch {
		snaps = append(snaps, snap)
	}

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(s.retryDelay)
		}
		if _, err = s.store.Store(ctx, snaps); err == nil || !isBusy(err) {
			break
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt+1).Msg("database busy, retrying")
	}
	if err != nil {
		s.requeue(batch)
	}
	return err
}

// requeue puts failed snapshots back unless a newer one was marked since.
func (s *Service) requeue(batch map[entity.DesktopID]*entity.LayoutSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for desk, snap := range batch {
		if _, newer := s.pending[desk]; !newer {
			s.pending[desk] = snap
		}
	}
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
