package sqlite_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/tiler/internal/application/port/mocks"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_InitializesOnce(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tiler.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	assert.False(t, lazy.IsInitialized())

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]any, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			dbs[i] = db
		}()
	}
	wg.Wait()

	assert.True(t, lazy.IsInitialized())
	for _, db := range dbs[1:] {
		assert.Same(t, dbs[0], db)
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB("/nonexistent/tiler.sqlite")

	assert.NoError(t, lazy.Close())
	assert.Equal(t, "/nonexistent/tiler.sqlite", lazy.Path())
}

func TestLazyDB_InitErrorIsSticky(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyLayoutRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tiler.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyLayoutRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.True(t, lazy.IsInitialized())
}

func TestLazyLayoutRepository_PropagatesProviderError(t *testing.T) {
	ctx := testCtx()
	boom := errors.New("disk full")
	provider := mocks.NewMockDatabaseProvider(t)
	provider.EXPECT().DB(mock.Anything).Return(nil, boom).Once()

	repo := sqlite.NewLazyLayoutRepository(provider)

	_, err := repo.Get(ctx, entity.DesktopID{})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, repo.Delete(ctx, entity.DesktopID{}), boom, "init is attempted once")
}
