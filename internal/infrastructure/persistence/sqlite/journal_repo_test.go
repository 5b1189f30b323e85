package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/jumpkey/internal/logging"
)

func testCtx() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: logging.FormatConsole})
	return logging.WithContext(context.Background(), logger)
}

func TestJournalRepository_RecordAndRecent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "jumpkey.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewJournalRepository(db)
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	first := &entity.Activation{
		ShortcutID: "editor", Accelerator: "<Super>e", AppID: "editor.desktop",
		Action: entity.ActionLaunch, CreatedAt: base,
	}
	second := &entity.Activation{
		ShortcutID: "editor", Accelerator: "<Super>e", AppID: "editor.desktop",
		Action: entity.ActionFocus, WindowID: 42, CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, repo.Record(ctx, first))
	require.NoError(t, repo.Record(ctx, second))
	assert.NotZero(t, first.ID)

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, entity.ActionFocus, recent[0].Action, "newest first")
	assert.Equal(t, entity.WindowID(42), recent[0].WindowID)
	assert.True(t, recent[0].CreatedAt.Equal(second.CreatedAt))

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestJournalRepository_StatsAndPrune(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "jumpkey.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewJournalRepository(db)
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := old.AddDate(0, 2, 0)

	records := []*entity.Activation{
		{ShortcutID: "term", Accelerator: "<Super>Return", AppID: "kitty.desktop", Action: entity.ActionFocus, CreatedAt: old},
		{ShortcutID: "term", Accelerator: "<Super>Return", AppID: "kitty.desktop", Action: entity.ActionLaunch, Error: "boom", CreatedAt: recent},
		{ShortcutID: "web", Accelerator: "<Super>w", AppID: "firefox.desktop", Action: entity.ActionMinimize, CreatedAt: recent},
	}
	for _, r := range records {
		require.NoError(t, repo.Record(ctx, r))
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "term", stats[0].ShortcutID)
	assert.Equal(t, int64(2), stats[0].Presses)
	assert.Equal(t, int64(1), stats[0].Failures)
	assert.True(t, stats[0].LastPressed.Equal(recent))

	removed, err := repo.PruneBefore(ctx, old.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	left, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "journal", "jumpkey.sqlite")
	lazy := sqlite.NewLazyDB(path)
	assert.NoFileExists(t, path, "nothing touches the disk before first use")

	repo := sqlite.NewLazyJournalRepository(lazy)
	require.NoError(t, repo.Record(ctx, &entity.Activation{ShortcutID: "a", Accelerator: "<Super>a", AppID: "a.desktop", Action: entity.ActionNoOp}))
	assert.FileExists(t, path)

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, lazy.Close())
	require.NoError(t, lazy.Close(), "close is idempotent")
	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrJournalClosed)
}

func TestLazyDB_RetriesFailedOpen(t *testing.T) {
	ctx := testCtx()
	blocker := filepath.Join(t.TempDir(), "journal")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o600))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "jumpkey.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	_, err := lazy.DB(ctx)
	require.Error(t, err)

	require.NoError(t, os.Remove(blocker))
	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.NoError(t, db.PingContext(ctx))
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "jumpkey.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make(chan any, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			dbs <- db
		}()
	}
	wg.Wait()
	close(dbs)

	first := <-dbs
	for db := range dbs {
		assert.Same(t, first, db)
	}
}
