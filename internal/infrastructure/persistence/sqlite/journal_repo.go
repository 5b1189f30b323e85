package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/domain/entity"
	"github.com/bnema/jumpkey/internal/logging"
)

// dbProvider yields the connection, opening it on first use.
type dbProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

type staticDB struct{ db *sql.DB }

func (s staticDB) DB(context.Context) (*sql.DB, error) { return s.db, nil }

type journalRepo struct {
	provider dbProvider
}

// NewJournalRepository creates a journal over an open connection.
func NewJournalRepository(db *sql.DB) port.ActivationJournal {
	return &journalRepo{provider: staticDB{db: db}}
}

// NewLazyJournalRepository creates a journal that opens lazy on first use.
func NewLazyJournalRepository(lazy *LazyDB) port.ActivationJournal {
	return &journalRepo{provider: lazy}
}

const insertActivation = `
INSERT INTO activations (shortcut_id, accelerator, app_id, action, window_id, error, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

func (r *journalRepo) Record(ctx context.Context, a *entity.Activation) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := db.ExecContext(ctx, insertActivation,
		a.ShortcutID,
		a.Accelerator,
		a.AppID,
		string(a.Action),
		int64(a.WindowID),
		a.Error,
		createdAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record activation: %w", err)
	}
	if id, idErr := res.LastInsertId(); idErr == nil {
		a.ID = id
	}

	logging.FromContext(ctx).Trace().Int64("id", a.ID).Msg("activation journaled")
	return nil
}

const selectRecent = `
SELECT id, shortcut_id, accelerator, app_id, action, window_id, error, created_at
FROM activations
ORDER BY created_at DESC, id DESC
LIMIT ?`

func (r *journalRepo) Recent(ctx context.Context, limit int) ([]*entity.Activation, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectRecent, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent activations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Activation
	for rows.Next() {
		var (
			a        entity.Activation
			action   string
			windowID int64
			created  int64
		)
		if err := rows.Scan(&a.ID, &a.ShortcutID, &a.Accelerator, &a.AppID, &action, &windowID, &a.Error, &created); err != nil {
			return nil, fmt.Errorf("scan activation: %w", err)
		}
		a.Action = entity.ActionKind(action)
		a.WindowID = entity.WindowID(windowID)
		a.CreatedAt = time.UnixMilli(created)
		out = append(out, &a)
	}
	return out, rows.Err()
}

const selectStats = `
SELECT shortcut_id, accelerator,
       COUNT(*) AS presses,
       SUM(CASE WHEN error != '' THEN 1 ELSE 0 END) AS failures,
       MAX(created_at) AS last_pressed
FROM activations
GROUP BY shortcut_id, accelerator
ORDER BY presses DESC, shortcut_id ASC`

func (r *journalRepo) Stats(ctx context.Context) ([]*entity.ActivationStats, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectStats)
	if err != nil {
		return nil, fmt.Errorf("query activation stats: %w", err)
	}
	defer rows.Close()

	var out []*entity.ActivationStats
	for rows.Next() {
		var (
			s    entity.ActivationStats
			last int64
		)
		if err := rows.Scan(&s.ShortcutID, &s.Accelerator, &s.Presses, &s.Failures, &last); err != nil {
			return nil, fmt.Errorf("scan activation stats: %w", err)
		}
		s.LastPressed = time.UnixMilli(last)
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *journalRepo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM activations WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune activations: %w", err)
	}
	return res.RowsAffected()
}
