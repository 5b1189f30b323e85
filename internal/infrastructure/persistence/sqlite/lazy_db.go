package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// ErrJournalClosed is returned by LazyDB.DB after Close.
var ErrJournalClosed = errors.New("journal closed")

// LazyDB opens the journal on first access, so the daemon can bind shortcuts
// before paying for the WASM compilation and migrations. A failed open is
// retried on the next access.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewLazyDB returns a journal handle for path. Nothing touches the disk yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open journal, opening it if needed.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrJournalClosed
	}
	if l.db == nil {
		db, err := Open(ctx, l.path)
		if err != nil {
			return nil, fmt.Errorf("journal %s: %w", l.path, err)
		}
		l.db = db
	}
	return l.db, nil
}

// Close closes the journal if it was opened. Later calls to DB fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Path returns the journal file path.
func (l *LazyDB) Path() string {
	return l.path
}
