package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/jumpkey/internal/logging"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const journalDirPerm = 0o750

// journalPragmas let the CLI read the journal while the daemon appends to it.
var journalPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// Open opens the activation journal at path, creating the file and its
// directory on first use, and brings the schema up to date.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), journalDirPerm); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// One connection: presses are rare and sqlite has a single writer anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("journal opened")
	return db, nil
}

func prepare(ctx context.Context, db *sql.DB) error {
	for _, pragma := range journalPragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("journal %q: %w", pragma, err)
		}
	}
	if err := Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}
