package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/bnema/jumpkey/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator returns a goose provider over the embedded journal schema.
// The provider must not be closed: that would close db.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	files, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, files)
}

// Migrate applies the pending journal migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("journal migration applied")
	}
	return nil
}

// SchemaVersion returns the journal's current schema version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	version, err := migrator.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read journal schema version: %w", err)
	}
	return version, nil
}
