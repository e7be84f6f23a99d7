// Package migrations embeds the goose schema migrations of both databases:
// the client's SQLite entity tables (local/) and the document server's
// Postgres documents table (remote/).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed local/*.sql remote/*.sql
var embedMigrations embed.FS

// MigrateLocal applies the client schema to an SQLite database.
func MigrateLocal(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, goose.DialectSQLite3, "local")
}

// MigrateRemote applies the document server schema to a Postgres database.
func MigrateRemote(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, goose.DialectPostgres, "remote")
}

func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
