package store

import (
	"context"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
)

// Storages groups the document server's repositories.
type Storages struct {
	DocumentRepository DocumentRepository

	db *DB
}

// NewStorages connects to Postgres, applies the remote migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DocumentRepository: NewDocumentRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
