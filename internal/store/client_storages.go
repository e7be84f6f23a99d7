package store

import (
	"context"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// LocalStore is the SQLite-backed entity store on the client device.
	LocalStore LocalStore
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it
// when missing), applies the local migrations and wires the [LocalStore].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStore: NewLocalStore(db, log),
	}, nil
}
