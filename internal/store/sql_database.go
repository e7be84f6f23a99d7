// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// DB wraps a *sql.DB together with the dialect-specific helpers used by the
// stores built on top of it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(ctx context.Context, db *sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(ctx, db.DB)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func encodePayload(p models.Payload) (string, error) {
	if p == nil {
		p = models.Payload{}
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return string(raw), nil
}

func decodePayload(raw []byte) (models.Payload, error) {
	p := models.Payload{}
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return p, nil
}

func checkKind(kind models.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// rollback is deferred right after BeginTx; it is a no-op once the
// transaction has been committed.
func rollback(tx *sql.Tx, log *logger.Logger, fn string) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.Err(err).Str("func", fn).Msg("failed to rollback transaction")
	}
}
