package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// restoreChunkSize bounds the number of rows per multi-value INSERT so the
// statement stays under SQLite's host parameter limit.
const restoreChunkSize = 200

// localStore is the SQLite-backed [LocalStore]. Each kind lives in its own
// table of (id, payload, updated_at), payload being the JSON-encoded record.
type localStore struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewLocalStore constructs a [LocalStore] over an already migrated SQLite
// connection.
func NewLocalStore(db *DB, logger *logger.Logger) LocalStore {
	return &localStore{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

func (l *localStore) ListAll(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return nil, err
	}

	query, args, err := l.builder.Select("id", "payload").From(string(kind)).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.ListAll").
			Str("kind", kind.String()).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 64)
	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			log.Err(err).
				Str("func", "localStore.ListAll").
				Str("kind", kind.String()).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		payload, err := decodePayload(raw)
		if err != nil {
			log.Err(err).
				Str("func", "localStore.ListAll").
				Str("kind", kind.String()).
				Int64("id", id).
				Msg("failed to decode record payload")
			return nil, err
		}
		records = append(records, models.Record{ID: id, Payload: payload})
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localStore.ListAll").
			Str("kind", kind.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (l *localStore) Add(ctx context.Context, kind models.Kind, payload models.Payload) (int64, error) {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return 0, err
	}

	encoded, err := encodePayload(withoutIdentity(payload))
	if err != nil {
		return 0, err
	}

	query, args, err := l.builder.Insert(string(kind)).Columns("payload").Values(encoded).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.Add").
			Str("kind", kind.String()).
			Msg("failed to insert record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (l *localStore) Update(ctx context.Context, kind models.Kind, id int64, patch models.Payload) error {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return err
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStore.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "localStore.Update")

	selectQuery, selectArgs, err := l.builder.Select("payload").From(string(kind)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	if err = tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s/%d", ErrRecordNotFound, kind, id)
		}
		log.Err(err).
			Str("func", "localStore.Update").
			Str("kind", kind.String()).
			Int64("id", id).
			Msg("failed to read record for merge")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	current, err := decodePayload(raw)
	if err != nil {
		return err
	}
	maps.Copy(current, withoutIdentity(patch))

	encoded, err := encodePayload(current)
	if err != nil {
		return err
	}

	updateQuery, updateArgs, err := l.builder.Update(string(kind)).
		Set("payload", encoded).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		log.Err(err).
			Str("func", "localStore.Update").
			Str("kind", kind.String()).
			Int64("id", id).
			Msg("failed to update record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localStore) Delete(ctx context.Context, kind models.Kind, id int64) error {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return err
	}

	query, args, err := l.builder.Delete(string(kind)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localStore.Delete").
			Str("kind", kind.String()).
			Int64("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%d", ErrRecordNotFound, kind, id)
	}

	return nil
}

// DeleteAll empties every table in one transaction, dependants first.
func (l *localStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStore.DeleteAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "localStore.DeleteAll")

	for _, kind := range slices.Backward(models.SyncOrder) {
		query, args, err := l.builder.Delete(string(kind)).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStore.DeleteAll").
				Str("kind", kind.String()).
				Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "localStore.DeleteAll").Msg("local store cleared")
	return nil
}

// Restore writes records with their identities verbatim, replacing any row
// already holding the same identity.
func (l *localStore) Restore(ctx context.Context, kind models.Kind, records ...models.Record) error {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStore.Restore").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "localStore.Restore")

	for chunk := range slices.Chunk(records, restoreChunkSize) {
		insert := l.builder.Replace(string(kind)).Columns("id", "payload")
		for _, rec := range chunk {
			encoded, err := encodePayload(withoutIdentity(rec.Payload))
			if err != nil {
				return err
			}
			insert = insert.Values(rec.ID, encoded)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStore.Restore").
				Str("kind", kind.String()).
				Int("records", len(chunk)).
				Msg("failed to restore records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// withoutIdentity drops an "id" key from p: the identity lives in the id
// column and nowhere else.
func withoutIdentity(p models.Payload) models.Payload {
	if _, ok := p[models.FieldID]; !ok {
		return p
	}
	out := p.Clone()
	delete(out, models.FieldID)
	return out
}
