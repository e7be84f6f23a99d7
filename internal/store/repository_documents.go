package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const (
	documentsTable = "documents"

	// maxBatchAttempts bounds replays of a batch transaction that failed with
	// a retryable Postgres error (serialization failure, deadlock, ...).
	maxBatchAttempts = 3
)

var documentColumns = []string{"doc_id", "payload", "created_at", "updated_at"}

// documentRepository is the PostgreSQL-backed [DocumentRepository]. All
// tenants share one table partitioned by (tenant_id, kind).
type documentRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	if db.errorClassificator == nil {
		db.errorClassificator = NewPostgresErrorClassifier()
	}
	return &documentRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

func (r *documentRepository) scope(tenant string, kind models.Kind) sq.Eq {
	return sq.Eq{"tenant_id": tenant, "kind": string(kind)}
}

func (r *documentRepository) Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return models.Document{}, err
	}

	query, args, err := r.builder.Select(documentColumns...).
		From(documentsTable).
		Where(r.scope(tenant, kind)).
		Where(sq.Eq{"doc_id": id}).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, fmt.Errorf("%w: %s/%d", ErrDocumentNotFound, kind, id)
		}
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("kind", kind.String()).
			Int64("id", id).
			Msg("failed to read document")
		return models.Document{}, err
	}
	doc.Kind = kind

	return doc, nil
}

func (r *documentRepository) List(ctx context.Context, tenant string, kind models.Kind) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return nil, err
	}

	query, args, err := r.builder.Select(documentColumns...).
		From(documentsTable).
		Where(r.scope(tenant, kind)).
		OrderBy("doc_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.List").
			Str("kind", kind.String()).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 64)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Err(err).
				Str("func", "documentRepository.List").
				Str("kind", kind.String()).
				Msg("failed to scan document row")
			return nil, err
		}
		doc.Kind = kind
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "documentRepository.List").
			Str("kind", kind.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func (r *documentRepository) Exists(ctx context.Context, tenant string, kind models.Kind) (bool, error) {
	log := logger.FromContext(ctx)

	if err := checkKind(kind); err != nil {
		return false, err
	}

	query, args, err := r.builder.Select("1").
		From(documentsTable).
		Where(r.scope(tenant, kind)).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).
			Str("func", "documentRepository.Exists").
			Str("kind", kind.String()).
			Msg("failed to probe collection")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *documentRepository) Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return r.set(ctx, r.DB.DB, tenant, kind, id, payload)
}

func (r *documentRepository) Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return r.update(ctx, r.DB.DB, tenant, kind, id, patch)
}

func (r *documentRepository) Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return r.delete(ctx, r.DB.DB, tenant, kind, id)
}

// ApplyBatch runs ops inside one transaction. Transactions failing with a
// retryable error are replayed up to maxBatchAttempts times.
func (r *documentRepository) ApplyBatch(ctx context.Context, tenant string, ops []models.BatchOp) error {
	log := logger.FromContext(ctx)

	for _, op := range ops {
		if err := checkKind(op.Kind); err != nil {
			return err
		}
	}

	var err error
	for attempt := 1; attempt <= maxBatchAttempts; attempt++ {
		err = r.applyBatchOnce(ctx, tenant, ops)
		if err == nil {
			return nil
		}
		class := r.errorClassificator.Classify(err)
		if class != Retryable {
			return err
		}

		log.Warn().
			Err(err).
			Str("func", "documentRepository.ApplyBatch").
			Stringer("class", class).
			Int("attempt", attempt).
			Int("ops", len(ops)).
			Msg("retrying batch after transient error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return err
}

func (r *documentRepository) applyBatchOnce(ctx context.Context, tenant string, ops []models.BatchOp) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.ApplyBatch").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer rollback(tx, log, "documentRepository.ApplyBatch")

	for _, op := range ops {
		switch op.Op {
		case models.BatchSet:
			err = r.set(ctx, tx, tenant, op.Kind, op.ID, op.Payload)
		case models.BatchUpdate:
			err = r.update(ctx, tx, tenant, op.Kind, op.ID, op.Payload)
		case models.BatchDelete:
			err = r.delete(ctx, tx, tenant, op.Kind, op.ID)
		default:
			err = fmt.Errorf("unsupported batch operation %q", op.Op)
		}
		if err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "documentRepository.ApplyBatch").Msg("failed to commit batch")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *documentRepository) set(ctx context.Context, db execer, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	log := logger.FromContext(ctx)

	encoded, err := encodePayload(models.WithoutServerFields(payload))
	if err != nil {
		return err
	}

	query, args, err := r.builder.Insert(documentsTable).
		Columns("tenant_id", "kind", "doc_id", "payload").
		Values(tenant, string(kind), id, encoded).
		Suffix("ON CONFLICT (tenant_id, kind, doc_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Set").
			Str("kind", kind.String()).
			Int64("id", id).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert document")
		return r.statementError(err)
	}

	return nil
}

func (r *documentRepository) update(ctx context.Context, db execer, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	log := logger.FromContext(ctx)

	encoded, err := encodePayload(models.WithoutServerFields(patch))
	if err != nil {
		return err
	}

	query, args, err := r.builder.Update(documentsTable).
		Set("payload", sq.Expr("payload || ?::jsonb", encoded)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(r.scope(tenant, kind)).
		Where(sq.Eq{"doc_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("kind", kind.String()).
			Int64("id", id).
			Str("pg_code", postgresError(err)).
			Msg("failed to merge document")
		return r.statementError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%d", ErrDocumentNotFound, kind, id)
	}

	return nil
}

// delete is idempotent: removing a missing document is not an error.
func (r *documentRepository) delete(ctx context.Context, db execer, tenant string, kind models.Kind, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete(documentsTable).
		Where(r.scope(tenant, kind)).
		Where(sq.Eq{"doc_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Delete").
			Str("kind", kind.String()).
			Int64("id", id).
			Msg("failed to delete document")
		return r.statementError(err)
	}

	return nil
}

func (r *documentRepository) statementError(err error) error {
	if postgresError(err) == pgerrcode.CheckViolation {
		return fmt.Errorf("%w: %w", ErrUnknownKind, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc models.Document
		raw []byte
	)
	if err := row.Scan(&doc.ID, &raw, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, err
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	payload, err := decodePayload(raw)
	if err != nil {
		return models.Document{}, err
	}
	doc.Payload = payload

	return doc, nil
}
