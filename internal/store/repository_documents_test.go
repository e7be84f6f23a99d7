package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const selectDocumentsSQL = "SELECT doc_id, payload, created_at, updated_at FROM documents WHERE kind = $1 AND tenant_id = $2"

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestDocumentRepo(t *testing.T) (DocumentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	storeDB := &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}
	return NewDocumentRepository(storeDB, logger.Nop()), mock
}

func TestDocumentRepository_Get(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectDocumentsSQL+" AND doc_id = $3")).
		WithArgs("houses", "tenant-1", int64(4)).
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(int64(4), []byte(`{"name":"Ashford","localId":4}`), created, created))

	doc, err := repo.Get(testContext(), "tenant-1", models.Houses, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), doc.ID)
	assert.Equal(t, models.Houses, doc.Kind)
	assert.Equal(t, "Ashford", doc.Payload["name"])
	assert.Equal(t, created, doc.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectDocumentsSQL)).
		WillReturnRows(sqlmock.NewRows(documentColumns))

	_, err := repo.Get(testContext(), "tenant-1", models.Houses, 4)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentRepository_List(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(selectDocumentsSQL + " ORDER BY doc_id")).
		WithArgs("persons", "tenant-1").
		WillReturnRows(sqlmock.NewRows(documentColumns).
			AddRow(int64(1), []byte(`{"name":"Ada"}`), now, now).
			AddRow(int64(2), []byte(`{"name":"Bram"}`), now, now))

	docs, err := repo.List(testContext(), "tenant-1", models.Persons)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, int64(2), docs[1].ID)
	assert.Equal(t, "Bram", docs[1].Payload["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Exists(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM documents WHERE kind = $1 AND tenant_id = $2 LIMIT 1")).
		WithArgs("houses", "tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM documents")).
		WithArgs("houses", "tenant-2").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.Exists(testContext(), "tenant-1", models.Houses)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(testContext(), "tenant-2", models.Houses)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Set_DropsServerFields(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents (tenant_id,kind,doc_id,payload) VALUES ($1,$2,$3,$4) ON CONFLICT (tenant_id, kind, doc_id) DO UPDATE")).
		WithArgs("tenant-1", "houses", int64(9), `{"localId":9,"name":"Ashford"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(testContext(), "tenant-1", models.Houses, 9, models.Payload{
		"id":        9,
		"localId":   9,
		"name":      "Ashford",
		"createdAt": "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Update(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE documents SET payload = payload || $1::jsonb, updated_at = NOW() WHERE kind = $2 AND tenant_id = $3 AND doc_id = $4")).
		WithArgs(`{"title":"Lady"}`, "persons", "tenant-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(testContext(), "tenant-1", models.Persons, 3, models.Payload{"title": "Lady"}))
	assert.ErrorIs(t, repo.Update(testContext(), "tenant-1", models.Persons, 4, models.Payload{"title": "Lady"}), ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Delete_Idempotent(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE kind = $1 AND tenant_id = $2 AND doc_id = $3")).
		WithArgs("persons", "tenant-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(testContext(), "tenant-1", models.Persons, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_CheckViolationMapsToUnknownKind(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})

	err := repo.Set(testContext(), "tenant-1", models.Houses, 1, models.Payload{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDocumentRepository_ApplyBatch(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("tenant-1", "houses", int64(1), `{"name":"Ashford"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE documents").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("persons", "tenant-1", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApplyBatch(testContext(), "tenant-1", []models.BatchOp{
		{Op: models.BatchSet, Kind: models.Houses, ID: 1, Payload: models.Payload{"name": "Ashford"}},
		{Op: models.BatchUpdate, Kind: models.Persons, ID: 1, Payload: models.Payload{"house": 1}},
		{Op: models.BatchDelete, Kind: models.Persons, ID: 2},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ApplyBatch_AllOrNothing(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE documents").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ApplyBatch(testContext(), "tenant-1", []models.BatchOp{
		{Op: models.BatchSet, Kind: models.Houses, ID: 1, Payload: models.Payload{}},
		{Op: models.BatchUpdate, Kind: models.Persons, ID: 404, Payload: models.Payload{"x": 1}},
	})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ApplyBatch_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApplyBatch(testContext(), "tenant-1", []models.BatchOp{
		{Op: models.BatchSet, Kind: models.Houses, ID: 1, Payload: models.Payload{}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ApplyBatch_NoRetryOnPermanentErrors(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := repo.ApplyBatch(testContext(), "tenant-1", []models.BatchOp{
		{Op: models.BatchSet, Kind: models.Houses, ID: 1, Payload: models.Payload{}},
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ApplyBatch_UnknownKind(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	err := repo.ApplyBatch(testContext(), "tenant-1", []models.BatchOp{
		{Op: models.BatchSet, Kind: models.Kind("dragons"), ID: 1},
	})
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "wrapped connection failure", err: errors.Join(ErrCommitingTransaction, &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
