package store

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the tenant-partitioned document store behind the
// remote API. Documents are addressed by (tenant, kind, id).
type DocumentRepository interface {
	Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Document, error)
	List(ctx context.Context, tenant string, kind models.Kind) ([]models.Document, error)
	Exists(ctx context.Context, tenant string, kind models.Kind) (bool, error)
	Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error
	Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error
	Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error
	// ApplyBatch applies ops atomically: all succeed or none are visible.
	ApplyBatch(ctx context.Context, tenant string, ops []models.BatchOp) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
