package service

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService serves the tenant-scoped document API.
type DocumentService interface {
	Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Document, error)
	List(ctx context.Context, tenant string, kind models.Kind) ([]models.Document, error)
	Exists(ctx context.Context, tenant string, kind models.Kind) (bool, error)
	Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error
	Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error
	Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error
	ApplyBatch(ctx context.Context, tenant string, ops []models.BatchOp) error
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
