package service

import (
	"context"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/validators"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}

// DocumentValidationService rejects malformed requests before they reach the
// repository.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(adapter.BatchCeiling),
	}
}

func (v *DocumentValidationService) Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Document, error) {
	if err := v.validateKey(ctx, tenant, kind, id); err != nil {
		return models.Document{}, err
	}
	return v.inner.Get(ctx, tenant, kind, id)
}

func (v *DocumentValidationService) List(ctx context.Context, tenant string, kind models.Kind) ([]models.Document, error) {
	if err := v.validateCollection(ctx, tenant, kind); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, tenant, kind)
}

func (v *DocumentValidationService) Exists(ctx context.Context, tenant string, kind models.Kind) (bool, error) {
	if err := v.validateCollection(ctx, tenant, kind); err != nil {
		return false, err
	}
	return v.inner.Exists(ctx, tenant, kind)
}

func (v *DocumentValidationService) Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	if err := v.validateWrite(ctx, tenant, models.BatchOp{Op: models.BatchSet, Kind: kind, ID: id, Payload: payload}); err != nil {
		return err
	}
	return v.inner.Set(ctx, tenant, kind, id, payload)
}

func (v *DocumentValidationService) Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	if err := v.validateWrite(ctx, tenant, models.BatchOp{Op: models.BatchUpdate, Kind: kind, ID: id, Payload: patch}); err != nil {
		return err
	}
	return v.inner.Update(ctx, tenant, kind, id, patch)
}

func (v *DocumentValidationService) Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error {
	if err := v.validateKey(ctx, tenant, kind, id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, tenant, kind, id)
}

func (v *DocumentValidationService) ApplyBatch(ctx context.Context, tenant string, ops []models.BatchOp) error {
	if tenant == "" {
		return ErrValidationNoTenant
	}
	if err := v.validator.Validate(ctx, models.BatchRequest{Ops: ops}, validators.FieldOps); err != nil {
		return fmt.Errorf("batch rejected: %w", err)
	}

	return v.inner.ApplyBatch(ctx, tenant, ops)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func (v *DocumentValidationService) validateCollection(ctx context.Context, tenant string, kind models.Kind) error {
	if tenant == "" {
		return ErrValidationNoTenant
	}
	return v.validator.Validate(ctx, models.BatchOp{Kind: kind}, validators.FieldKind)
}

func (v *DocumentValidationService) validateKey(ctx context.Context, tenant string, kind models.Kind, id int64) error {
	if tenant == "" {
		return ErrValidationNoTenant
	}
	return v.validator.Validate(ctx, models.BatchOp{Kind: kind, ID: id}, validators.FieldKind, validators.FieldID)
}

func (v *DocumentValidationService) validateWrite(ctx context.Context, tenant string, op models.BatchOp) error {
	if tenant == "" {
		return ErrValidationNoTenant
	}
	return v.validator.Validate(ctx, op, validators.FieldKind, validators.FieldID, validators.FieldIdentity)
}
