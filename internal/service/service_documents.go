package service

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type documentService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

func (d *documentService) Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Document, error) {
	return d.documentRepository.Get(ctx, tenant, kind, id)
}

func (d *documentService) List(ctx context.Context, tenant string, kind models.Kind) ([]models.Document, error) {
	return d.documentRepository.List(ctx, tenant, kind)
}

func (d *documentService) Exists(ctx context.Context, tenant string, kind models.Kind) (bool, error) {
	return d.documentRepository.Exists(ctx, tenant, kind)
}

func (d *documentService) Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	return d.documentRepository.Set(ctx, tenant, kind, id, payload)
}

func (d *documentService) Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	return d.documentRepository.Update(ctx, tenant, kind, id, patch)
}

func (d *documentService) Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error {
	return d.documentRepository.Delete(ctx, tenant, kind, id)
}

func (d *documentService) ApplyBatch(ctx context.Context, tenant string, ops []models.BatchOp) error {
	if err := d.documentRepository.ApplyBatch(ctx, tenant, ops); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "documentService.ApplyBatch").
		Int("ops", len(ops)).
		Msg("batch applied")
	return nil
}
