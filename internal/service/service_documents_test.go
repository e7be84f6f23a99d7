package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/mock"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func newValidatedDocuments(t *testing.T) (DocumentService, *mock.MockDocumentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDocumentRepository(ctrl)
	return NewDocumentValidationService().Wrap(NewDocumentService(repo, logger.Nop())), repo
}

func TestDocumentService_PassesThrough(t *testing.T) {
	svc, repo := newValidatedDocuments(t)
	ctx := context.Background()

	doc := models.Document{Kind: models.Houses, ID: 3, Payload: models.Payload{"name": "Ashford"}}
	repo.EXPECT().Get(ctx, testTenant, models.Houses, int64(3)).Return(doc, nil)
	repo.EXPECT().List(ctx, testTenant, models.Houses).Return([]models.Document{doc}, nil)
	repo.EXPECT().Exists(ctx, testTenant, models.Houses).Return(true, nil)
	repo.EXPECT().Set(ctx, testTenant, models.Houses, int64(3), models.Payload{"localId": int64(3)}).Return(nil)
	repo.EXPECT().Update(ctx, testTenant, models.Houses, int64(3), models.Payload{"motto": "x"}).Return(nil)
	repo.EXPECT().Delete(ctx, testTenant, models.Houses, int64(3)).Return(nil)

	got, err := svc.Get(ctx, testTenant, models.Houses, 3)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	list, err := svc.List(ctx, testTenant, models.Houses)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	exists, err := svc.Exists(ctx, testTenant, models.Houses)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, svc.Set(ctx, testTenant, models.Houses, 3, models.Payload{"localId": int64(3)}))
	require.NoError(t, svc.Update(ctx, testTenant, models.Houses, 3, models.Payload{"motto": "x"}))
	require.NoError(t, svc.Delete(ctx, testTenant, models.Houses, 3))
}

func TestDocumentService_RepositoryErrorsPropagate(t *testing.T) {
	svc, repo := newValidatedDocuments(t)

	repo.EXPECT().Get(gomock.Any(), testTenant, models.Persons, int64(9)).Return(models.Document{}, store.ErrDocumentNotFound)

	_, err := svc.Get(context.Background(), testTenant, models.Persons, 9)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestDocumentValidation_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		call    func(DocumentService) error
		wantErr error
	}{
		{
			name: "no tenant",
			call: func(s DocumentService) error {
				_, err := s.List(context.Background(), "", models.Houses)
				return err
			},
			wantErr: ErrValidationNoTenant,
		},
		{
			name: "unknown kind",
			call: func(s DocumentService) error {
				_, err := s.Exists(context.Background(), testTenant, models.Kind("dragons"))
				return err
			},
			wantErr: ErrUnknownKind,
		},
		{
			name: "zero id",
			call: func(s DocumentService) error {
				_, err := s.Get(context.Background(), testTenant, models.Houses, 0)
				return err
			},
			wantErr: ErrInvalidIdentity,
		},
		{
			name: "negative id on delete",
			call: func(s DocumentService) error {
				return s.Delete(context.Background(), testTenant, models.Houses, -4)
			},
			wantErr: ErrInvalidIdentity,
		},
		{
			name: "localId differs from key",
			call: func(s DocumentService) error {
				return s.Set(context.Background(), testTenant, models.Houses, 4, models.Payload{"localId": 5})
			},
			wantErr: models.ErrIdentityMismatch,
		},
		{
			name: "id differs from key on update",
			call: func(s DocumentService) error {
				return s.Update(context.Background(), testTenant, models.Houses, 4, models.Payload{"id": "4"})
			},
			wantErr: models.ErrIdentityMismatch,
		},
		{
			name: "empty batch",
			call: func(s DocumentService) error {
				return s.ApplyBatch(context.Background(), testTenant, nil)
			},
			wantErr: ErrValidationNoOps,
		},
		{
			name: "batch over ceiling",
			call: func(s DocumentService) error {
				ops := make([]models.BatchOp, 501)
				for i := range ops {
					ops[i] = models.BatchOp{Op: models.BatchSet, Kind: models.Persons, ID: int64(i + 1)}
				}
				return s.ApplyBatch(context.Background(), testTenant, ops)
			},
			wantErr: ErrValidationTooManyOps,
		},
		{
			name: "batch with unsupported op",
			call: func(s DocumentService) error {
				return s.ApplyBatch(context.Background(), testTenant, []models.BatchOp{{Op: "merge", Kind: models.Houses, ID: 1}})
			},
			wantErr: ErrUnsupportedBatchOp,
		},
		{
			name: "batch with mismatched identity",
			call: func(s DocumentService) error {
				return s.ApplyBatch(context.Background(), testTenant, []models.BatchOp{
					{Op: models.BatchSet, Kind: models.Houses, ID: 1, Payload: models.Payload{"localId": 1}},
					{Op: models.BatchSet, Kind: models.Houses, ID: 2, Payload: models.Payload{"localId": 3}},
				})
			},
			wantErr: models.ErrIdentityMismatch,
		},
		{
			name: "batch without tenant",
			call: func(s DocumentService) error {
				return s.ApplyBatch(context.Background(), "", []models.BatchOp{{Op: models.BatchDelete, Kind: models.Houses, ID: 1}})
			},
			wantErr: ErrValidationNoTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newValidatedDocuments(t)
			assert.ErrorIs(t, tt.call(svc), tt.wantErr)
		})
	}
}

func TestDocumentValidation_BatchAtCeiling(t *testing.T) {
	svc, repo := newValidatedDocuments(t)

	ops := make([]models.BatchOp, 500)
	for i := range ops {
		ops[i] = models.BatchOp{Op: models.BatchDelete, Kind: models.Relationships, ID: int64(i + 1)}
	}
	repo.EXPECT().ApplyBatch(gomock.Any(), testTenant, ops).Return(nil)

	require.NoError(t, svc.ApplyBatch(context.Background(), testTenant, ops))
}
