package service

import (
	"context"
	"sync"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type clientEntityService struct {
	local      store.LocalStore
	propagator MutationPropagator

	mu     sync.RWMutex
	tenant string

	logger *logger.Logger
}

// NewClientEntityService returns the local-first CRUD facade. Every mutation
// is committed locally before it is handed to propagator.
func NewClientEntityService(local store.LocalStore, propagator MutationPropagator, logger *logger.Logger) ClientEntityService {
	return &clientEntityService{
		local:      local,
		propagator: propagator,
		logger:     logger,
	}
}

func (s *clientEntityService) SetTenant(tenant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenant = tenant
}

func (s *clientEntityService) Tenant() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenant
}

func (s *clientEntityService) Create(ctx context.Context, kind models.Kind, payload models.Payload) (int64, error) {
	clean := models.StripRemoteMetadata(payload)

	id, err := s.local.Add(ctx, kind, clean)
	if err != nil {
		s.logLocalError(err, "clientEntityService.Create", kind)
		return 0, err
	}

	s.propagator.MirrorAdd(ctx, s.Tenant(), kind, id, clean)
	return id, nil
}

func (s *clientEntityService) Update(ctx context.Context, kind models.Kind, id int64, patch models.Payload) error {
	clean := models.StripRemoteMetadata(patch)

	if err := s.local.Update(ctx, kind, id, clean); err != nil {
		s.logLocalError(err, "clientEntityService.Update", kind)
		return err
	}

	s.propagator.MirrorUpdate(ctx, s.Tenant(), kind, id, clean)
	return nil
}

func (s *clientEntityService) Delete(ctx context.Context, kind models.Kind, id int64) error {
	if err := s.local.Delete(ctx, kind, id); err != nil {
		s.logLocalError(err, "clientEntityService.Delete", kind)
		return err
	}

	s.propagator.MirrorDelete(ctx, s.Tenant(), kind, id)
	return nil
}

func (s *clientEntityService) List(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	return s.local.ListAll(ctx, kind)
}

func (s *clientEntityService) logLocalError(err error, fn string, kind models.Kind) {
	s.logger.Err(err).
		Str("func", fn).
		Str("kind", kind.String()).
		Msg("local mutation failed, nothing mirrored")
}
