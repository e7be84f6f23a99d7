package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type clientSyncService struct {
	// mu serializes sync passes: a forced resync started during the
	// bootstrap waits for it instead of wiping what it is about to upload.
	mu sync.Mutex

	local    store.LocalStore
	remote   adapter.RemoteStore
	transfer BulkTransfer
	status   StatusBroadcaster
	now      func() time.Time

	logger *logger.Logger
}

// NewClientSyncService wires the bootstrap state machine.
func NewClientSyncService(
	local store.LocalStore,
	remote adapter.RemoteStore,
	transfer BulkTransfer,
	status StatusBroadcaster,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		local:    local,
		remote:   remote,
		transfer: transfer,
		status:   status,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *clientSyncService) InitializeSync(ctx context.Context, tenant string) models.SyncResult {
	return s.run(ctx, tenant, "clientSyncService.InitializeSync", s.reconcile)
}

func (s *clientSyncService) ForceFullResync(ctx context.Context, tenant string) models.SyncResult {
	return s.run(ctx, tenant, "clientSyncService.ForceFullResync", s.restoreFromRemote)
}

// run wraps one sync pass with the status transitions shared by every entry
// point.
func (s *clientSyncService) run(
	ctx context.Context,
	tenant, fn string,
	pass func(context.Context, string) (models.SyncResult, error),
) models.SyncResult {
	if tenant == "" {
		return models.SyncResult{Status: models.ScenarioNoUser}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.Publish(models.SyncingPatch())

	result, err := pass(ctx, tenant)
	if err != nil {
		s.logger.Err(err).
			Str("func", fn).
			Str("tenant", tenant).
			Msg("sync failed")
		s.status.Publish(models.FailedPatch(err))
		return models.SyncResult{Status: models.ScenarioError, Err: err}
	}

	s.status.Publish(models.SyncedPatch(s.now()))

	s.logger.Info().
		Str("func", fn).
		Str("tenant", tenant).
		Str("scenario", string(result.Status)).
		Int("records", result.Data.Count()).
		Msg("sync finished")

	return result
}

func (s *clientSyncService) reconcile(ctx context.Context, tenant string) (models.SyncResult, error) {
	hasLocal, err := s.hasLocalData(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	hasRemote, err := s.remote.ExistsAny(ctx, tenant, models.Houses)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrRemoteProbe, err)
	}

	switch {
	case hasRemote:
		return s.restoreFromRemote(ctx, tenant)
	case hasLocal:
		return s.uploadLocal(ctx, tenant)
	default:
		return models.SyncResult{Status: models.ScenarioFresh}, nil
	}
}

func (s *clientSyncService) hasLocalData(ctx context.Context) (bool, error) {
	for _, kind := range models.AnchorKinds {
		records, err := s.local.ListAll(ctx, kind)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %w", ErrLocalRead, kind, err)
		}
		if len(records) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (s *clientSyncService) uploadLocal(ctx context.Context, tenant string) (models.SyncResult, error) {
	snapshot, err := s.gather(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	if _, err = s.transfer.Upload(ctx, tenant, snapshot); err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	return models.SyncResult{Status: models.ScenarioUploaded, Data: snapshot}, nil
}

// gather reads every manifest kind. A failed read of an optional kind is
// logged and treated as empty.
func (s *clientSyncService) gather(ctx context.Context) (models.Snapshot, error) {
	snapshot := make(models.Snapshot, 0, len(models.Manifest))

	for _, spec := range models.Manifest {
		records, err := s.local.ListAll(ctx, spec.Kind)
		if err != nil {
			if !spec.Optional {
				return nil, fmt.Errorf("%w: %s: %w", ErrLocalRead, spec.Kind, err)
			}
			s.logger.Warn().
				Err(err).
				Str("func", "clientSyncService.gather").
				Str("kind", spec.Kind.String()).
				Msg("optional kind unreadable, uploading it as empty")
			records = nil
		}
		snapshot = append(snapshot, models.KindRecords{Kind: spec.Kind, Records: records})
	}

	return snapshot, nil
}

// restoreFromRemote downloads the full remote snapshot, then replaces every
// local kind with it. A failed download leaves local data untouched.
func (s *clientSyncService) restoreFromRemote(ctx context.Context, tenant string) (models.SyncResult, error) {
	remote, err := s.transfer.Download(ctx, tenant)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if err = s.local.DeleteAll(ctx); err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}

	restored := make(models.Snapshot, 0, len(models.SyncOrder))
	for _, kind := range models.SyncOrder {
		records := stripRecords(remote.Records(kind))
		if err = s.local.Restore(ctx, kind, records...); err != nil {
			return models.SyncResult{}, fmt.Errorf("%w: %s: %w", ErrLocalWrite, kind, err)
		}
		restored = append(restored, models.KindRecords{Kind: kind, Records: records})
	}

	return models.SyncResult{Status: models.ScenarioDownloaded, Data: restored}, nil
}

func stripRecords(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, models.Record{ID: rec.ID, Payload: models.StripRemoteMetadata(rec.Payload)})
	}
	return out
}
