package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type bulkTransfer struct {
	remote    adapter.RemoteStore
	threshold int
	now       func() time.Time

	logger *logger.Logger
}

// NewBulkTransfer returns the batch upload / parallel download engine.
// threshold is the staged-operation count at which a batch is committed; a
// value outside (0, adapter.BatchCeiling) falls back to
// config.DefaultBatchThreshold.
func NewBulkTransfer(remote adapter.RemoteStore, threshold int, logger *logger.Logger) BulkTransfer {
	if threshold <= 0 || threshold >= adapter.BatchCeiling {
		threshold = config.DefaultBatchThreshold
	}
	return &bulkTransfer{
		remote:    remote,
		threshold: threshold,
		now:       time.Now,
		logger:    logger,
	}
}

func (t *bulkTransfer) Upload(ctx context.Context, tenant string, snapshot models.Snapshot) (int, error) {
	syncedAt := t.now()
	batch := t.remote.NewBatch(tenant)
	commits := 0

	for _, kr := range snapshot {
		for _, rec := range kr.Records {
			op := models.BatchOp{
				Op:      models.BatchSet,
				Kind:    kr.Kind,
				ID:      rec.ID,
				Payload: annotateForRemote(rec.ID, rec.Payload, syncedAt),
			}
			if err := batch.Stage(op); err != nil {
				return commits, fmt.Errorf("stage %s/%d: %w", kr.Kind, rec.ID, err)
			}

			if batch.Len() >= t.threshold {
				if err := batch.Commit(ctx); err != nil {
					return commits, fmt.Errorf("commit batch %d: %w", commits+1, err)
				}
				commits++
			}
		}
	}

	if batch.Len() > 0 {
		if err := batch.Commit(ctx); err != nil {
			return commits, fmt.Errorf("commit final batch: %w", err)
		}
		commits++
	}

	t.logger.Info().
		Str("func", "bulkTransfer.Upload").
		Int("records", snapshot.Count()).
		Int("commits", commits).
		Msg("upload finished")

	return commits, nil
}

func (t *bulkTransfer) Download(ctx context.Context, tenant string) (models.Snapshot, error) {
	snapshot := make(models.Snapshot, len(models.SyncOrder))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range models.SyncOrder {
		g.Go(func() error {
			records, err := t.remote.ListAll(gctx, tenant, kind)
			if err != nil {
				return fmt.Errorf("download %s: %w", kind, err)
			}
			snapshot[i] = models.KindRecords{Kind: kind, Records: records}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.logger.Info().
		Str("func", "bulkTransfer.Download").
		Int("records", snapshot.Count()).
		Msg("download finished")

	return snapshot, nil
}
