package service

import (
	"context"
	"sync"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

type mutationPropagator struct {
	remote  adapter.RemoteStore
	monitor ConnectivityMonitor
	now     func() time.Time

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewMutationPropagator returns a fire-and-forget mirror over remote. Calls
// made while monitor reports offline, or without a tenant, are dropped.
func NewMutationPropagator(remote adapter.RemoteStore, monitor ConnectivityMonitor, logger *logger.Logger) MutationPropagator {
	return &mutationPropagator{
		remote:  remote,
		monitor: monitor,
		now:     time.Now,
		logger:  logger,
	}
}

func (p *mutationPropagator) MirrorAdd(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) {
	if models.HasIdentityMismatch(id, payload) {
		p.dropMismatch("mutationPropagator.MirrorAdd", kind, id)
		return
	}
	doc := annotateForRemote(id, payload, p.now())

	p.dispatch(ctx, tenant, "mutationPropagator.MirrorAdd", kind, id, func(ctx context.Context) error {
		return p.remote.Set(ctx, tenant, kind, id, doc)
	})
}

func (p *mutationPropagator) MirrorUpdate(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) {
	if models.HasIdentityMismatch(id, patch) {
		p.dropMismatch("mutationPropagator.MirrorUpdate", kind, id)
		return
	}
	doc := patch.Clone()
	doc[models.FieldSyncedAt] = formatSyncTime(p.now())

	p.dispatch(ctx, tenant, "mutationPropagator.MirrorUpdate", kind, id, func(ctx context.Context) error {
		return p.remote.Update(ctx, tenant, kind, id, doc)
	})
}

func (p *mutationPropagator) MirrorDelete(ctx context.Context, tenant string, kind models.Kind, id int64) {
	p.dispatch(ctx, tenant, "mutationPropagator.MirrorDelete", kind, id, func(ctx context.Context) error {
		return p.remote.Delete(ctx, tenant, kind, id)
	})
}

func (p *mutationPropagator) Wait() {
	p.wg.Wait()
}

// dispatch issues call on a detached goroutine. Offline or tenant-less calls
// are silent no-ops; remote failures are logged and swallowed.
func (p *mutationPropagator) dispatch(ctx context.Context, tenant, fn string, kind models.Kind, id int64, call func(context.Context) error) {
	if tenant == "" || !p.monitor.IsOnline() {
		return
	}

	detached := context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := call(detached); err != nil {
			p.logger.Warn().
				Err(err).
				Str("func", fn).
				Str("kind", kind.String()).
				Int64("id", id).
				Msg("remote mirror failed, local state kept")
		}
	}()
}

func (p *mutationPropagator) dropMismatch(fn string, kind models.Kind, id int64) {
	p.logger.Error().
		Err(models.ErrIdentityMismatch).
		Str("func", fn).
		Str("kind", kind.String()).
		Int64("id", id).
		Msg("mirror dropped")
}

// annotateForRemote returns the remote form of a local record: the payload
// plus a redundant copy of the identity and the sync timestamp.
func annotateForRemote(id int64, payload models.Payload, syncedAt time.Time) models.Payload {
	doc := payload.Clone()
	delete(doc, models.FieldID)
	doc[models.FieldLocalID] = id
	doc[models.FieldSyncedAt] = formatSyncTime(syncedAt)
	return doc
}

func formatSyncTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
