package service

import (
	"context"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConnectivityMonitor holds the client's online flag. It is seeded from the
// first reachability probe and flipped by later transition events. It never
// triggers a re-sync on reconnect.
type ConnectivityMonitor interface {
	// IsOnline reports the last known reachability of the remote store.
	IsOnline() bool

	// SetOnline applies a transition event. Observers are notified only when
	// the flag actually changes.
	SetOnline(online bool)

	// Subscribe registers fn for transition events and returns a function that
	// removes it.
	Subscribe(fn func(online bool)) (unsubscribe func())
}

// StatusBroadcaster owns the published sync status and its observers.
type StatusBroadcaster interface {
	// GetStatus returns the current status, IsOnline included.
	GetStatus() models.SyncStatus

	// Subscribe invokes fn immediately with the current status, then on every
	// change, until the returned unsubscribe function is called.
	Subscribe(fn func(models.SyncStatus)) (unsubscribe func())

	// Publish merges patch into the status and synchronously notifies every
	// observer.
	Publish(patch models.StatusPatch)

	// Close drops all observers. Used on sign-out.
	Close()
}

// MutationPropagator mirrors already-committed local mutations to the remote
// store. Calls never block on the network and never report remote failures.
type MutationPropagator interface {
	MirrorAdd(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload)
	MirrorUpdate(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload)
	MirrorDelete(ctx context.Context, tenant string, kind models.Kind, id int64)

	// Wait blocks until every in-flight mirror call has finished.
	Wait()
}

// BulkTransfer moves whole collections between the stores.
type BulkTransfer interface {
	// Upload stages one set per record, in snapshot order, committing whenever
	// the staged count reaches the batch threshold. It returns the number of
	// commits issued.
	Upload(ctx context.Context, tenant string, snapshot models.Snapshot) (commits int, err error)

	// Download reads every synchronized kind of tenant concurrently and
	// returns them in dependency order.
	Download(ctx context.Context, tenant string) (models.Snapshot, error)
}

// ClientSyncService is the bootstrap reconciliation state machine.
type ClientSyncService interface {
	// InitializeSync classifies the local and remote state of tenant and runs
	// the matching transfer. It never returns an error; failures are reported
	// through models.ScenarioError.
	InitializeSync(ctx context.Context, tenant string) models.SyncResult

	// ForceFullResync replaces local data with the remote snapshot regardless
	// of classification.
	ForceFullResync(ctx context.Context, tenant string) models.SyncResult
}

// ClientEntityService is the local-first CRUD facade used by the UI. Local
// errors are returned as-is; remote mirroring happens after local success.
type ClientEntityService interface {
	SetTenant(tenant string)
	Tenant() string

	Create(ctx context.Context, kind models.Kind, payload models.Payload) (int64, error)
	Update(ctx context.Context, kind models.Kind, id int64, patch models.Payload) error
	Delete(ctx context.Context, kind models.Kind, id int64) error
	List(ctx context.Context, kind models.Kind) ([]models.Record, error)
}

// ConnectivityProbeJob polls a reachability probe and feeds the monitor.
type ConnectivityProbeJob interface {
	// Start probes once synchronously, then every interval until ctx is
	// cancelled or Stop is called. A running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
