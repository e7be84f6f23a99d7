package service

import (
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
)

// ClientServices is one signed-in session worth of sync engine components.
type ClientServices struct {
	Monitor       ConnectivityMonitor
	Status        StatusBroadcaster
	Propagator    MutationPropagator
	Transfer      BulkTransfer
	SyncService   ClientSyncService
	EntityService ClientEntityService
	ProbeJob      ConnectivityProbeJob
}

// NewClientServices wires the sync engine over the local and remote stores.
// The monitor starts offline; the probe job seeds it on Start.
func NewClientServices(
	localStore store.LocalStore,
	remoteStore adapter.RemoteStore,
	prober adapter.Prober,
	cfg config.ClientSync,
	logger *logger.Logger,
) *ClientServices {
	monitor := NewConnectivityMonitor(false)
	status := NewStatusBroadcaster(monitor)
	propagator := NewMutationPropagator(remoteStore, monitor, logger.ForComponent("propagator"))
	transfer := NewBulkTransfer(remoteStore, cfg.BatchThreshold, logger.ForComponent("transfer"))

	return &ClientServices{
		Monitor:       monitor,
		Status:        status,
		Propagator:    propagator,
		Transfer:      transfer,
		SyncService:   NewClientSyncService(localStore, remoteStore, transfer, status, logger.ForComponent("orchestrator")),
		EntityService: NewClientEntityService(localStore, propagator, logger.ForComponent("entities")),
		ProbeJob:      NewConnectivityProbeJob(prober, monitor, logger.ForComponent("connectivity")),
	}
}

// Close stops background work and drains in-flight mirrors.
func (s *ClientServices) Close() {
	s.ProbeJob.Stop()
	s.Propagator.Wait()
	s.Status.Close()
}
