package service

import (
	"maps"
	"slices"
	"sync"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// statusBroadcaster is the owned replacement for a global status singleton.
// One instance lives for one signed-in session.
type statusBroadcaster struct {
	monitor ConnectivityMonitor

	mu        sync.Mutex
	status    models.SyncStatus
	observers map[int]func(models.SyncStatus)
	nextID    int

	unsubscribeMonitor func()
}

// NewStatusBroadcaster creates a broadcaster that reads IsOnline from monitor
// and republishes the status on every connectivity transition.
func NewStatusBroadcaster(monitor ConnectivityMonitor) StatusBroadcaster {
	b := &statusBroadcaster{
		monitor:   monitor,
		observers: make(map[int]func(models.SyncStatus)),
	}
	b.unsubscribeMonitor = monitor.Subscribe(func(bool) {
		b.notify(b.GetStatus())
	})
	return b
}

func (b *statusBroadcaster) GetStatus() models.SyncStatus {
	b.mu.Lock()
	status := b.status
	b.mu.Unlock()

	status.IsOnline = b.monitor.IsOnline()
	return status
}

func (b *statusBroadcaster) Subscribe(fn func(models.SyncStatus)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.observers[id] = fn
	b.mu.Unlock()

	fn(b.GetStatus())

	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

func (b *statusBroadcaster) Publish(patch models.StatusPatch) {
	b.mu.Lock()
	b.status = patch.Apply(b.status)
	b.mu.Unlock()

	b.notify(b.GetStatus())
}

func (b *statusBroadcaster) Close() {
	b.mu.Lock()
	clear(b.observers)
	unsubscribe := b.unsubscribeMonitor
	b.unsubscribeMonitor = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// notify invokes observers in subscription order, outside the lock.
func (b *statusBroadcaster) notify(status models.SyncStatus) {
	b.mu.Lock()
	ids := slices.Sorted(maps.Keys(b.observers))
	observers := make([]func(models.SyncStatus), 0, len(ids))
	for _, id := range ids {
		observers = append(observers, b.observers[id])
	}
	b.mu.Unlock()

	for _, fn := range observers {
		fn(status)
	}
}
