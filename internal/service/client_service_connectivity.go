package service

import (
	"sync"
)

type connectivityMonitor struct {
	mu        sync.RWMutex
	online    bool
	observers map[int]func(bool)
	nextID    int
}

// NewConnectivityMonitor returns a monitor with the given initial flag.
func NewConnectivityMonitor(initial bool) ConnectivityMonitor {
	return &connectivityMonitor{
		online:    initial,
		observers: make(map[int]func(bool)),
	}
}

func (m *connectivityMonitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

func (m *connectivityMonitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	observers := m.snapshotObservers()
	m.mu.Unlock()

	for _, fn := range observers {
		fn(online)
	}
}

func (m *connectivityMonitor) Subscribe(fn func(bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.observers, id)
		m.mu.Unlock()
	}
}

// snapshotObservers must be called with mu held.
func (m *connectivityMonitor) snapshotObservers() []func(bool) {
	out := make([]func(bool), 0, len(m.observers))
	for _, fn := range m.observers {
		out = append(out, fn)
	}
	return out
}
