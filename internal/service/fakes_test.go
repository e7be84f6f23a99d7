package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/adapter"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// memLocalStore is an in-memory LocalStore with per-kind autoincrement ids.
type memLocalStore struct {
	mu       sync.Mutex
	records  map[models.Kind]map[int64]models.Payload
	nextID   map[models.Kind]int64
	listErrs map[models.Kind]error

	restoreOrder []models.Kind
	deleteAlls   int
}

func newMemLocalStore() *memLocalStore {
	return &memLocalStore{
		records:  make(map[models.Kind]map[int64]models.Payload),
		nextID:   make(map[models.Kind]int64),
		listErrs: make(map[models.Kind]error),
	}
}

func (s *memLocalStore) ListAll(_ context.Context, kind models.Kind) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.listErrs[kind]; err != nil {
		return nil, err
	}
	out := make([]models.Record, 0, len(s.records[kind]))
	for _, id := range slices.Sorted(maps.Keys(s.records[kind])) {
		out = append(out, models.Record{ID: id, Payload: s.records[kind][id].Clone()})
	}
	return out, nil
}

func (s *memLocalStore) Add(_ context.Context, kind models.Kind, payload models.Payload) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[kind]++
	id := s.nextID[kind]
	s.put(kind, id, payload)
	return id, nil
}

func (s *memLocalStore) Update(_ context.Context, kind models.Kind, id int64, patch models.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[kind][id]
	if !ok {
		return store.ErrRecordNotFound
	}
	maps.Copy(current, patch)
	return nil
}

func (s *memLocalStore) Delete(_ context.Context, kind models.Kind, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[kind][id]; !ok {
		return store.ErrRecordNotFound
	}
	delete(s.records[kind], id)
	return nil
}

func (s *memLocalStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteAlls++
	clear(s.records)
	return nil
}

func (s *memLocalStore) Restore(_ context.Context, kind models.Kind, records ...models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreOrder = append(s.restoreOrder, kind)
	for _, rec := range records {
		s.put(kind, rec.ID, rec.Payload)
		if rec.ID > s.nextID[kind] {
			s.nextID[kind] = rec.ID
		}
	}
	return nil
}

func (s *memLocalStore) Close() error { return nil }

// put must be called with mu held.
func (s *memLocalStore) put(kind models.Kind, id int64, payload models.Payload) {
	if s.records[kind] == nil {
		s.records[kind] = make(map[int64]models.Payload)
	}
	clean := payload.Clone()
	delete(clean, models.FieldID)
	s.records[kind][id] = clean
}

func (s *memLocalStore) seed(kind models.Kind, n int, payload func(i int) models.Payload) []int64 {
	ids := make([]int64, 0, n)
	for i := range n {
		id, _ := s.Add(context.Background(), kind, payload(i))
		ids = append(ids, id)
	}
	return ids
}

// memRemoteStore mimics the document server: documents are keyed by
// (tenant, kind, id) and listed with the server-owned id key attached.
type memRemoteStore struct {
	mu      sync.Mutex
	docs    map[string]map[models.Kind]map[int64]models.Payload
	commits int
	calls   int

	existsErr error
	listErrs  map[models.Kind]error
	commitErr error
	failAfter int // commit number (1-based) that fails with commitErr; 0 fails every commit
}

func newMemRemoteStore() *memRemoteStore {
	return &memRemoteStore{
		docs:     make(map[string]map[models.Kind]map[int64]models.Payload),
		listErrs: make(map[models.Kind]error),
	}
}

func (r *memRemoteStore) SetToken(string) {}

func (r *memRemoteStore) Ping(context.Context) error { return nil }

func (r *memRemoteStore) Get(_ context.Context, tenant string, kind models.Kind, id int64) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	doc, ok := r.docs[tenant][kind][id]
	if !ok {
		return models.Record{}, adapter.ErrNotFound
	}
	return models.Record{ID: id, Payload: r.flatten(id, doc)}, nil
}

func (r *memRemoteStore) ListAll(_ context.Context, tenant string, kind models.Kind) ([]models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if err := r.listErrs[kind]; err != nil {
		return nil, err
	}
	docs := r.docs[tenant][kind]
	out := make([]models.Record, 0, len(docs))
	for _, id := range slices.Sorted(maps.Keys(docs)) {
		out = append(out, models.Record{ID: id, Payload: r.flatten(id, docs[id])})
	}
	return out, nil
}

func (r *memRemoteStore) Set(_ context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	return r.set(tenant, kind, id, payload)
}

func (r *memRemoteStore) Update(_ context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	doc, ok := r.docs[tenant][kind][id]
	if !ok {
		return adapter.ErrNotFound
	}
	maps.Copy(doc, models.WithoutServerFields(patch))
	return nil
}

func (r *memRemoteStore) Delete(_ context.Context, tenant string, kind models.Kind, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	delete(r.docs[tenant][kind], id)
	return nil
}

func (r *memRemoteStore) ExistsAny(_ context.Context, tenant string, kind models.Kind) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return len(r.docs[tenant][kind]) > 0, nil
}

func (r *memRemoteStore) NewBatch(tenant string) adapter.Batch {
	return &memBatch{remote: r, tenant: tenant}
}

// set must be called with mu held.
func (r *memRemoteStore) set(tenant string, kind models.Kind, id int64, payload models.Payload) error {
	if models.HasIdentityMismatch(id, payload) {
		return models.ErrIdentityMismatch
	}
	if r.docs[tenant] == nil {
		r.docs[tenant] = make(map[models.Kind]map[int64]models.Payload)
	}
	if r.docs[tenant][kind] == nil {
		r.docs[tenant][kind] = make(map[int64]models.Payload)
	}
	r.docs[tenant][kind][id] = models.WithoutServerFields(payload)
	return nil
}

func (r *memRemoteStore) flatten(id int64, doc models.Payload) models.Payload {
	out := doc.Clone()
	out[models.FieldID] = id
	return out
}

func (r *memRemoteStore) seed(tenant string, kind models.Kind, ids ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		_ = r.set(tenant, kind, id, models.Payload{
			"name":               fmt.Sprintf("%s-%d", kind, id),
			models.FieldLocalID:  id,
			models.FieldSyncedAt: "2026-01-01T00:00:00Z",
		})
	}
}

func (r *memRemoteStore) count(tenant string, kind models.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs[tenant][kind])
}

func (r *memRemoteStore) doc(tenant string, kind models.Kind, id int64) (models.Payload, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[tenant][kind][id]
	return doc, ok
}

var errCommitRejected = errors.New("commit rejected")

type memBatch struct {
	remote *memRemoteStore
	tenant string
	ops    []models.BatchOp
}

func (b *memBatch) Stage(op models.BatchOp) error {
	if len(b.ops) >= adapter.BatchCeiling {
		return adapter.ErrBatchCeilingExceeded
	}
	b.ops = append(b.ops, op)
	return nil
}

func (b *memBatch) Commit(context.Context) error {
	r := b.remote
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(b.ops) == 0 {
		return nil
	}
	if r.commitErr != nil && (r.failAfter == 0 || r.failAfter == r.commits+1) {
		return r.commitErr
	}
	for _, op := range b.ops {
		switch op.Op {
		case models.BatchSet:
			if err := r.set(b.tenant, op.Kind, op.ID, op.Payload); err != nil {
				return err
			}
		case models.BatchDelete:
			delete(r.docs[b.tenant][op.Kind], op.ID)
		}
	}
	r.commits++
	b.ops = b.ops[:0]
	return nil
}

func (b *memBatch) Len() int { return len(b.ops) }

// recordingStatus collects every published status.
type recordingStatus struct {
	mu   sync.Mutex
	seen []models.SyncStatus
}

func (r *recordingStatus) observe(s models.SyncStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, s)
}

func (r *recordingStatus) all() []models.SyncStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.seen)
}
