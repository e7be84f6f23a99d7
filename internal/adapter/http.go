package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/config"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const (
	pingPath       = "/api/ping"
	collectionPath = "/api/tenants/{tenant}/{kind}"
	documentPath   = "/api/tenants/{tenant}/{kind}/{id}"
	batchPath      = "/api/tenants/{tenant}/batch"
	traceIDHeader  = "X-Trace-ID"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the HTTP/REST implementation of [RemoteStore].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// configured request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString()).
		Get(pingPath)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Record, error) {
	if tenant == "" {
		return models.Record{}, ErrNoTenant
	}

	var payload models.Payload
	resp, err := h.authedRequest(ctx).
		SetPathParams(documentParams(tenant, kind, id)).
		SetResult(&payload).
		Get(documentPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return models.Record{ID: id, Payload: payload}, nil
}

func (h *httpRemoteStore) ListAll(ctx context.Context, tenant string, kind models.Kind) ([]models.Record, error) {
	if tenant == "" {
		return nil, ErrNoTenant
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(collectionParams(tenant, kind)).
		Get(collectionPath)
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Payload
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode documents of %s: %w", kind, err)
	}

	records := make([]models.Record, 0, len(docs))
	for _, doc := range docs {
		id, ok := models.IdentityOf(doc)
		if !ok {
			h.logger.Warn().
				Str("func", "httpRemoteStore.ListAll").
				Str("kind", kind.String()).
				Msg("skipping document without identity")
			continue
		}
		records = append(records, models.Record{ID: id, Payload: doc})
	}

	return records, nil
}

func (h *httpRemoteStore) Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error {
	if tenant == "" {
		return ErrNoTenant
	}
	if models.HasIdentityMismatch(id, payload) {
		return fmt.Errorf("%w: %s/%d", models.ErrIdentityMismatch, kind, id)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(documentParams(tenant, kind, id)).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(documentPath)
	if err != nil {
		return fmt.Errorf("set document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error {
	if tenant == "" {
		return ErrNoTenant
	}
	if models.HasIdentityMismatch(id, patch) {
		return fmt.Errorf("%w: %s/%d", models.ErrIdentityMismatch, kind, id)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(documentParams(tenant, kind, id)).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(documentPath)
	if err != nil {
		return fmt.Errorf("update document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error {
	if tenant == "" {
		return ErrNoTenant
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(documentParams(tenant, kind, id)).
		Delete(documentPath)
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) ExistsAny(ctx context.Context, tenant string, kind models.Kind) (bool, error) {
	if tenant == "" {
		return false, ErrNoTenant
	}

	var result models.ExistsResponse
	resp, err := h.authedRequest(ctx).
		SetPathParams(collectionParams(tenant, kind)).
		SetQueryParam("exists", "1").
		SetResult(&result).
		Get(collectionPath)
	if err != nil {
		return false, fmt.Errorf("exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Exists, nil
}

func (h *httpRemoteStore) NewBatch(tenant string) Batch {
	return &httpBatch{store: h, tenant: tenant, ops: make([]models.BatchOp, 0, 64)}
}

func (h *httpRemoteStore) commit(ctx context.Context, tenant string, ops []models.BatchOp) error {
	if tenant == "" {
		return ErrNoTenant
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("tenant", tenant).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Ops: ops, Length: len(ops)}).
		Post(batchPath)
	if err != nil {
		return fmt.Errorf("batch commit request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func collectionParams(tenant string, kind models.Kind) map[string]string {
	return map[string]string{"tenant": tenant, "kind": kind.String()}
}

func documentParams(tenant string, kind models.Kind, id int64) map[string]string {
	return map[string]string{"tenant": tenant, "kind": kind.String(), "id": strconv.FormatInt(id, 10)}
}

// httpBatch accumulates ops in memory and posts them in one request.
type httpBatch struct {
	store  *httpRemoteStore
	tenant string

	mu  sync.Mutex
	ops []models.BatchOp
}

func (b *httpBatch) Stage(op models.BatchOp) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.ops) >= BatchCeiling {
		return fmt.Errorf("%w: %d ops staged", ErrBatchCeilingExceeded, len(b.ops))
	}
	if op.Op != models.BatchDelete && models.HasIdentityMismatch(op.ID, op.Payload) {
		return fmt.Errorf("%w: %s/%d", models.ErrIdentityMismatch, op.Kind, op.ID)
	}

	b.ops = append(b.ops, op)
	return nil
}

// Commit posts the staged ops. An empty batch commits without a request. On
// failure the ops stay staged.
func (b *httpBatch) Commit(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.ops) == 0 {
		return nil
	}

	if err := b.store.commit(ctx, b.tenant, b.ops); err != nil {
		return err
	}

	b.ops = b.ops[:0]
	return nil
}

func (b *httpBatch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ops)
}
