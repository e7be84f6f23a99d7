// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the remote document store.
//
// The primary abstraction is [RemoteStore], a tenant-scoped document API
// keyed by (kind, id), with [Batch] for atomic multi-document writes. The
// package ships an HTTP/REST implementation ([NewHTTPRemoteStore]) plus the
// reachability probers ([NewHTTPProber], [NewGRPCProber]) that feed the
// connectivity monitor.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// BatchCeiling is the hard limit of operations a single batch may carry.
const BatchCeiling = 500

// RemoteStore is the multi-tenant document store. Every document lives at
// tenant/kind/id, id being the identity assigned by the local store.
type RemoteStore interface {
	// SetToken sets the bearer token attached to every request.
	SetToken(token string)

	// Ping checks that the remote store is reachable.
	Ping(ctx context.Context) error

	// Get returns one document. The payload carries the remote metadata keys.
	Get(ctx context.Context, tenant string, kind models.Kind, id int64) (models.Record, error)

	// ListAll returns every document of kind for tenant.
	ListAll(ctx context.Context, tenant string, kind models.Kind) ([]models.Record, error)

	// Set creates or replaces a document.
	Set(ctx context.Context, tenant string, kind models.Kind, id int64, payload models.Payload) error

	// Update merges patch into an existing document.
	Update(ctx context.Context, tenant string, kind models.Kind, id int64, patch models.Payload) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, tenant string, kind models.Kind, id int64) error

	// ExistsAny reports whether tenant holds at least one document of kind.
	ExistsAny(ctx context.Context, tenant string, kind models.Kind) (bool, error)

	// NewBatch starts an empty write batch for tenant.
	NewBatch(tenant string) Batch
}

// Batch stages writes and applies them atomically on Commit.
type Batch interface {
	// Stage appends op. It fails with [ErrBatchCeilingExceeded] once the
	// batch holds BatchCeiling operations.
	Stage(op models.BatchOp) error

	// Commit applies every staged op atomically and empties the batch.
	Commit(ctx context.Context) error

	// Len returns the number of staged ops.
	Len() int
}

// Prober answers whether the remote store is currently reachable.
type Prober interface {
	Probe(ctx context.Context) error
}
