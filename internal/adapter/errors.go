package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrBatchCeilingExceeded is returned by Batch.Stage once the batch
	// already holds BatchCeiling operations.
	ErrBatchCeilingExceeded = errors.New("batch ceiling exceeded")

	// ErrNoTenant is returned when a remote call is made without a tenant.
	ErrNoTenant = errors.New("no tenant")

	// ErrUnhealthy is returned by probers when the remote answers but
	// reports itself as not serving.
	ErrUnhealthy = errors.New("remote store is not serving")
)
