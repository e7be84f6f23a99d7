package client

import "errors"

var (
	// ErrInvalidToken is returned by NewApp when the configured token has no
	// readable tenant subject.
	ErrInvalidToken = errors.New("configured token is not a valid JWT")

	// ErrBootstrapFailed is returned by a headless run whose bootstrap sync
	// ended in the ERROR scenario.
	ErrBootstrapFailed = errors.New("bootstrap sync failed")
)
