package service

import (
	"errors"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/validators"
)

// Sync pass failures. The orchestrator wraps the underlying cause with one of
// these so the published error names the failed stage.
var (
	ErrLocalRead   = errors.New("local read failed")
	ErrLocalWrite  = errors.New("local write failed")
	ErrRemoteProbe = errors.New("remote existence probe failed")
	ErrUpload      = errors.New("bulk upload failed")
	ErrDownload    = errors.New("bulk download failed")
)

// Document server validation errors.
var (
	ErrUnknownKind             = validators.ErrUnknownKind
	ErrInvalidIdentity         = validators.ErrInvalidIdentity
	ErrUnsupportedBatchOp      = validators.ErrUnsupportedOp
	ErrValidationNoTenant      = errors.New("no tenant was given")
	ErrValidationNoOps         = validators.ErrEmptyOps
	ErrValidationTooManyOps    = validators.ErrTooManyOps
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
