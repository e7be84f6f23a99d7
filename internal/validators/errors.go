package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownKind     = errors.New("unknown entity kind")
	ErrInvalidIdentity = errors.New("document id must be positive")
	ErrUnsupportedOp   = errors.New("unsupported batch operation")
	ErrEmptyOps        = errors.New("no batch operations provided")
	ErrTooManyOps      = errors.New("batch exceeds the operation ceiling")
)
