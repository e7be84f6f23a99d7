package validators

import (
	"context"
	"fmt"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

const (
	FieldKind     = "kind"
	FieldID       = "id"
	FieldIdentity = "identity"
	FieldOp       = "op"
	FieldOps      = "ops"
)

// DocumentValidator validates [models.BatchOp] and [models.BatchRequest]
// values. A single document request is validated as a BatchOp.
type DocumentValidator struct {
	maxOps int
}

// NewDocumentValidator returns a validator allowing at most maxOps operations
// per batch.
func NewDocumentValidator(maxOps int) Validator {
	return &DocumentValidator{maxOps: maxOps}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BatchOp:
		return v.validateOp(ctx, value, fields...)
	case *models.BatchOp:
		return v.validateOp(ctx, *value, fields...)

	case models.BatchRequest:
		return v.validateBatch(ctx, value, fields...)
	case *models.BatchRequest:
		return v.validateBatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateOp(ctx context.Context, op models.BatchOp, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOp, FieldKind, FieldID, FieldIdentity}
	}

	for _, f := range fields {
		switch f {
		case FieldOp:
			switch op.Op {
			case models.BatchSet, models.BatchUpdate, models.BatchDelete:
			default:
				return fmt.Errorf("%w: %q", ErrUnsupportedOp, op.Op)
			}
		case FieldKind:
			if !op.Kind.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownKind, op.Kind)
			}
		case FieldID:
			if op.ID <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidIdentity, op.ID)
			}
		case FieldIdentity:
			// deletes carry no payload
			if op.Op != models.BatchDelete && models.HasIdentityMismatch(op.ID, op.Payload) {
				return fmt.Errorf("%w: %s/%d", models.ErrIdentityMismatch, op.Kind, op.ID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateBatch(ctx context.Context, request models.BatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOps}
	}

	for _, f := range fields {
		switch f {
		case FieldOps:
			if len(request.Ops) == 0 {
				return ErrEmptyOps
			}
			if len(request.Ops) > v.maxOps {
				return fmt.Errorf("%w: %d > %d", ErrTooManyOps, len(request.Ops), v.maxOps)
			}
			for i, op := range request.Ops {
				if err := v.validateOp(ctx, op); err != nil {
					return fmt.Errorf("op %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
