// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks document server input before it reaches the
// repository.
//
// A Validator inspects one value and may be restricted to named fields, so a
// caller can validate only what an operation needs:
//
//	v.Validate(ctx, models.BatchOp{Kind: kind, ID: id}, validators.FieldKind, validators.FieldID)
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
