// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Document is a record as held by the remote document store.
type Document struct {
	Kind      Kind
	ID        int64
	Payload   Payload
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Flatten returns the wire form of d: its payload fields plus the
// server-owned id, createdAt and updatedAt keys.
func (d Document) Flatten() Payload {
	out := d.Payload.Clone()
	out[FieldID] = d.ID
	out[FieldCreatedAt] = d.CreatedAt.UTC().Format(time.RFC3339Nano)
	out[FieldUpdatedAt] = d.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return out
}

// ServerOwnedFields are overwritten by the document store and never persisted
// inside a payload.
var ServerOwnedFields = []string{FieldID, FieldCreatedAt, FieldUpdatedAt}

// WithoutServerFields returns a copy of p without [ServerOwnedFields].
func WithoutServerFields(p Payload) Payload {
	out := p.Clone()
	for _, key := range ServerOwnedFields {
		delete(out, key)
	}
	return out
}
