// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Remote-only metadata keys. The remote adapter attaches them to every
// document; they never re-enter the local store.
const (
	FieldID        = "id"
	FieldLocalID   = "localId"
	FieldSyncedAt  = "syncedAt"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldUserID    = "userId"
)

var remoteMetadataFields = []string{
	FieldID,
	FieldLocalID,
	FieldSyncedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
}

// Payload holds the domain fields of a record. The sync engine never looks
// inside it apart from the metadata keys above.
type Payload map[string]any

// Record is one entity: its identity plus an opaque payload. The identity is
// assigned by the local store and used unmodified as the remote document key.
type Record struct {
	ID      int64   `json:"id"`
	Payload Payload `json:"payload"`
}

// Clone returns a shallow copy of p. A nil payload clones to an empty one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	maps.Copy(out, p)
	return out
}

// StripRemoteMetadata returns a copy of p without the remote-only metadata keys.
func StripRemoteMetadata(p Payload) Payload {
	out := p.Clone()
	for _, key := range remoteMetadataFields {
		delete(out, key)
	}
	return out
}

// IdentityOf returns the identity p claims for itself through the id or
// localId keys. ok is false when p carries neither.
func IdentityOf(p Payload) (id int64, ok bool) {
	for _, key := range []string{FieldLocalID, FieldID} {
		v, found := p[key]
		if !found || v == nil {
			continue
		}
		if n, isNum := asInt64(v); isNum {
			return n, true
		}
	}
	return 0, false
}

// HasIdentityMismatch reports whether p carries an identity that differs from id.
func HasIdentityMismatch(id int64, p Payload) bool {
	for _, key := range []string{FieldLocalID, FieldID} {
		v, found := p[key]
		if !found || v == nil {
			continue
		}
		n, isNum := asInt64(v)
		if !isNum || n != id {
			return true
		}
	}
	return false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case float32:
		if n != float32(int64(n)) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
