// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the published state of the sync engine.
// An empty Error means no error.
type SyncStatus struct {
	IsSyncing    bool       `json:"isSyncing"`
	LastSyncTime *time.Time `json:"lastSyncTime"`
	Error        string     `json:"error,omitempty"`
	IsOnline     bool       `json:"isOnline"`
}

// StatusPatch is merged into SyncStatus by the broadcaster. Nil fields are
// left untouched; a non-nil Error pointing at "" clears the error.
type StatusPatch struct {
	IsSyncing    *bool
	LastSyncTime *time.Time
	Error        *string
}

// SyncingPatch marks the start of a sync pass and clears any previous error.
func SyncingPatch() StatusPatch {
	syncing := true
	noError := ""
	return StatusPatch{IsSyncing: &syncing, Error: &noError}
}

// SyncedPatch marks a successful end of a sync pass at t.
func SyncedPatch(t time.Time) StatusPatch {
	syncing := false
	return StatusPatch{IsSyncing: &syncing, LastSyncTime: &t}
}

// FailedPatch marks a failed sync pass.
func FailedPatch(err error) StatusPatch {
	syncing := false
	msg := err.Error()
	return StatusPatch{IsSyncing: &syncing, Error: &msg}
}

// Apply merges p into s and returns the result.
func (p StatusPatch) Apply(s SyncStatus) SyncStatus {
	if p.IsSyncing != nil {
		s.IsSyncing = *p.IsSyncing
	}
	if p.LastSyncTime != nil {
		t := *p.LastSyncTime
		s.LastSyncTime = &t
	}
	if p.Error != nil {
		s.Error = *p.Error
	}
	return s
}
