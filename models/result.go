// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Scenario is the outcome of a bootstrap reconciliation.
type Scenario string

const (
	ScenarioNoUser     Scenario = "NO_USER"
	ScenarioFresh      Scenario = "FRESH"
	ScenarioUploaded   Scenario = "UPLOADED"
	ScenarioDownloaded Scenario = "DOWNLOADED"
	ScenarioError      Scenario = "ERROR"
)

// SyncResult is returned by the orchestrator. Data holds the uploaded or
// restored snapshot; Err is set only for ScenarioError.
type SyncResult struct {
	Status Scenario
	Data   Snapshot
	Err    error
}
