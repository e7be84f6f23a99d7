// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// maxBatchThreshold is one below the remote store's hard batch ceiling.
const maxBatchThreshold = 499

// validate checks that the final merged [StructuredConfig] can be parsed into
// any of the views. Source-level checks live in the views themselves.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.BatchThreshold < 0 || cfg.Sync.ProbeInterval < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.BatchThreshold <= 0 || cfg.Sync.BatchThreshold > maxBatchThreshold {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
