// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerStorage holds the document server's storage settings.
type ServerStorage struct {
	// DSN is the Postgres connection string.
	DSN string
}

// ServerConfig is the document server's view of [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage ServerStorage
	Auth    Auth
}

// GetServerConfig builds and validates the document server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server:  cfg.Server,
		Storage: ServerStorage{DSN: cfg.Storage.DB.DSN},
		Auth:    cfg.Auth,
	}
}
