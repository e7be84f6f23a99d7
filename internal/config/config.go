// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the remote document server. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client runtime settings (bearer token, log path, mode).
	App App `envPrefix:"APP_"`

	// Auth holds the token verification settings of the document server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for both persistence backends: the
	// server-side Postgres document store and the client-side SQLite file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC listeners of the document server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote document server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds tuning knobs of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client runtime settings.
type App struct {
	// Token is the bearer token presented to the remote document server.
	// Its "sub" claim is the tenant identifier. An empty token means no
	// signed-in user: the client runs purely on local data.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// LogPath is the file the client logger appends to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Headless runs a single bootstrap reconciliation without the status UI.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// Auth holds the settings used by the document server to verify bearer
// tokens.
type Auth struct {
	// TokenSignKey is the secret key used to verify JWT signatures.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server-side Postgres connection settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client-side embedded database settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the Postgres document store.
type DB struct {
	// DSN is the PostgreSQL Data Source Name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings of the client's embedded SQLite database.
type Local struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP listener ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote document server
	// (e.g. "https://lineage.example.org" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress, when set, is probed with the gRPC health protocol to
	// decide whether the client is online.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the per-request timeout of the HTTP client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds tuning knobs of the sync engine.
type Sync struct {
	// BatchThreshold is the number of staged writes after which a bulk
	// upload commits its batch. Must stay below the remote ceiling of 500.
	// Env: SYNC_BATCH_THRESHOLD
	BatchThreshold int `env:"BATCH_THRESHOLD"`

	// ProbeInterval is how often the connectivity probe runs.
	// Env: SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following order (later sources override
// non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
