package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied when a source leaves the value empty.
const (
	DefaultBatchThreshold = 450
	DefaultProbeInterval  = 15 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// ClientApp holds client runtime settings.
type ClientApp struct {
	// Token is the bearer token for the remote document server.
	Token string
	// LogPath is the client log file.
	LogPath string
	// Headless disables the status UI.
	Headless bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote document server address.
	HTTPAddress string
	// GRPCAddress is the optional gRPC health endpoint.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains sync engine settings.
type ClientSync struct {
	// BatchThreshold is the bulk upload commit threshold.
	BatchThreshold int
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:    cfg.App.Token,
			LogPath:  cfg.App.LogPath,
			Headless: cfg.App.Headless,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		Sync: ClientSync{
			BatchThreshold: cfg.Sync.BatchThreshold,
			ProbeInterval:  cfg.Sync.ProbeInterval,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Sync.BatchThreshold == 0 {
		clientCfg.Sync.BatchThreshold = DefaultBatchThreshold
	}
	if clientCfg.Sync.ProbeInterval == 0 {
		clientCfg.Sync.ProbeInterval = DefaultProbeInterval
	}

	return clientCfg
}
