package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a list of KEY=value pairs in the form
// returned by os.Environ. Variable names come from the `env` and `envPrefix`
// tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig, environ []string) error {
	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
