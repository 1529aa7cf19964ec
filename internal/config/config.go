package config

import "fmt"

// Config holds runtime configuration for the coach client.
type Config struct {
	Service  ServiceConfig
	Defaults FormDefaults
	Log      LogConfig
	Metrics  MetricsConfig
}

// Load reads configuration from an optional .env file and environment variables with sensible defaults.
// Variables already present in the environment win over the .env file. A .env that exists but
// cannot be parsed is an error.
func Load() (Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	return Config{
		Service:  loadService(),
		Defaults: loadDefaults(),
		Log:      loadLog(),
		Metrics:  loadMetrics(),
	}, nil
}
