package config

import "time"

const (
	envBaseURL      = "COACH_BASE_URL"
	envTimeout      = "COACH_TIMEOUT"
	envTeam         = "COACH_TEAM"
	envSeason       = "COACH_SEASON"
	envLast         = "COACH_LAST"
	envOpponent     = "COACH_OPPONENT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// The coach service runs next to the client during development.
	defaultBaseURL     = "http://localhost:8000"
	defaultTimeout     = 30 * Duration(time.Second)
	defaultTeam        = "BOS"
	defaultSeason      = "2024-25"
	defaultLast        = 10
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-coach-client"
)

// dotEnvFile is read on Load when present.
var dotEnvFile = ".env"
