package api

import "time"

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second

	headerRequestID = "X-Request-ID"
	contentTypeJSON = "application/json"
)

// Service paths.
const (
	PathIngest    = "/ingest"
	PathRecommend = "/recommend"
	PathHealth    = "/health"
)

// Operation names used in fallback error messages and telemetry.
const (
	OpIngest    = "ingest"
	OpRecommend = "recommend"
	OpHealth    = "health"
)
