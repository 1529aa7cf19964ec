package config

// ServiceConfig controls how the client reaches the coach service.
type ServiceConfig struct {
	BaseURL string
	Timeout Duration
}

func loadService() ServiceConfig {
	return ServiceConfig{
		BaseURL: envOrDefault(envBaseURL, defaultBaseURL),
		Timeout: durationEnvOrDefault(envTimeout, defaultTimeout),
	}
}
