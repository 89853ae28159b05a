package cmd

import (
	apphttp "tubetrans/internal/http"
	"tubetrans/models"
	"tubetrans/services"
)

// newAIClient builds the backend for cfg. Tests replace it.
var newAIClient = func(cfg *models.Config) services.AIClient {
	httpClient := apphttp.NewPooledClient(apphttp.DefaultClientConfig().WithTimeout(cfg.HTTPTimeout))
	return services.NewGeminiClient(services.GeminiConfigFrom(cfg, httpClient))
}

func newSession(cfg *models.Config) *services.Session {
	return services.NewSession(services.NewTranscriptOrchestrator(newAIClient(cfg)))
}
