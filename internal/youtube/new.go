package youtube

import (
	"net/http"
	"time"

	"slideforge/internal/logger"
)

type implClient struct {
	baseURL        string
	apiHost        string
	apiKey         string
	targetLanguage string
	httpClient     *http.Client
	logger         logger.Logger
}

// New creates a Client backed by the RapidAPI yt-api provider.
func New(apiHost, apiKey, targetLanguage string, timeout time.Duration, log logger.Logger) Client {
	return &implClient{
		baseURL:        "https://" + apiHost,
		apiHost:        apiHost,
		apiKey:         apiKey,
		targetLanguage: targetLanguage,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         log,
	}
}
