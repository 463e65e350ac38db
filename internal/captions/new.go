package captions

import (
	"net/http"
	"time"

	"slideforge/internal/logger"
)

type implParser struct {
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Parser that fetches timed-text XML over HTTP.
func New(timeout time.Duration, log logger.Logger) Parser {
	return &implParser{
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}
