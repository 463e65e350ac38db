package summarizer

import (
	"sync"
	"time"

	"slideforge/internal/logger"
)

type implSummarizer struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	// Title and slide requests run concurrently, so key rotation is locked.
	mu         sync.Mutex
	currentKey int
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, timeout time.Duration, log logger.Logger) Summarizer {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &implSummarizer{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}
