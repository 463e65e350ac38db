package deck

import (
	"slideforge/internal/logger"
)

type implRenderer struct {
	scratchDir string
	logger     logger.Logger
}

// New creates a Renderer that writes decks into scratchDir.
func New(scratchDir string, log logger.Logger) Renderer {
	return &implRenderer{
		scratchDir: scratchDir,
		logger:     log,
	}
}
