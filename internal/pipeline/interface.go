package pipeline

import (
	"context"

	"slideforge/internal/store"
)

// Pipeline runs the whole video-to-deck generation flow for one video and
// returns the persisted record. Failures carry a *pipeline.Error with the
// failing stage.
type Pipeline interface {
	Generate(ctx context.Context, videoID, ownerID string) (*store.Record, error)
}
