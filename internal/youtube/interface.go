package youtube

import "context"

// VideoMetadata is what the pipeline needs from the metadata provider.
// DurationSeconds is 0 when the provider omitted a length. CaptionsURL is
// empty when the video has no caption track in the target language.
type VideoMetadata struct {
	DurationSeconds int
	CaptionsURL     string
}

// Client fetches video metadata from the provider.
type Client interface {
	Fetch(ctx context.Context, videoID string) (*VideoMetadata, error)
}
