package pipeline

import (
	"errors"
	"fmt"
)

// Stage identifies which step of the pipeline failed.
type Stage string

const (
	StageMetadata  Stage = "metadata"
	StageDuration  Stage = "duration"
	StageCaptions  Stage = "captions"
	StageSummarize Stage = "summarize"
	StageRender    Stage = "render"
	StageUpload    Stage = "upload"
	StagePersist   Stage = "persist"
)

// Precondition failures the caller may want to distinguish by identity.
var (
	ErrVideoTooLong = errors.New("video exceeds the maximum allowed duration")
	ErrNoSubtitles  = errors.New("video has no captions in the target language")
)

// Error tags a stage failure with the failing stage and the video it was
// processing. It unwraps to the underlying cause, so errors.Is works against
// the sentinels above.
type Error struct {
	Stage   Stage
	VideoID string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline stage %s (video %s): %v", e.Stage, e.VideoID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StageOf extracts the failing stage from a pipeline error.
func StageOf(err error) (Stage, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Stage, true
	}
	return "", false
}
