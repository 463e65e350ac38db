package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"slideforge/internal/captions"
	"slideforge/internal/store"
	"slideforge/internal/summarizer"
)

const deckContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Generate runs the full pipeline for one video:
// metadata -> duration check -> captions -> summarize (title and slides in
// parallel) -> render ->
// upload -> persist. No stage is retried; the first failure aborts the run
// with that stage's error, and any rendered temp file is removed on every
// exit path.
func (p *implPipeline) Generate(ctx context.Context, videoID, ownerID string) (rec *store.Record, err error) {
	startTime := time.Now()

	if p.metrics != nil {
		done := p.metrics.GenerationStarted()
		defer func() {
			stage := ""
			if s, ok := StageOf(err); ok {
				stage = string(s)
			} else if err != nil {
				stage = "unknown"
			}
			done(stage)
		}()
	}

	p.logger.Info(ctx, "Starting deck generation for video %s (owner %s)", videoID, ownerID)

	meta, err := p.videos.Fetch(ctx, videoID)
	if err != nil {
		return nil, p.fail(ctx, StageMetadata, videoID, err)
	}

	// Both precondition checks run before any model call is issued.
	if meta.DurationSeconds > p.maxDurationSeconds {
		err := fmt.Errorf("%w: %ds > %ds", ErrVideoTooLong, meta.DurationSeconds, p.maxDurationSeconds)
		return nil, p.fail(ctx, StageDuration, videoID, err)
	}
	if meta.CaptionsURL == "" {
		return nil, p.fail(ctx, StageCaptions, videoID, ErrNoSubtitles)
	}

	fragments, err := p.captions.Parse(ctx, meta.CaptionsURL)
	if err != nil {
		return nil, p.fail(ctx, StageCaptions, videoID, err)
	}
	transcript := captions.Transcript(fragments)

	// The two summarizer calls are independent; run them concurrently and
	// fail the whole run if either fails.
	var (
		td     *summarizer.TitleAndDescription
		slides []summarizer.SlideContent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		td, err = p.summarizer.SummarizeTitle(gctx, transcript)
		return err
	})
	g.Go(func() error {
		var err error
		slides, err = p.summarizer.SummarizeSlides(gctx, transcript, int(p.slideCount.Load()))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, p.fail(ctx, StageSummarize, videoID, err)
	}

	doc, err := p.renderer.Render(ctx, td, slides, ownerID)
	if err != nil {
		return nil, p.fail(ctx, StageRender, videoID, err)
	}
	// The rendered file is owned by this run; remove it no matter how the
	// rest of the pipeline ends.
	defer p.cleanupTempFile(ctx, doc.FilePath)

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		return nil, p.fail(ctx, StageRender, videoID, fmt.Errorf("read rendered deck: %w", err))
	}

	upload, err := p.objects.Upload(ctx, data, doc.FileName, deckContentType)
	if err != nil {
		return nil, p.fail(ctx, StageUpload, videoID, err)
	}

	rec = &store.Record{
		Link:        upload.URL,
		Title:       td.Title,
		Description: td.Description,
		OwnerID:     ownerID,
		FileKey:     upload.Key,
	}
	if err := p.records.Create(ctx, rec); err != nil {
		return nil, p.fail(ctx, StagePersist, videoID, err)
	}

	p.logger.Info(ctx, "Deck generated for video %s in %s: %s", videoID, time.Since(startTime), upload.URL)

	return rec, nil
}

func (p *implPipeline) fail(ctx context.Context, stage Stage, videoID string, err error) error {
	p.logger.Error(ctx, "Generation failed at stage %s for video %s: %v", stage, videoID, err)
	return &Error{Stage: stage, VideoID: videoID, Err: err}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
