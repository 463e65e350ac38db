package pipeline

import (
	"sync/atomic"

	"slideforge/internal/captions"
	"slideforge/internal/deck"
	"slideforge/internal/logger"
	"slideforge/internal/metrics"
	"slideforge/internal/storage"
	"slideforge/internal/store"
	"slideforge/internal/summarizer"
	"slideforge/internal/youtube"
)

type implPipeline struct {
	videos     youtube.Client
	captions   captions.Parser
	summarizer summarizer.Summarizer
	renderer   deck.Renderer
	objects    storage.ObjectStore
	records    store.Repository
	metrics    *metrics.Metrics // may be nil
	logger     logger.Logger

	maxDurationSeconds int
	slideCount         atomic.Int64 // hot-reloadable
}

// New creates a Pipeline. met may be nil to disable metric recording.
func New(
	videos youtube.Client,
	caps captions.Parser,
	summ summarizer.Summarizer,
	renderer deck.Renderer,
	objects storage.ObjectStore,
	records store.Repository,
	met *metrics.Metrics,
	log logger.Logger,
	maxDurationSeconds, slideCount int,
) Pipeline {
	p := &implPipeline{
		videos:             videos,
		captions:           caps,
		summarizer:         summ,
		renderer:           renderer,
		objects:            objects,
		records:            records,
		metrics:            met,
		logger:             log,
		maxDurationSeconds: maxDurationSeconds,
	}
	p.slideCount.Store(int64(slideCount))
	return p
}

// SetSlideCount updates the target slide count for subsequent runs.
func (p *implPipeline) SetSlideCount(n int) {
	if n > 0 {
		p.slideCount.Store(int64(n))
	}
}
