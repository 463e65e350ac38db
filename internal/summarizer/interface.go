package summarizer

import "context"

// TitleAndDescription is the deck's cover copy. The word limits (title <= 20
// words, description <= 35 words) are instructed to the model, not enforced
// here.
type TitleAndDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SlideContent is one content slide: a title plus up to four bullet strings.
type SlideContent struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Summarizer turns a transcript into structured deck content via
// schema-constrained model calls. The two operations are independent and
// safe to run concurrently.
type Summarizer interface {
	SummarizeTitle(ctx context.Context, transcript string) (*TitleAndDescription, error)
	SummarizeSlides(ctx context.Context, transcript string, slideCount int) ([]SlideContent, error)
}
