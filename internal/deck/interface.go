package deck

import (
	"context"

	"slideforge/internal/summarizer"
)

// RenderedDocument points at a fully written deck on local disk. The file is
// transient: the pipeline that created it removes it once publishing finishes.
type RenderedDocument struct {
	FileName string
	FilePath string
}

// Renderer lays out deck content into a presentation file.
type Renderer interface {
	Render(ctx context.Context, td *summarizer.TitleAndDescription, slides []summarizer.SlideContent, ownerID string) (*RenderedDocument, error)
}
