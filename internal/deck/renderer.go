package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"slideforge/internal/summarizer"
)

// Render writes a deck with one title slide plus one slide per SlideContent.
// The file name embeds a random id and the owner's id so concurrent runs can
// never collide in the shared upload namespace.
func (r *implRenderer) Render(ctx context.Context, td *summarizer.TitleAndDescription, slides []summarizer.SlideContent, ownerID string) (*RenderedDocument, error) {
	if err := os.MkdirAll(r.scratchDir, 0755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	fileName := fmt.Sprintf("presentation-%s-userId=%s.pptx", uuid.NewString(), ownerID)
	filePath := filepath.Join(r.scratchDir, fileName)

	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("create deck file: %w", err)
	}

	if err := writeDeck(f, td, slides); err != nil {
		f.Close()
		os.Remove(filePath)
		return nil, fmt.Errorf("serialize deck: %w", err)
	}

	// The publisher reads the file back as bytes, so it must be fully
	// flushed before we hand the path over.
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(filePath)
		return nil, fmt.Errorf("flush deck file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("close deck file: %w", err)
	}

	r.logger.Debug(ctx, "rendered %d-slide deck to %s", 1+len(slides), filePath)

	return &RenderedDocument{FileName: fileName, FilePath: filePath}, nil
}
