package summarizer

import (
	"encoding/json"
	"fmt"
)

// Pointer fields distinguish "absent" from "zero value" so missing required
// fields are rejected instead of silently turning into empty data.
type titleEnvelope struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type slidesEnvelope struct {
	Slides []slideEnvelope `json:"slides"`
}

type slideEnvelope struct {
	Title   *string   `json:"title"`
	Content *[]string `json:"content"`
}

func decodeTitleAndDescription(raw []byte) (*TitleAndDescription, error) {
	var env titleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if env.Title == nil {
		return nil, fmt.Errorf("response missing required field %q", "title")
	}
	if env.Description == nil {
		return nil, fmt.Errorf("response missing required field %q", "description")
	}

	return &TitleAndDescription{Title: *env.Title, Description: *env.Description}, nil
}

func decodeSlides(raw []byte, want int) ([]SlideContent, error) {
	var env slidesEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if env.Slides == nil {
		return nil, fmt.Errorf("response missing required field %q", "slides")
	}
	if len(env.Slides) != want {
		return nil, fmt.Errorf("got %d slides, want %d", len(env.Slides), want)
	}

	slides := make([]SlideContent, len(env.Slides))
	for i, s := range env.Slides {
		if s.Title == nil {
			return nil, fmt.Errorf("slide %d missing required field %q", i, "title")
		}
		if s.Content == nil {
			return nil, fmt.Errorf("slide %d missing required field %q", i, "content")
		}
		slides[i] = SlideContent{Title: *s.Title, Content: *s.Content}
	}

	return slides, nil
}
