package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const titleSystemPrompt = "You are a helpful assistant designed to generate titles and descriptions. You output JSON conforming to the provided schema."

const titlePromptTemplate = `Generate a title and description for a slide presentation based on the following transcription.
Requirements:
- Title should be fewer than 20 words
- Description should be fewer than 35 words
- Focus on content rather than speaker

Transcript: %s`

const slidesSystemPrompt = "You are a helpful assistant designed to convert text into objects. You output JSON based on a schema I provide."

const slidesPromptTemplate = `Condense and tidy up the following text to make it suitable for a slide presentation.
Transform it into an array of objects. I have provided the schema for the output.
Make sure that the content array is no longer than 4 items, and no content string should exceed 170 characters.
The length of the array should be %d
The text to process is as follows: %s`

var titleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
	},
	Required: []string{"title", "description"},
}

var slidesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"slides": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {Type: genai.TypeString},
					"content": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"title", "content"},
			},
		},
	},
	Required: []string{"slides"},
}

// SummarizeTitle produces the deck's title and description from a transcript.
func (s *implSummarizer) SummarizeTitle(ctx context.Context, transcript string) (*TitleAndDescription, error) {
	prompt := fmt.Sprintf(titlePromptTemplate, transcript)

	raw, err := s.generate(ctx, titleSystemPrompt, prompt, titleSchema)
	if err != nil {
		return nil, fmt.Errorf("generate title and description: %w", err)
	}

	result, err := decodeTitleAndDescription([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("validate title and description: %w", err)
	}

	return result, nil
}

// SummarizeSlides produces exactly slideCount content slides from a transcript.
func (s *implSummarizer) SummarizeSlides(ctx context.Context, transcript string, slideCount int) ([]SlideContent, error) {
	prompt := fmt.Sprintf(slidesPromptTemplate, slideCount, transcript)

	raw, err := s.generate(ctx, slidesSystemPrompt, prompt, slidesSchema)
	if err != nil {
		return nil, fmt.Errorf("generate slides: %w", err)
	}

	slides, err := decodeSlides([]byte(raw), slideCount)
	if err != nil {
		return nil, fmt.Errorf("validate slides: %w", err)
	}

	return slides, nil
}

// generate sends one schema-constrained request to Gemini and returns the raw
// JSON text of the response. Rotates API keys on 429 / quota errors.
func (s *implSummarizer) generate(ctx context.Context, system, prompt string, schema *genai.Schema) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) activeKey() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

// rotateKey advances past the failed key. The index guard keeps two
// concurrent requests from skipping a key the other already rotated away.
func (s *implSummarizer) rotateKey(failedIdx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == failedIdx {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}
