package summarizer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeTitleAndDescription(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *TitleAndDescription
		wantErr bool
	}{
		{
			name: "well formed",
			raw:  `{"title": "Photosynthesis Explained", "description": "How plants turn light into energy."}`,
			want: &TitleAndDescription{Title: "Photosynthesis Explained", Description: "How plants turn light into energy."},
		},
		{
			name:    "missing title",
			raw:     `{"description": "only a description"}`,
			wantErr: true,
		},
		{
			name:    "missing description",
			raw:     `{"title": "only a title"}`,
			wantErr: true,
		},
		{
			name:    "wrong field type",
			raw:     `{"title": 42, "description": "x"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `this is prose, not JSON`,
			wantErr: true,
		},
		{
			name: "empty strings are structurally valid",
			raw:  `{"title": "", "description": ""}`,
			want: &TitleAndDescription{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeTitleAndDescription([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeTitleAndDescription() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSlides(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "correct count",
			raw:  `{"slides": [{"title": "a", "content": ["x"]}, {"title": "b", "content": []}]}`,
			want: 2,
		},
		{
			name:    "wrong count",
			raw:     `{"slides": [{"title": "a", "content": ["x"]}]}`,
			want:    2,
			wantErr: true,
		},
		{
			name:    "missing envelope field",
			raw:     `{"decks": []}`,
			want:    0,
			wantErr: true,
		},
		{
			name:    "slide missing content",
			raw:     `{"slides": [{"title": "a"}]}`,
			want:    1,
			wantErr: true,
		},
		{
			name:    "slide missing title",
			raw:     `{"slides": [{"content": ["x"]}]}`,
			want:    1,
			wantErr: true,
		},
		{
			name:    "content has wrong element type",
			raw:     `{"slides": [{"title": "a", "content": [1, 2]}]}`,
			want:    1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSlides([]byte(tt.raw), tt.want)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeSlides() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.want {
				t.Errorf("len(slides) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

// A validated slide set must pass through unchanged, bullet order included.
func TestDecodeSlidesRoundTrip(t *testing.T) {
	in := []SlideContent{
		{Title: "Light reactions", Content: []string{"thylakoid membrane", "ATP and NADPH", "water is split"}},
		{Title: "Calvin cycle", Content: []string{"carbon fixation", "G3P production"}},
	}

	raw, err := json.Marshal(map[string][]SlideContent{"slides": in})
	if err != nil {
		t.Fatal(err)
	}

	got, err := decodeSlides(raw, len(in))
	if err != nil {
		t.Fatalf("decodeSlides() error = %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
