package captions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"slideforge/internal/logger"
)

func TestExtractFragments(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []Fragment
		wantErr bool
	}{
		{
			name: "basic transcript",
			payload: `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">hello world</text>
  <text start="2.5" dur="3.0">second line</text>
</transcript>`,
			want: []Fragment{{Text: "hello world"}, {Text: "second line"}},
		},
		{
			name:    "empty text node yields empty string",
			payload: `<transcript><text start="0" dur="1"/><text>after</text></transcript>`,
			want:    []Fragment{{Text: ""}, {Text: "after"}},
		},
		{
			name:    "embedded entities decoded",
			payload: `<transcript><text>Tom &amp; Jerry&#39;s</text></transcript>`,
			want:    []Fragment{{Text: "Tom & Jerry's"}},
		},
		{
			name:    "html entity tolerated",
			payload: `<transcript><text>a&nbsp;b</text></transcript>`,
			want:    []Fragment{{Text: "a b"}},
		},
		{
			name:    "text elements under nested wrappers",
			payload: `<timedtext><body><text>nested</text></body></timedtext>`,
			want:    []Fragment{{Text: "nested"}},
		},
		{
			name:    "no elements at all",
			payload: `just plain text`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractFragments(strings.NewReader(tt.payload))
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractFragments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("fragments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranscript(t *testing.T) {
	frags := []Fragment{{Text: "lecture on"}, {Text: ""}, {Text: "photosynthesis"}}
	got := Transcript(frags)
	want := "lecture on  photosynthesis"
	if got != want {
		t.Errorf("Transcript() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript><text>one</text><text>two</text></transcript>`))
	}))
	defer server.Close()

	p := New(5*time.Second, logger.New("error"))
	frags, err := p.Parse(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(frags) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(frags))
	}
	if got := Transcript(frags); got != "one two" {
		t.Errorf("Transcript() = %q, want %q", got, "one two")
	}
}

func TestParseFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := New(5*time.Second, logger.New("error"))
	if _, err := p.Parse(context.Background(), server.URL); err == nil {
		t.Error("Parse() should fail on non-200 status")
	}
}
