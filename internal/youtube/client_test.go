package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slideforge/internal/logger"
)

func newTestClient(serverURL string) *implClient {
	return &implClient{
		baseURL:        serverURL,
		apiHost:        "yt-api.p.rapidapi.com",
		apiKey:         "test-key",
		targetLanguage: "pt",
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		logger:         logger.New("error"),
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantDuration int
		wantCaptions string
	}{
		{
			name: "target track present",
			body: `{
				"lengthSeconds": 613,
				"subtitles": {"subtitles": [
					{"languageCode": "en", "url": "https://captions.example/en"},
					{"languageCode": "pt", "url": "https://captions.example/pt"}
				]}
			}`,
			wantDuration: 613,
			wantCaptions: "https://captions.example/pt",
		},
		{
			name: "quoted duration",
			body: `{"lengthSeconds": "902", "subtitles": {"subtitles": []}}`,

			wantDuration: 902,
			wantCaptions: "",
		},
		{
			name:         "no target language track",
			body:         `{"lengthSeconds": 100, "subtitles": {"subtitles": [{"languageCode": "en", "url": "https://captions.example/en"}]}}`,
			wantDuration: 100,
			wantCaptions: "",
		},
		{
			name:         "missing duration",
			body:         `{"subtitles": {"subtitles": [{"languageCode": "pt", "url": "https://captions.example/pt"}]}}`,
			wantDuration: 0,
			wantCaptions: "https://captions.example/pt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/video/info" {
					t.Errorf("path = %q, want /video/info", r.URL.Path)
				}
				if r.URL.Query().Get("id") != "abc123" {
					t.Errorf("id = %q, want abc123", r.URL.Query().Get("id"))
				}
				if r.Header.Get("x-rapidapi-key") != "test-key" {
					t.Errorf("missing rapidapi key header")
				}
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			meta, err := newTestClient(server.URL).Fetch(context.Background(), "abc123")
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if meta.DurationSeconds != tt.wantDuration {
				t.Errorf("DurationSeconds = %d, want %d", meta.DurationSeconds, tt.wantDuration)
			}
			if meta.CaptionsURL != tt.wantCaptions {
				t.Errorf("CaptionsURL = %q, want %q", meta.CaptionsURL, tt.wantCaptions)
			}
		})
	}
}

func TestFetchProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Fetch(context.Background(), "abc123"); err == nil {
		t.Error("Fetch() should fail on non-200 status")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Fetch(context.Background(), "abc123"); err == nil {
		t.Error("Fetch() should fail on malformed body")
	}
}
