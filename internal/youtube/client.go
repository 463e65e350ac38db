package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// videoInfoResponse mirrors the subset of the provider payload we consume.
type videoInfoResponse struct {
	LengthSeconds flexInt `json:"lengthSeconds"`
	Subtitles     struct {
		Subtitles []captionTrack `json:"subtitles"`
	} `json:"subtitles"`
}

type captionTrack struct {
	LanguageCode string `json:"languageCode"`
	URL          string `json:"url"`
}

// flexInt tolerates the provider sending lengthSeconds as either a bare
// number or a quoted string, which varies between API versions.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("parse lengthSeconds %q: %w", s, err)
	}
	*f = flexInt(n)
	return nil
}

// Fetch retrieves duration and the target-language captions URL for videoID.
func (c *implClient) Fetch(ctx context.Context, videoID string) (*VideoMetadata, error) {
	endpoint := c.baseURL + "/video/info?id=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build metadata request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata provider returned status %d", resp.StatusCode)
	}

	var info videoInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode metadata response: %w", err)
	}

	meta := &VideoMetadata{DurationSeconds: int(info.LengthSeconds)}
	for _, track := range info.Subtitles.Subtitles {
		if track.LanguageCode == c.targetLanguage {
			meta.CaptionsURL = track.URL
			break
		}
	}

	c.logger.Debug(ctx, "video %s: duration=%ds captions=%t", videoID, meta.DurationSeconds, meta.CaptionsURL != "")

	return meta, nil
}
