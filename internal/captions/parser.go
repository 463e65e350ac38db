package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Parse fetches the payload at url and returns one Fragment per <text>
// element, in document order. A <text> element with no content yields an
// empty-string fragment, never a missing one.
func (p *implParser) Parse(ctx context.Context, url string) ([]Fragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build captions request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("captions fetch returned status %d", resp.StatusCode)
	}

	fragments, err := extractFragments(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse timed-text payload: %w", err)
	}

	p.logger.Debug(ctx, "parsed %d caption fragments from %s", len(fragments), url)

	return fragments, nil
}

// extractFragments walks the token stream rather than unmarshalling against a
// fixed document shape, so <text> elements are found at any depth regardless
// of the root element the provider uses.
func extractFragments(r io.Reader) ([]Fragment, error) {
	decoder := xml.NewDecoder(r)
	// Caption payloads routinely carry HTML entities like &nbsp;.
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	var fragments []Fragment
	sawElement := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if start.Name.Local != "text" {
			continue
		}

		var node struct {
			Text string `xml:",chardata"`
		}
		if err := decoder.DecodeElement(&node, &start); err != nil {
			return nil, err
		}
		fragments = append(fragments, Fragment{Text: node.Text})
	}

	if !sawElement {
		return nil, fmt.Errorf("payload contains no XML elements")
	}

	return fragments, nil
}

// Transcript joins fragments with single spaces into the flat transcript
// consumed by the summarizer.
func Transcript(fragments []Fragment) string {
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}
