package captions

import "context"

// Fragment is one timed-text node's text content, in document order.
type Fragment struct {
	Text string
}

// Parser fetches a timed-text payload and extracts caption fragments.
type Parser interface {
	Parse(ctx context.Context, url string) ([]Fragment, error)
}
