package storage

import "context"

// UploadResult is what the pipeline needs back from the object store: a
// public link for the record and the store-assigned key for later deletion.
type UploadResult struct {
	URL string
	Key string
}

// ObjectStore uploads rendered decks and deletes them by key.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, fileName, contentType string) (*UploadResult, error)
	Remove(ctx context.Context, key string) error
}
