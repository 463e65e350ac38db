package storage

import (
	storage_go "github.com/supabase-community/storage-go"

	"slideforge/internal/logger"
)

type implStore struct {
	client *storage_go.Client
	bucket string
	logger logger.Logger
}

// New creates an ObjectStore backed by a Supabase storage bucket.
func New(projectURL, serviceKey, bucket string, log logger.Logger) ObjectStore {
	client := storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil)
	return &implStore{
		client: client,
		bucket: bucket,
		logger: log,
	}
}
