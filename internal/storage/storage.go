package storage

import (
	"bytes"
	"context"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"
)

// Upload pushes data into the bucket under fileName and returns the public
// URL plus the store-assigned key. An upload that yields no usable URL is an
// error, never an empty result.
func (s *implStore) Upload(ctx context.Context, data []byte, fileName, contentType string) (*UploadResult, error) {
	resp, err := s.client.UploadFile(s.bucket, fileName, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", fileName, err)
	}

	key := resp.Key
	if key == "" {
		key = s.bucket + "/" + fileName
	}

	public := s.client.GetPublicUrl(s.bucket, fileName)
	if public.SignedURL == "" {
		return nil, fmt.Errorf("store returned no public URL for %s", fileName)
	}

	s.logger.Debug(ctx, "uploaded %s (%d bytes) key=%s", fileName, len(data), key)

	return &UploadResult{URL: public.SignedURL, Key: key}, nil
}

// Remove deletes an object by the key captured at upload time. The key is
// "bucket/path"; strip the bucket prefix before handing it to the store.
func (s *implStore) Remove(ctx context.Context, key string) error {
	path := key
	if prefix := s.bucket + "/"; len(key) > len(prefix) && key[:len(prefix)] == prefix {
		path = key[len(prefix):]
	}

	if _, err := s.client.RemoveFile(s.bucket, []string{path}); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	s.logger.Debug(ctx, "removed object %s", key)

	return nil
}
