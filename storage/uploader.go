package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag,omitempty"`
}

// FileUploader stores exported tournament reports.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// UploadJSON encodes v with indentation and uploads it under key.
func UploadJSON(ctx context.Context, uploader FileUploader, key string, v interface{}) (*UploadResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
}
