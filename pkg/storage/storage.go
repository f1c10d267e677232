package storage

import (
	"context"
	"io"
)

// Storage stores customer-supplied booking attachments (trade-in photos,
// license scans) and returns a public URL for the saved object.
type Storage interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
}

type UploadRequest struct {
	Key         string
	Reader      io.Reader
	ContentType string
	Size        int64
}

type UploadResponse struct {
	Key  string
	URL  string
	Size int64
}
