package interfaces

import (
	"context"
	"io"
)

// IFileStorage stores attachment objects (S3).
type IFileStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (fileURL string, err error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(fileURL string) (string, bool)
}
