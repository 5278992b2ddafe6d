package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the backend holding thesis documents and QR code images.
// Implementations: MinIO/S3-compatible storage and a local mock served over
// HTTP for development.
type ObjectStore interface {
	// Put uploads an object under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// PresignGet generates a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Exists checks if an object exists and returns its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes an object.
	Delete(ctx context.Context, key string) error
}
