package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// MockStore implements ObjectStore on the local filesystem.
// This is for demo/testing without a MinIO or S3 deployment; objects are
// served back through the portal's own HTTP download endpoint.
type MockStore struct {
	baseURL    string // server URL (e.g. "http://localhost:8080")
	uploadsDir string // local directory for stored objects
}

// NewMockStore creates a filesystem-backed store rooted at uploadsDir.
func NewMockStore(baseURL, uploadsDir string) (*MockStore, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &MockStore{
		baseURL:    baseURL,
		uploadsDir: uploadsDir,
	}, nil
}

func (m *MockStore) path(key string) string {
	return filepath.Join(m.uploadsDir, filepath.FromSlash(key))
}

// Put writes the object under uploadsDir, creating parent directories.
func (m *MockStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	fullPath := m.path(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

// PresignGet returns a download URL served by the portal itself. The key is
// carried in a query parameter so the download handler knows what to stream.
func (m *MockStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/files/download?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

// Exists checks if the object exists in the local filesystem.
func (m *MockStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// Delete removes the object file.
func (m *MockStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(m.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Open opens a stored object for reading. Used by the mock download handler.
func (m *MockStore) Open(key string) (io.ReadCloser, error) {
	return os.Open(m.path(key))
}
