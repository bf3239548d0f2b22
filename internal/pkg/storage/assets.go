// Package storage implements the file-asset boundary: uploaded avatar and
// chat images are written into named buckets and resolved to retrievable
// URLs. Upload failures are reported to the caller and never retried
// automatically.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// AssetStore resolves stored image references into retrievable URLs.
type AssetStore interface {
	UploadBlob(bucket, path string, data []byte) error
	GetPublicURL(bucket, path string) string
}

// DiskStore is an AssetStore backed by a directory per bucket, served
// publicly by the HTTP layer under a configured base URL.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a disk-backed asset store.
func NewDiskStore(cfg models.AssetsConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create asset root: %w", err)
	}
	return &DiskStore{
		root:    cfg.Root,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Root returns the on-disk directory assets are stored under.
func (s *DiskStore) Root() string {
	return s.root
}

// UploadBlob stores data under bucket/path. Path traversal outside the
// bucket is rejected.
func (s *DiskStore) UploadBlob(bucket, path string, data []byte) error {
	target, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create bucket directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to store blob %s/%s: %w", bucket, path, err)
	}
	return nil
}

// GetPublicURL resolves a stored reference to the URL it is served under.
func (s *DiskStore) GetPublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, path)
}

func (s *DiskStore) resolve(bucket, path string) (string, error) {
	bucketRoot := filepath.Join(s.root, bucket)
	target := filepath.Join(bucketRoot, filepath.FromSlash(path))
	if !strings.HasPrefix(target, bucketRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid asset path %q", path)
	}
	return target, nil
}
