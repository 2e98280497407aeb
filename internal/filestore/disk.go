package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type disk struct {
	root    string
	baseURL string
}

// NewDisk creates a disk-backed Storage rooted at dir. baseURL is prepended
// to public object paths.
func NewDisk(dir, baseURL string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return disk{root: dir, baseURL: baseURL}, nil
}

func (d disk) Save(_ context.Context, bucket, path string, r io.Reader) error {
	dst := filepath.Join(d.root, bucket, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create bucket dir: %w", err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create object: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to write object: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close object: %w", err)
	}

	return nil
}

func (d disk) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/%s/%s", d.baseURL, bucket, path)
}
