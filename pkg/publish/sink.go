package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sink stores rendered documents.
type Sink interface {
	// Put stores html under key. Keys use forward slashes.
	Put(ctx context.Context, key string, html string) error
}

// DiskSink writes documents below a directory.
type DiskSink struct {
	dir string
}

// NewDiskSink creates a sink writing below dir.
func NewDiskSink(dir string) *DiskSink {
	return &DiskSink{dir: dir}
}

// Dir returns the output directory.
func (s *DiskSink) Dir() string {
	return s.dir
}

// Put writes the document through a temp file so readers never see a
// partial page.
func (s *DiskSink) Put(ctx context.Context, key string, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, err := cleanKey(key)
	if err != nil {
		return err
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".markup-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// cleanKey rejects keys that would leave the sink's root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("publish: invalid key %q", key)
	}
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("publish: invalid key %q", key)
	}
	return clean, nil
}
