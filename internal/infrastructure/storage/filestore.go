// Package storage keeps ticket image attachments on local disk and serves
// them back through a public URL prefix.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"fieldesk/internal/shared/config"
)

// FileStore writes attachment blobs under a root directory.
type FileStore struct {
	rootDir       string
	publicBaseURL string
	maxBytes      int64
}

// SaveResult describes a stored attachment.
type SaveResult struct {
	// StoragePath is the path relative to the root directory.
	StoragePath string
	Size        int64
	// PublicURL is where the HTTP layer serves the blob from.
	PublicURL string
}

func NewFileStore(cfg *config.StorageConfig) (*FileStore, error) {
	if err := os.MkdirAll(cfg.RootDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", cfg.RootDir, err)
	}

	return &FileStore{
		rootDir:       cfg.RootDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes:      int64(cfg.MaxUploadMB) * 1024 * 1024,
	}, nil
}

// Save streams the blob to disk. Write goes to a temp file first and is
// atomically renamed into place, so a crash never leaves a partial blob
// visible.
func (fs *FileStore) Save(reader io.Reader, originalFilename string) (*SaveResult, error) {
	storageName := generateStorageName(originalFilename)
	fullPath := filepath.Join(fs.rootDir, storageName)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	limited := io.LimitReader(reader, fs.maxBytes+1)
	size, err := io.Copy(f, limited)
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}
	if size > fs.maxBytes {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("upload exceeds %d bytes", fs.maxBytes)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to sync blob: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close blob: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to rename blob into place: %w", err)
	}

	return &SaveResult{
		StoragePath: storageName,
		Size:        size,
		PublicURL:   fs.publicBaseURL + "/" + storageName,
	}, nil
}

// Open returns the blob for reading. The caller closes it.
func (fs *FileStore) Open(storagePath string) (*os.File, error) {
	fullPath := filepath.Join(fs.rootDir, filepath.Clean("/"+storagePath))

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("blob not found: %s", storagePath)
		}
		return nil, fmt.Errorf("failed to open blob %s: %w", storagePath, err)
	}

	return f, nil
}

// RootDir returns the storage root, used to mount a static file route.
func (fs *FileStore) RootDir() string {
	return fs.rootDir
}

func generateStorageName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("%d_%s%s", time.Now().UTC().UnixMilli(), uuid.NewString(), ext)
}
