package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path         string
	RelativePath string
	Size         int64
	ModTime      time.Time
}

// Backend defines the read-side interface for a directory tree
// Implementations include local filesystem; network shares could be added
type Backend interface {
	// List returns every regular file under path recursively.
	// Hidden files are included; directories and symlinks are not.
	// An unreadable subdirectory fails the whole listing rather than
	// being silently skipped.
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Read opens a file for reading
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)

	// Root returns the absolute root path of the backend
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
