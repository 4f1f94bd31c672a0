package checksum

import (
	"context"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// chunkSize is the fixed read size used when streaming file content
// through the hash. It bounds memory use independent of file size.
const chunkSize = 4096

// Engine computes a content digest for a single file
type Engine interface {
	// Sum streams the file at path through the hash and returns the
	// lowercase hex digest
	Sum(ctx context.Context, path string) (string, error)

	// Name returns the algorithm name
	Name() string
}

// ForAlgorithm returns the engine for the given algorithm name
// Supported: md5, sha1, sha256
func ForAlgorithm(name string) (Engine, error) {
	switch name {
	case "md5":
		return NewMD5Engine(), nil
	case "sha1":
		return NewSHA1Engine(), nil
	case "sha256":
		return NewSHA256Engine(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s (use: md5, sha1, sha256)", name)
	}
}

// engine is the shared streaming implementation behind the named engines
type engine struct {
	name    string
	newHash func() hash.Hash
}

// MD5Engine computes MD5 digests. Digests here verify content
// integrity; they are not an authentication mechanism.
type MD5Engine struct{ engine }

// NewMD5Engine creates a new MD5 engine
func NewMD5Engine() *MD5Engine {
	return &MD5Engine{engine{name: "md5", newHash: md5.New}}
}

// SHA1Engine computes SHA-1 digests
type SHA1Engine struct{ engine }

// NewSHA1Engine creates a new SHA-1 engine
func NewSHA1Engine() *SHA1Engine {
	return &SHA1Engine{engine{name: "sha1", newHash: sha1.New}}
}

// SHA256Engine computes SHA-256 digests
type SHA256Engine struct{ engine }

// NewSHA256Engine creates a new SHA-256 engine
func NewSHA256Engine() *SHA256Engine {
	return &SHA256Engine{engine{name: "sha256", newHash: sha256.New}}
}

// Sum computes the digest of the file at path using fixed-size chunks
func (e *engine) Sum(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hasher := e.newHash()
	buf := make([]byte, chunkSize)

	for {
		// Check context cancellation between chunks
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := file.Read(buf)
		if n > 0 {
			// Chunks must be fed in stream order; hash state is sequential
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// Name returns the algorithm name
func (e *engine) Name() string {
	return e.name
}
