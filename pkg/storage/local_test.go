package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestNewLocal tests the Local backend constructor
func TestNewLocal(t *testing.T) {
	t.Run("ValidDirectory", func(t *testing.T) {
		tempDir, err := os.MkdirTemp("", "checknorris-storage-test-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(tempDir)

		local, err := NewLocal(tempDir)
		if err != nil {
			t.Fatalf("NewLocal() error = %v", err)
		}
		if local == nil {
			t.Fatal("NewLocal() returned nil")
		}
		defer local.Close()

		if !filepath.IsAbs(local.Root()) {
			t.Errorf("Root() = %s, want absolute path", local.Root())
		}
	})

	t.Run("NonExistentPath", func(t *testing.T) {
		_, err := NewLocal("/nonexistent/path/that/does/not/exist")
		if err == nil {
			t.Error("NewLocal() should fail for non-existent path")
		}
	})

	t.Run("FileNotDirectory", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "checknorris-file-*")
		if err != nil {
			t.Fatalf("failed to create temp file: %v", err)
		}
		tempFile.Close()
		defer os.Remove(tempFile.Name())

		_, err = NewLocal(tempFile.Name())
		if err == nil {
			t.Error("NewLocal() should fail for file path (not directory)")
		}
	})
}

// TestLocalList tests the List method
func TestLocalList(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "checknorris-storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Create test structure, hidden files included
	files := map[string][]byte{
		"file1.txt":         []byte("content1"),
		".hidden":           []byte("hidden content"),
		"subdir/file2.txt":  []byte("content2"),
		"subdir/.hidden2":   []byte("also hidden"),
		"a/b/c/deep.txt":    []byte("deep content"),
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	local, err := NewLocal(tempDir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer local.Close()

	ctx := context.Background()

	t.Run("RegularFilesOnly", func(t *testing.T) {
		entries, err := local.List(ctx, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(entries) != len(files) {
			t.Errorf("List() returned %d entries, want %d", len(entries), len(files))
		}

		byRel := make(map[string]FileInfo)
		for _, e := range entries {
			byRel[filepath.ToSlash(e.RelativePath)] = e
		}

		for path, content := range files {
			entry, ok := byRel[path]
			if !ok {
				t.Errorf("List() missing %s", path)
				continue
			}
			if entry.Size != int64(len(content)) {
				t.Errorf("List() size for %s = %d, want %d", path, entry.Size, len(content))
			}
		}
	})

	t.Run("NoDirectoryEntries", func(t *testing.T) {
		entries, err := local.List(ctx, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for _, e := range entries {
			info, err := os.Stat(e.Path)
			if err != nil {
				t.Fatalf("failed to stat %s: %v", e.Path, err)
			}
			if info.IsDir() {
				t.Errorf("List() returned directory entry: %s", e.RelativePath)
			}
		}
	})

	t.Run("SymlinkedDirectoryNotDescended", func(t *testing.T) {
		outside, err := os.MkdirTemp("", "checknorris-outside-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer os.RemoveAll(outside)

		if err := os.WriteFile(filepath.Join(outside, "outside.txt"), []byte("outside"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		linkPath := filepath.Join(tempDir, "link")
		if err := os.Symlink(outside, linkPath); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		defer os.Remove(linkPath)

		entries, err := local.List(ctx, "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		for _, e := range entries {
			if filepath.Base(e.RelativePath) == "outside.txt" {
				t.Error("List() descended into a symlinked directory")
			}
			if e.RelativePath == "link" {
				t.Error("List() returned the symlink itself")
			}
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := local.List(cancelCtx, ""); err == nil {
			t.Error("List() should fail on cancelled context")
		}
	})
}

// TestLocalRead tests the Read method
func TestLocalRead(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "checknorris-storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, "file.txt"), []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	local, err := NewLocal(tempDir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer local.Close()

	ctx := context.Background()

	t.Run("ExistingFile", func(t *testing.T) {
		reader, err := local.Read(ctx, "file.txt")
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		reader.Close()
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := local.Read(ctx, "missing.txt"); err == nil {
			t.Error("Read() should fail for missing file")
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := local.Exists(ctx, "file.txt")
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if !exists {
			t.Error("Exists() = false for existing file")
		}

		exists, err = local.Exists(ctx, "missing.txt")
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if exists {
			t.Error("Exists() = true for missing file")
		}
	})

	t.Run("Stat", func(t *testing.T) {
		info, err := local.Stat(ctx, "file.txt")
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Size != int64(len("content")) {
			t.Errorf("Stat() size = %d, want %d", info.Size, len("content"))
		}
		if info.RelativePath != "file.txt" {
			t.Errorf("Stat() relative path = %s, want file.txt", info.RelativePath)
		}
	})
}
