package platform

import (
	"path/filepath"
	"strings"
)

// Manifest keys are always slash-separated so manifests generated on
// different platforms join on the same keys.

// ToKey converts a platform-native relative path to a manifest key
func ToKey(relPath string) string {
	return filepath.ToSlash(relPath)
}

// FromKey converts a manifest key back to a platform-native relative path
func FromKey(key string) string {
	return filepath.FromSlash(key)
}

// ValidKey reports whether key can be stored as a manifest record.
// Records are newline-terminated and split on the first space, so a key
// must not embed a newline or start with a space. Spaces elsewhere in
// the key would shift the split point and are the caller's concern.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	if strings.HasPrefix(key, " ") {
		return false
	}
	if strings.ContainsAny(key, "\n") {
		return false
	}
	return true
}
