package manifest

// FailedDigest is the sentinel digest written for a file whose checksum
// could not be computed. A failed file still gets a manifest line;
// omitting it would be indistinguishable from a file that never existed.
// The token can never collide with a hex digest.
const FailedDigest = "FAILED"

// Entry is a single manifest record: one file's key and content digest.
// An empty Digest means the checksum failed for that file.
type Entry struct {
	// Key is the file path relative to the scanned root,
	// slash-separated regardless of platform
	Key string

	// Digest is the lowercase hex digest, or "" when checksumming failed
	Digest string
}

// Failed reports whether this entry records a checksum failure
func (e Entry) Failed() bool {
	return e.Digest == ""
}

// Manifest is the in-memory form of a manifest file: an unordered
// mapping from key to digest. Failed entries map to "".
type Manifest map[string]string
