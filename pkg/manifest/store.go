package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sdejongh/checknorris/internal/platform"
)

// ParseError describes a malformed manifest line. A manifest built from
// a partially-parsed file could silently under-report differences, so
// loading aborts on the first bad line.
type ParseError struct {
	File string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed manifest line %s:%d: %q", e.File, e.Line, e.Text)
}

// Write appends one record to w as "<key> <digest>\n".
// Failed entries are written with the FailedDigest sentinel.
func Write(w io.Writer, e Entry) error {
	if !platform.ValidKey(e.Key) {
		return fmt.Errorf("key cannot be stored in manifest: %q", e.Key)
	}

	digest := e.Digest
	if e.Failed() {
		digest = FailedDigest
	}

	if _, err := fmt.Fprintf(w, "%s %s\n", e.Key, digest); err != nil {
		return fmt.Errorf("failed to write manifest entry: %w", err)
	}
	return nil
}

// WriteAll writes every entry to w in order
func WriteAll(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := Write(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Load parses the manifest file at path into a mapping.
// Lines are split on the first space only; the sentinel digest loads
// back as an empty digest; the last occurrence of a duplicate key wins.
func Load(path string) (Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	m := make(Manifest)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		key, digest, found := strings.Cut(line, " ")
		if !found || key == "" {
			return nil, &ParseError{File: path, Line: lineNum, Text: line}
		}

		if digest == FailedDigest {
			digest = ""
		}
		m[key] = digest
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return m, nil
}
