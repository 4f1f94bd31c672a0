package output

import (
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/checknorris/pkg/models"
)

// PlainFormatter emits one line per failed file and a final summary.
// Suitable for non-interactive use (pipes, cron).
type PlainFormatter struct {
	writer io.Writer
}

// NewPlainFormatter creates a new plain formatter writing to stderr
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{writer: os.Stderr}
}

// SetWriter overrides the output writer (used in tests)
func (f *PlainFormatter) SetWriter(w io.Writer) {
	f.writer = w
}

// Start does nothing for plain output
func (f *PlainFormatter) Start(totalFiles int) error {
	return nil
}

// FileDone does nothing for plain output
func (f *PlainFormatter) FileDone(key string) error {
	return nil
}

// FileError reports the failed file immediately
func (f *PlainFormatter) FileError(key string, err error) error {
	fmt.Fprintf(f.writer, "checksum failed: %s: %v\n", key, err)
	return nil
}

// Complete prints the run summary
func (f *PlainFormatter) Complete(report *models.GenerateReport) error {
	fmt.Fprintf(f.writer, "Checksummed %d files in %s (%d failed)\n",
		report.FileCount, report.Duration.Round(1e6), report.ErrorCount)
	return nil
}

// Name returns the formatter name
func (f *PlainFormatter) Name() string {
	return "plain"
}
