package output

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"

	"github.com/sdejongh/checknorris/pkg/models"
)

// progressTemplate renders a counter bar with an error tally suffix
const progressTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{string . "errors"}}`

// ProgressFormatter renders a progress bar that ticks once per
// completed file, success or failure
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
	errors atomic.Int64
}

// NewProgressFormatter creates a new progress bar formatter writing to
// stderr so manifest output on stdout stays clean
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{writer: os.Stderr}
}

// SetWriter overrides the output writer (used in tests)
func (f *ProgressFormatter) SetWriter(w io.Writer) {
	f.writer = w
}

// Start initializes the bar for totalFiles files
func (f *ProgressFormatter) Start(totalFiles int) error {
	f.bar = pb.New(totalFiles)
	f.bar.SetTemplateString(progressTemplate)
	f.bar.Set("prefix", "Computing checksums")
	f.bar.Set("errors", "")
	f.bar.SetWriter(f.writer)
	f.bar.Start()
	return nil
}

// FileDone advances the bar by one file
func (f *ProgressFormatter) FileDone(key string) error {
	f.bar.Increment()
	return nil
}

// FileError advances the bar and updates the error tally
func (f *ProgressFormatter) FileError(key string, err error) error {
	count := f.errors.Add(1)
	f.bar.Set("errors", fmt.Sprintf("(%d errors)", count))
	f.bar.Increment()
	return nil
}

// Complete stops the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.GenerateReport) error {
	f.bar.Finish()
	writeSummary(f.writer, report)
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}

// writeSummary prints the run totals shared by all formatters
func writeSummary(w io.Writer, report *models.GenerateReport) {
	fmt.Fprintf(w, "Checksummed %d files in %s (%d failed)\n",
		report.FileCount, report.Duration.Round(1e6), report.ErrorCount)
	for _, failure := range report.Failures {
		fmt.Fprintf(w, "  failed: %s: %s\n", failure.Key, failure.Error)
	}
}
