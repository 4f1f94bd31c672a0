package models

import (
	"time"
)

// FileFailure records one file whose checksum could not be computed
type FileFailure struct {
	// Key is the manifest key of the failed file
	Key string `json:"key"`

	// Error is the failure cause
	Error string `json:"error"`

	Timestamp time.Time `json:"timestamp"`
}

// GenerateReport summarizes one manifest generation run
type GenerateReport struct {
	RunID     string        `json:"run_id"`
	RootDir   string        `json:"root_dir"`
	Algorithm string        `json:"algorithm"`
	Workers   int           `json:"workers"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`

	// FileCount is the number of manifest entries written,
	// including failed ones
	FileCount int `json:"file_count"`

	// ErrorCount is the number of entries written with the
	// failure sentinel
	ErrorCount int `json:"error_count"`

	Failures []FileFailure `json:"failures,omitempty"`
}

// ValidationError represents an invalid flag or configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}
