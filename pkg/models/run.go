package models

import (
	"time"
)

// Command identifies which operation a run performs
type Command string

const (
	// CommandGenerate walks a tree and writes a manifest
	CommandGenerate Command = "generate"
	// CommandCompare compares two existing manifests
	CommandCompare Command = "compare"
)

// Run represents one invocation of the tool
type Run struct {
	// ID uniquely identifies this run (attached to logs and reports)
	ID string

	Command Command

	// RootDir is the scanned directory (generate)
	RootDir string

	// OutputFile is the manifest destination (generate)
	OutputFile string

	// SourceManifest and DestManifest are the compared files (compare)
	SourceManifest string
	DestManifest   string

	// Algorithm is the checksum algorithm name (generate)
	Algorithm string

	// MaxWorkers bounds concurrent checksum tasks (generate)
	MaxWorkers int

	CreatedAt time.Time
}

// Validate checks if the run configuration is valid
func (r *Run) Validate() error {
	switch r.Command {
	case CommandGenerate:
		if r.RootDir == "" {
			return &ValidationError{Field: "RootDir", Message: "directory is required"}
		}
		if r.OutputFile == "" {
			return &ValidationError{Field: "OutputFile", Message: "output file is required"}
		}
		if r.MaxWorkers < 1 {
			return &ValidationError{Field: "MaxWorkers", Message: "max workers must be at least 1"}
		}
	case CommandCompare:
		if r.SourceManifest == "" {
			return &ValidationError{Field: "SourceManifest", Message: "source manifest is required"}
		}
		if r.DestManifest == "" {
			return &ValidationError{Field: "DestManifest", Message: "destination manifest is required"}
		}
	default:
		return &ValidationError{Field: "Command", Message: "unknown command"}
	}
	return nil
}
