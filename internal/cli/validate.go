package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sdejongh/checknorris/pkg/config"
	"github.com/sdejongh/checknorris/pkg/models"
)

// loadConfig loads configuration from the --config flag or the default
// location
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// newGenerateRun builds a Run for the generate command from config and
// positional arguments
func newGenerateRun(cfg *config.Config, directory, outputFile string) (*models.Run, error) {
	run := &models.Run{
		ID:         uuid.New().String(),
		Command:    models.CommandGenerate,
		RootDir:    directory,
		OutputFile: outputFile,
		Algorithm:  cfg.Checksum.Algorithm,
		MaxWorkers: cfg.Performance.MaxWorkers,
		CreatedAt:  time.Now(),
	}

	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate run: %w", err)
	}

	return run, nil
}

// newCompareRun builds a Run for the compare command
func newCompareRun(sourceManifest, destManifest string) (*models.Run, error) {
	run := &models.Run{
		ID:             uuid.New().String(),
		Command:        models.CommandCompare,
		SourceManifest: sourceManifest,
		DestManifest:   destManifest,
		CreatedAt:      time.Now(),
	}

	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("invalid compare run: %w", err)
	}

	return run, nil
}
