package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/checknorris/pkg/checksum"
	"github.com/sdejongh/checknorris/pkg/config"
	"github.com/sdejongh/checknorris/pkg/generate"
	"github.com/sdejongh/checknorris/pkg/logging"
	"github.com/sdejongh/checknorris/pkg/output"
	"github.com/sdejongh/checknorris/pkg/storage"
)

// GenerateFlags holds generate command flags
type GenerateFlags struct {
	Workers    int
	Algorithm  string
	NoProgress bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var generateFlags GenerateFlags

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <directory> <outputFile>",
		Short: "Generate a checksum manifest for a directory tree",
		Long: `Walk a directory tree, compute a content checksum for every file,
and write one "relativePath digest" line per file to the output manifest.
Files whose checksum cannot be computed are recorded with the FAILED
sentinel instead of being dropped.`,
		Args: cobra.ExactArgs(2),
		RunE: runGenerate,
	}

	cmd.Flags().IntVarP(&generateFlags.Workers, "workers", "w", 0, "number of parallel checksum workers (default: one per CPU)")
	cmd.Flags().StringVar(&generateFlags.Algorithm, "algorithm", "", "checksum algorithm: md5, sha1, sha256")
	cmd.Flags().BoolVar(&generateFlags.NoProgress, "no-progress", false, "disable the progress bar")

	cmd.Flags().StringVar(&generateFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&generateFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&generateFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGenerateFlags(cfg)

	run, err := newGenerateRun(cfg, args[0], args[1])
	if err != nil {
		return err
	}

	backend, err := storage.NewLocal(run.RootDir)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer backend.Close()

	engine, err := checksum.ForAlgorithm(run.Algorithm)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()
	logger = logger.WithFields(logging.Fields{"run_id": run.ID})

	var formatter output.Formatter
	switch {
	case globalFlags.Quiet:
		formatter = nil
	case cfg.Output.Progress:
		formatter = output.NewProgressFormatter()
	default:
		formatter = output.NewPlainFormatter()
	}

	sink, err := os.Create(run.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer sink.Close()

	generator := generate.New(backend, engine, formatter, logger, run.MaxWorkers)

	report, err := generator.Run(ctx, sink)
	if err != nil {
		return fmt.Errorf("manifest generation failed: %w", err)
	}
	report.RunID = run.ID

	logger.Info(ctx, "Run finished", logging.Fields{
		"manifest": run.OutputFile,
		"files":    report.FileCount,
		"errors":   report.ErrorCount,
	})

	return nil
}

// applyGenerateFlags overrides config values with command-line flags
func applyGenerateFlags(cfg *config.Config) {
	if generateFlags.Workers > 0 {
		cfg.Performance.MaxWorkers = generateFlags.Workers
	}
	if generateFlags.Algorithm != "" {
		cfg.Checksum.Algorithm = generateFlags.Algorithm
	}
	if generateFlags.NoProgress {
		cfg.Output.Progress = false
	}
	if generateFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = generateFlags.LogFile
		cfg.Logging.Format = generateFlags.LogFormat
		cfg.Logging.Level = generateFlags.LogLevel
	}
}

// newLogger builds the logger described by the config
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}
