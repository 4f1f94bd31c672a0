package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdejongh/checknorris/pkg/manifest"
	"github.com/sdejongh/checknorris/pkg/output"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	OutputCSV string
	Format    string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <sourceManifest> <destManifest>",
		Short: "Compare two checksum manifests",
		Long: `Load two manifests and report files missing from the destination,
files only present in the destination, and files whose checksums differ.
A malformed manifest line aborts the comparison.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().StringVar(&compareFlags.OutputCSV, "output-csv", "", "also write the three lists as CSV columns to this file")
	cmd.Flags().StringVarP(&compareFlags.Format, "output", "o", "", "output format: human, json")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if compareFlags.Format != "" {
		cfg.Output.Format = compareFlags.Format
	}

	run, err := newCompareRun(args[0], args[1])
	if err != nil {
		return err
	}

	source, err := manifest.Load(run.SourceManifest)
	if err != nil {
		return fmt.Errorf("failed to load source manifest: %w", err)
	}

	dest, err := manifest.Load(run.DestManifest)
	if err != nil {
		return fmt.Errorf("failed to load destination manifest: %w", err)
	}

	result := manifest.Compare(source, dest)

	switch cfg.Output.Format {
	case "json":
		if err := output.WriteComparisonJSON(os.Stdout, run.SourceManifest, run.DestManifest, result); err != nil {
			return fmt.Errorf("failed to write comparison: %w", err)
		}
	default:
		if err := output.WriteComparisonHuman(os.Stdout, result); err != nil {
			return fmt.Errorf("failed to write comparison: %w", err)
		}
	}

	if compareFlags.OutputCSV != "" {
		if err := output.SaveComparisonCSV(compareFlags.OutputCSV, result); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		fmt.Printf("Results written to %s\n", compareFlags.OutputCSV)
	}

	return nil
}
