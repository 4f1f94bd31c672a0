package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/checknorris/pkg/manifest"
)

// WriteComparisonCSV writes the three difference lists as three columns.
// Columns are ragged, so shorter lists are padded with empty cells to
// the longest list's length.
func WriteComparisonCSV(w io.Writer, result *manifest.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"missing", "extra", "hash_mismatch"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := len(result.Missing)
	if len(result.Extra) > rows {
		rows = len(result.Extra)
	}
	if len(result.Mismatched) > rows {
		rows = len(result.Mismatched)
	}

	cell := func(list []string, i int) string {
		if i < len(list) {
			return list[i]
		}
		return ""
	}

	for i := 0; i < rows; i++ {
		record := []string{
			cell(result.Missing, i),
			cell(result.Extra, i),
			cell(result.Mismatched, i),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveComparisonCSV writes the comparison result to a CSV file
func SaveComparisonCSV(path string, result *manifest.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	return WriteComparisonCSV(file, result)
}
