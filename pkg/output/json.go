package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/checknorris/pkg/manifest"
)

// WriteComparisonJSON writes the comparison result as an indented JSON
// document, including the manifests compared and per-set counts
func WriteComparisonJSON(w io.Writer, sourcePath, destPath string, result *manifest.Result) error {
	doc := struct {
		Generated       string   `json:"generated"`
		SourceManifest  string   `json:"source_manifest"`
		DestManifest    string   `json:"dest_manifest"`
		MissingCount    int      `json:"missing_count"`
		ExtraCount      int      `json:"extra_count"`
		MismatchedCount int      `json:"mismatched_count"`
		Missing         []string `json:"missing"`
		Extra           []string `json:"extra"`
		Mismatched      []string `json:"hash_mismatch"`
	}{
		Generated:       time.Now().Format(time.RFC3339),
		SourceManifest:  sourcePath,
		DestManifest:    destPath,
		MissingCount:    len(result.Missing),
		ExtraCount:      len(result.Extra),
		MismatchedCount: len(result.Mismatched),
		Missing:         result.Missing,
		Extra:           result.Extra,
		Mismatched:      result.Mismatched,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
