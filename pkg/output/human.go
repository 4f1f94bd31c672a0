package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/checknorris/pkg/manifest"
)

// WriteComparisonHuman prints the three difference lists with counts,
// one path per line
func WriteComparisonHuman(w io.Writer, result *manifest.Result) error {
	fmt.Fprintf(w, "Files only in source: %d\n", len(result.Missing))
	for _, key := range result.Missing {
		fmt.Fprintln(w, key)
	}

	fmt.Fprintf(w, "Files only in destination: %d\n", len(result.Extra))
	for _, key := range result.Extra {
		fmt.Fprintln(w, key)
	}

	fmt.Fprintf(w, "Files with mismatched checksums: %d\n", len(result.Mismatched))
	for _, key := range result.Mismatched {
		fmt.Fprintln(w, key)
	}

	return nil
}
