package output

import (
	"github.com/sdejongh/checknorris/pkg/models"
)

// Formatter is the reporting collaborator invoked by the generator on
// both success and failure events. Progress is cosmetic; it is not part
// of the generator's correctness contract.
type Formatter interface {
	// Start initializes the formatter for a run over totalFiles files
	Start(totalFiles int) error

	// FileDone reports one successfully checksummed file
	FileDone(key string) error

	// FileError reports one file whose checksum failed
	FileError(key string, err error) error

	// Complete finalizes output and displays the run summary
	Complete(report *models.GenerateReport) error

	// Name returns the formatter name
	Name() string
}
