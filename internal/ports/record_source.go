package ports

import (
	"io"

	"github.com/uno-labs/waroster/internal/domain"
)

// RecordSource provides raw phone number records from an import file.
// Implementations own the file format: header handling, column selection,
// and skipping of malformed rows.
type RecordSource interface {
	// Next returns the next data record. Returns io.EOF when the source
	// is exhausted; other errors are unrecoverable.
	Next() (domain.RawRecord, error)

	// Close releases all resources held by the source.
	Close() error
}

// ErrNoMoreRecords indicates that the source is exhausted.
var ErrNoMoreRecords = io.EOF
