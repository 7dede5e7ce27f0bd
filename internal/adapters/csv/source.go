// Package csv reads phone number records from a Google Forms CSV export.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/uno-labs/waroster/internal/domain"
	"github.com/uno-labs/waroster/pkg/log"
)

// Source implements ports.RecordSource over a CSV file with a header row.
// Rows with too few columns are skipped with a warning rather than failing
// the run; only file access and malformed-CSV errors are fatal.
type Source struct {
	file   *os.File
	reader *csv.Reader
	column int
	row    int
	logger log.Logger
}

// NewSource opens the CSV file at path and positions the source at the
// first data row. column is the 0-based index of the phone number field.
// The header row is consumed here; an empty file is an error.
func NewSource(path string, column int, logger log.Logger) (*Source, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}

	r := csv.NewReader(f)
	// Forms exports can carry ragged rows; shape checks are per-row.
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		f.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("import file %s is empty", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	return &Source{
		file:   f,
		reader: r,
		column: column,
		row:    1,
		logger: logger,
	}, nil
}

// Next returns the next data record, skipping rows that do not reach the
// phone number column. Returns io.EOF when the file is exhausted.
func (s *Source) Next() (domain.RawRecord, error) {
	for {
		rec, err := s.reader.Read()
		if err == io.EOF {
			return domain.RawRecord{}, io.EOF
		}
		if err != nil {
			return domain.RawRecord{}, fmt.Errorf("read row %d: %w", s.row+1, err)
		}
		s.row++

		if len(rec) <= s.column {
			s.logger.Warn("row has insufficient columns, skipping",
				log.Int("row", s.row),
				log.Int("columns", len(rec)))
			continue
		}

		return domain.RawRecord{Row: s.row, Raw: rec[s.column]}, nil
	}
}

// Close closes the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}
