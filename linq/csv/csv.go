// Package csv provides pipeline sources and sinks for CSV data.
// Records are read one at a time; nothing beyond the current record is held
// in memory.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/min-linq/linq/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

func newReader(r io.Reader, opts []ReaderOption) *csv.Reader {
	reader := csv.NewReader(r)
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// iterate feeds records to stop until EOF, a read error, or stop reports true.
func iterate(reader *csv.Reader, stop func([]string) bool) error {
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("csv: read record: %w", err)
		}
		if stop(record) {
			return nil
		}
	}
}

// ReadRecords creates a Pipeline over the rows of a CSV file. The file is
// opened on every terminal call and closed when the pass ends.
func ReadRecords(path string, opts ...ReaderOption) core.Pipeline[[]string, []string] {
	return core.New[[]string](core.DriverFunc[[]string](func(stop func([]string) bool) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		defer file.Close()
		return iterate(newReader(file, opts), stop)
	}))
}

// ReadRecordsFrom creates a Pipeline that reads CSV records from r.
// The reader is consumed as the pipeline runs: a later pass resumes where
// the previous one stopped rather than starting over.
func ReadRecordsFrom(r io.Reader, opts ...ReaderOption) core.Pipeline[[]string, []string] {
	reader := newReader(r, opts)
	return core.New[[]string](core.DriverFunc[[]string](func(stop func([]string) bool) error {
		return iterate(reader, stop)
	}))
}

// ReadMapsFrom creates a Pipeline that treats the first record as a header
// and yields every following record as a map from column name to field.
// Like ReadRecordsFrom, it is single pass.
func ReadMapsFrom(r io.Reader, opts ...ReaderOption) core.Pipeline[map[string]string, map[string]string] {
	reader := newReader(r, opts)
	var header []string
	return core.New[map[string]string](core.DriverFunc[map[string]string](func(stop func(map[string]string) bool) error {
		return iterate(reader, func(record []string) bool {
			if header == nil {
				header = append([]string(nil), record...)
				return false
			}
			row := make(map[string]string, len(header))
			for i, name := range header {
				if i < len(record) {
					row[name] = record[i]
				}
			}
			return stop(row)
		})
	}))
}
