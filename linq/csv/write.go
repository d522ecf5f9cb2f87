package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lguimbarda/min-linq/linq/core"
)

// WriterOption configures a CSV writer.
type WriterOption func(*csv.Writer)

// WithWriterComma sets the field delimiter for writing (default is ',').
func WithWriterComma(comma rune) WriterOption {
	return func(w *csv.Writer) {
		w.Comma = comma
	}
}

// WithUseCRLF sets whether to use \r\n as the line terminator.
func WithUseCRLF(useCRLF bool) WriterOption {
	return func(w *csv.Writer) {
		w.UseCRLF = useCRLF
	}
}

// WriteRecords is a terminal that writes every record of p to w and returns
// the number of records written. A write error stops the source.
func WriteRecords[S any](w io.Writer, p core.Pipeline[S, []string], opts ...WriterOption) (int, error) {
	writer := csv.NewWriter(w)
	for _, opt := range opts {
		opt(writer)
	}

	written := 0
	var writeErr error
	err := p.TakeWhile(func([]string) bool { return writeErr == nil }).ForEach(func(record []string) {
		if err := writer.Write(record); err != nil {
			writeErr = fmt.Errorf("csv: write record %d: %w", written+1, err)
			return
		}
		written++
	})
	writer.Flush()
	if writeErr != nil {
		return written, writeErr
	}
	if err != nil {
		return written, err
	}
	return written, writer.Error()
}
