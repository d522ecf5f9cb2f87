// Package io provides pipeline sources and sinks for files and readers.
package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/min-linq/linq/core"
)

// DefaultMaxLineSize is the longest line accepted unless WithMaxLineSize
// says otherwise.
const DefaultMaxLineSize = bufio.MaxScanTokenSize

// LineOption configures line scanning.
type LineOption func(*lineConfig)

type lineConfig struct {
	maxLineSize int
}

// WithMaxLineSize sets the longest line, in bytes, the scanner accepts.
// Longer lines fail the pass with bufio.ErrTooLong. A non-positive n keeps
// DefaultMaxLineSize.
func WithMaxLineSize(n int) LineOption {
	return func(c *lineConfig) {
		if n > 0 {
			c.maxLineSize = n
		}
	}
}

func newScanner(r io.Reader, opts []LineOption) *bufio.Scanner {
	cfg := lineConfig{maxLineSize: DefaultMaxLineSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(cfg.maxLineSize, 4096)), cfg.maxLineSize)
	return scanner
}

func scanLines(scanner *bufio.Scanner, stop func(string) bool) error {
	for scanner.Scan() {
		if stop(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("io: scan lines: %w", err)
	}
	return nil
}

// ReadLines creates a Pipeline over the lines of the file at path, without
// trailing newlines. The file is opened on every terminal call and closed
// when the pass ends.
func ReadLines(path string, opts ...LineOption) core.Pipeline[string, string] {
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("io: %w", err)
		}
		defer file.Close()
		return scanLines(newScanner(file, opts), stop)
	}))
}

// ReadLinesFrom creates a Pipeline over the lines read from r.
// This is useful for reading from stdin, network connections, or other
// readers. The reader is consumed: a later pass resumes where the previous
// one stopped.
func ReadLinesFrom(r io.Reader, opts ...LineOption) core.Pipeline[string, string] {
	scanner := newScanner(r, opts)
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		return scanLines(scanner, stop)
	}))
}

func readChunks(r io.Reader, chunkSize int, stop func([]byte) bool) error {
	if chunkSize <= 0 {
		return fmt.Errorf("io: chunk size must be positive, got %d", chunkSize)
	}
	for {
		buf := make([]byte, chunkSize)
		n, err := io.ReadFull(r, buf)
		if n > 0 && stop(buf[:n]) {
			return nil
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("io: read chunk: %w", err)
		}
	}
}

// ReadChunks creates a Pipeline over the file at path in chunks of
// chunkSize bytes; the last chunk may be shorter. Each chunk is a fresh
// slice that stages may keep.
func ReadChunks(path string, chunkSize int) core.Pipeline[[]byte, []byte] {
	return core.New[[]byte](core.DriverFunc[[]byte](func(stop func([]byte) bool) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("io: %w", err)
		}
		defer file.Close()
		return readChunks(file, chunkSize, stop)
	}))
}

// ReadChunksFrom creates a Pipeline over r in chunks of chunkSize bytes.
func ReadChunksFrom(r io.Reader, chunkSize int) core.Pipeline[[]byte, []byte] {
	return core.New[[]byte](core.DriverFunc[[]byte](func(stop func([]byte) bool) error {
		return readChunks(r, chunkSize, stop)
	}))
}
