package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/min-linq/linq/core"
)

// WriteLines is a terminal that writes every value of p to w followed by a
// newline and returns the number of lines written. A write error stops the
// source.
func WriteLines[S any](w io.Writer, p core.Pipeline[S, string]) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	var writeErr error

	err := p.TakeWhile(func(string) bool { return writeErr == nil }).ForEach(func(line string) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			writeErr = fmt.Errorf("io: write line %d: %w", written+1, err)
			return
		}
		written++
	})
	if writeErr != nil {
		return written, writeErr
	}
	if err != nil {
		return written, err
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("io: flush: %w", err)
	}
	return written, nil
}

// WriteFile writes every value of p as a line to the file at path,
// creating or truncating it.
func WriteFile[S any](path string, p core.Pipeline[S, string]) (int, error) {
	return WriteFileWithOptions(path, p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

// AppendFile appends every value of p as a line to the file at path.
func AppendFile[S any](path string, p core.Pipeline[S, string]) (int, error) {
	return WriteFileWithOptions(path, p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WriteFileWithOptions writes lines with the given open flags and permissions.
func WriteFileWithOptions[S any](path string, p core.Pipeline[S, string], flag int, perm os.FileMode) (n int, err error) {
	file, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return 0, fmt.Errorf("io: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("io: close: %w", cerr)
		}
	}()
	return WriteLines(file, p)
}
