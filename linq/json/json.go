// Package json provides pipeline sources that decode JSON one element at a
// time, and a sink that encodes values as JSON Lines.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lguimbarda/min-linq/linq/core"
)

// ErrNotArray is returned by DecodeArray when the input does not start with '['.
var ErrNotArray = errors.New("json: expected array")

// DecodeStream creates a Pipeline that decodes consecutive JSON values from
// r, such as newline-delimited JSON (NDJSON/JSON Lines). The reader is
// consumed as the pipeline runs, so the pipeline is single pass.
func DecodeStream[T any](r io.Reader) core.Pipeline[T, T] {
	decoder := json.NewDecoder(r)
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		for {
			var value T
			if err := decoder.Decode(&value); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("json: decode: %w", err)
			}
			if stop(value) {
				return nil
			}
		}
	}))
}

// DecodeArray creates a Pipeline over the elements of a JSON array read from
// r. Elements are decoded one at a time; the array is never held in memory.
// The pipeline is single pass.
func DecodeArray[T any](r io.Reader) core.Pipeline[T, T] {
	decoder := json.NewDecoder(r)
	opened := false
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		if !opened {
			token, err := decoder.Token()
			if err != nil {
				return fmt.Errorf("json: read array start: %w", err)
			}
			if delim, ok := token.(json.Delim); !ok || delim != '[' {
				return ErrNotArray
			}
			opened = true
		}
		for decoder.More() {
			var value T
			if err := decoder.Decode(&value); err != nil {
				return fmt.Errorf("json: decode element: %w", err)
			}
			if stop(value) {
				return nil
			}
		}
		return nil
	}))
}

// EncodeTo is a terminal that writes every value of p to w as one JSON
// document per line and returns the number of values written. An encoding
// or write error stops the source.
func EncodeTo[S, T any](w io.Writer, p core.Pipeline[S, T]) (int, error) {
	encoder := json.NewEncoder(w)
	written := 0
	var encodeErr error

	err := p.TakeWhile(func(T) bool { return encodeErr == nil }).ForEach(func(v T) {
		if err := encoder.Encode(v); err != nil {
			encodeErr = fmt.Errorf("json: encode value %d: %w", written+1, err)
			return
		}
		written++
	})
	if encodeErr != nil {
		return written, encodeErr
	}
	return written, err
}
