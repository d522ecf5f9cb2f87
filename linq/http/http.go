// Package http provides pipeline sources backed by HTTP responses.
// Every terminal call issues a fresh request, and the response body is
// closed when the pass ends, including when the pipeline stops early.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lguimbarda/min-linq/linq/core"
	linqio "github.com/lguimbarda/min-linq/linq/io"
	"github.com/lguimbarda/min-linq/linq/json"
)

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http: GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// body issues a GET request and hands the response body to each.
func body(ctx context.Context, client *http.Client, url string, each func(io.Reader) error) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return each(resp.Body)
}

// GetLines creates a Pipeline over the lines of a GET response.
// A nil client means http.DefaultClient.
func GetLines(ctx context.Context, client *http.Client, url string, opts ...linqio.LineOption) core.Pipeline[string, string] {
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		return body(ctx, client, url, func(r io.Reader) error {
			return linqio.ReadLinesFrom(r, opts...).Driver().Iterate(stop)
		})
	}))
}

// GetJSON creates a Pipeline over a GET response holding a stream of JSON
// values, such as newline-delimited JSON.
func GetJSON[T any](ctx context.Context, client *http.Client, url string) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		return body(ctx, client, url, func(r io.Reader) error {
			return json.DecodeStream[T](r).Driver().Iterate(stop)
		})
	}))
}

// GetEach maps each URL of p to the body of its GET response. A failed
// request is suppressed and reported to onError, if set, so one bad URL
// does not end the pass.
func GetEach[S any](ctx context.Context, client *http.Client, p core.Pipeline[S, string], onError func(url string, err error)) core.Pipeline[S, []byte] {
	return core.Then(p, core.Lift(nil, func(url string) core.Signal[[]byte] {
		var content []byte
		err := body(ctx, client, url, func(r io.Reader) error {
			var err error
			content, err = io.ReadAll(r)
			return err
		})
		if err != nil {
			if onError != nil {
				onError(url, err)
			}
			return core.Suppressed[[]byte]()
		}
		return core.Produced(content)
	}))
}
