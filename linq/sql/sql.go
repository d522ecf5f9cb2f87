// Package sql provides pipeline sources and sinks over database/sql.
// A result set is consumed through a forward-only cursor, one row at a time.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lguimbarda/min-linq/linq/core"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowsCursor adapts *sql.Rows to core.Cursor. It cannot be rewound.
type rowsCursor[T any] struct {
	rows    *sql.Rows
	scan    Scanner[T]
	current T
	eof     bool
	started bool
}

func newCursor[T any](rows *sql.Rows, scan Scanner[T]) *rowsCursor[T] {
	return &rowsCursor[T]{rows: rows, scan: scan}
}

func (c *rowsCursor[T]) First() error {
	if c.started {
		return core.ErrCursorRewind
	}
	c.started = true
	return c.Next()
}

func (c *rowsCursor[T]) Next() error {
	if !c.rows.Next() {
		c.eof = true
		if err := c.rows.Err(); err != nil {
			return fmt.Errorf("sql: iterate rows: %w", err)
		}
		return nil
	}
	value, err := c.scan(c.rows)
	if err != nil {
		c.eof = true
		return fmt.Errorf("sql: scan row: %w", err)
	}
	c.current = value
	return nil
}

func (c *rowsCursor[T]) EOF() bool {
	return c.eof
}

func (c *rowsCursor[T]) Current() T {
	return c.current
}

// Query creates a Pipeline over the rows of a query. The query is executed
// on every terminal call, so the pipeline is repeatable; rows are closed when
// the pass ends, including when a stage stops it early.
func Query[T any](ctx context.Context, db Querier, query string, scanner Scanner[T], args ...any) core.Pipeline[T, T] {
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("sql: query: %w", err)
		}
		defer rows.Close()
		return core.CursorDriver[T](newCursor(rows, scanner)).Iterate(stop)
	}))
}

// FromRows creates a Pipeline over an already executed result set. It is
// single use: rows are closed when the first pass ends, and any further
// terminal call returns core.ErrCursorRewind.
func FromRows[T any](rows *sql.Rows, scanner Scanner[T]) core.Pipeline[T, T] {
	cursor := newCursor(rows, scanner)
	return core.New[T](core.DriverFunc[T](func(stop func(T) bool) error {
		if cursor.started {
			return core.ErrCursorRewind
		}
		defer rows.Close()
		return core.CursorDriver[T](cursor).Iterate(stop)
	}))
}

// QueryStrings is a convenience function that queries for string slices.
// Each row is scanned into a slice of strings.
func QueryStrings(ctx context.Context, db Querier, query string, args ...any) core.Pipeline[[]string, []string] {
	return Query(ctx, db, query, func(rows *sql.Rows) ([]string, error) {
		values, err := scanAny(rows)
		if err != nil {
			return nil, err
		}
		result := make([]string, len(values))
		for i, v := range values {
			switch val := v.(type) {
			case nil:
				result[i] = ""
			case []byte:
				result[i] = string(val)
			case string:
				result[i] = val
			case int64:
				result[i] = fmt.Sprintf("%d", val)
			case float64:
				result[i] = fmt.Sprintf("%g", val)
			case bool:
				result[i] = fmt.Sprintf("%t", val)
			default:
				result[i] = fmt.Sprintf("%v", val)
			}
		}
		return result, nil
	}, args...)
}

// QueryMaps is a convenience function that queries for map results.
// Each row is scanned into a map with column names as keys.
func QueryMaps(ctx context.Context, db Querier, query string, args ...any) core.Pipeline[map[string]any, map[string]any] {
	return Query(ctx, db, query, func(rows *sql.Rows) (map[string]any, error) {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		values, err := scanAny(rows)
		if err != nil {
			return nil, err
		}
		result := make(map[string]any, len(cols))
		for i, col := range cols {
			result[col] = values[i]
		}
		return result, nil
	}, args...)
}

func scanAny(rows *sql.Rows) ([]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	valuePtrs := make([]any, len(cols))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}
	return values, nil
}
