package sql

import (
	"context"
	"fmt"

	"github.com/lguimbarda/min-linq/linq/core"
)

// ExecResult accumulates the results of the statements run by ExecEach.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
	Statements   int
}

// ExecEach runs query once per value of p, with arguments produced by
// binder. It is a terminal: the first failing statement stops the source
// and its error is returned together with the totals reached so far.
func ExecEach[S, T any](ctx context.Context, db Execer, p core.Pipeline[S, T], query string, binder func(T) []any) (ExecResult, error) {
	var total ExecResult
	var execErr error

	halting := p.TakeWhile(func(T) bool { return execErr == nil })
	err := halting.ForEach(func(v T) {
		result, err := db.ExecContext(ctx, query, binder(v)...)
		if err != nil {
			execErr = fmt.Errorf("sql: exec statement %d: %w", total.Statements+1, err)
			return
		}
		total.Statements++
		if id, err := result.LastInsertId(); err == nil {
			total.LastInsertId = id
		}
		if n, err := result.RowsAffected(); err == nil {
			total.RowsAffected += n
		}
	})
	if execErr != nil {
		return total, execErr
	}
	return total, err
}
