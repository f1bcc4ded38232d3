package store

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Hand-rolled pgx fakes so the transactional statement sequences can be
// asserted without a live database.

type sqlCall struct {
	sql  string
	args []any
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		assign(d, r.vals[i])
	}
	return nil
}

func assign(dest, val any) {
	switch p := dest.(type) {
	case *int64:
		*p = val.(int64)
	case *string:
		*p = val.(string)
	case *bool:
		*p = val.(bool)
	case *time.Time:
		*p = val.(time.Time)
	case **int64:
		if val == nil {
			*p = nil
		} else {
			v := val.(int64)
			*p = &v
		}
	case **string:
		if val == nil {
			*p = nil
		} else {
			v := val.(string)
			*p = &v
		}
	default:
		panic("fakeRow: unsupported scan destination")
	}
}

type fakeRows struct {
	pgx.Rows
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	for i, d := range dest {
		assign(d, row[i])
	}
	return nil
}

type fakeTx struct {
	pgx.Tx
	calls      []sqlCall
	execErrOn  string // substring of the sql that should fail
	execErr    error
	rowFor     func(sql string, args []any) fakeRow
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.calls = append(t.calls, sqlCall{sql: sql, args: args})
	if t.execErrOn != "" && strings.Contains(sql, t.execErrOn) {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("OK 1"), nil
}

func (t *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	t.calls = append(t.calls, sqlCall{sql: sql, args: args})
	return t.rowFor(sql, args)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakePool struct {
	tx       *fakeTx
	beginErr error

	queryRows *fakeRows
	queryErr  error

	rowFor func(sql string, args []any) fakeRow

	execTag pgconn.CommandTag
	execErr error

	calls []sqlCall
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	return p.tx, nil
}

func (p *fakePool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.calls = append(p.calls, sqlCall{sql: sql, args: args})
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	return p.queryRows, nil
}

func (p *fakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	p.calls = append(p.calls, sqlCall{sql: sql, args: args})
	return p.rowFor(sql, args)
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.calls = append(p.calls, sqlCall{sql: sql, args: args})
	return p.execTag, p.execErr
}
