package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeResult is the scripted outcome of one statement.
//
// row feeds QueryRow, rows feeds Query. A QueryRow without a scripted row
// yields pgx.ErrNoRows, like an empty result set.
type fakeResult struct {
	row     []any
	rows    [][]any
	err     error
	rowsErr error
}

type fakeCall struct {
	sql  string
	args []any
}

// fakeDB implements Pool. Statements issued through it or through a
// transaction it started are recorded in order.
type fakeDB struct {
	mu      sync.Mutex
	results map[string]fakeResult
	calls   []fakeCall

	beginErr  error
	commitErr error

	begun      int
	committed  int
	rolledBack int
}

func newFakeDB() *fakeDB {
	return &fakeDB{results: make(map[string]fakeResult)}
}

func (f *fakeDB) on(sql string, result fakeResult) *fakeDB {
	f.results[sql] = result
	return f
}

func (f *fakeDB) record(sql string, args []any) fakeResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	return f.results[sql]
}

func (f *fakeDB) statements() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.sql)
	}
	return out
}

func (f *fakeDB) call(sql string) (fakeCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.sql == sql {
			return c, true
		}
	}
	return fakeCall{}, false
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	res := f.record(sql, args)
	if res.err != nil {
		return pgconn.CommandTag{}, res.err
	}
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	res := f.record(sql, args)
	if res.err != nil {
		return nil, res.err
	}
	return &fakeRows{rows: res.rows, err: res.rowsErr}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	res := f.record(sql, args)
	switch {
	case res.err != nil:
		return fakeRow{err: res.err}
	case res.row == nil:
		return fakeRow{err: pgx.ErrNoRows}
	default:
		return fakeRow{values: res.row}
	}
}

func (f *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.begun++
	return &fakeTx{db: f}, nil
}

// fakeTx embeds pgx.Tx so methods the repositories never call panic.
type fakeTx struct {
	pgx.Tx
	db     *fakeDB
	closed bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	if t.db.commitErr != nil {
		return t.db.commitErr
	}
	t.db.committed++
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	t.db.rolledBack++
	return nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanValues(r.values, dest)
}

// fakeRows embeds pgx.Rows for the same reason fakeTx embeds pgx.Tx.
type fakeRows struct {
	pgx.Rows
	rows   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanValues(r.rows[r.pos-1], dest)
}

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) Close() {
	r.closed = true
}

// scanValues copies values into dest the way pgx reports mismatches: as a
// pgx.ScanArgError naming the column.
func scanValues(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("number of field descriptions must equal number of destinations, got %d and %d", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		val := reflect.ValueOf(v)
		if !val.IsValid() || !val.Type().AssignableTo(target.Type()) {
			return pgx.ScanArgError{ColumnIndex: i, Err: fmt.Errorf("cannot scan %T into %T", v, dest[i])}
		}
		target.Set(val)
	}
	return nil
}
