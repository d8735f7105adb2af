package postgres

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

type execCall struct {
	sql  string
	args []any
}

type fakeTag int64

func (t fakeTag) RowsAffected() int64 { return int64(t) }

// fakeRows hands out scripted values column by column
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.pos-1], dest)
}

func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     {}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		target.Set(reflect.ValueOf(v).Convert(target.Type()))
	}
	return nil
}

// fakeDB matches queries by substring; the first matching key wins
type fakeDB struct {
	rows      map[string]*fakeRows
	row       map[string]fakeRow
	execErr   map[string]error
	execs     []execCall
	queries   []execCall
	committed bool
	tag       fakeTag
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		rows:    map[string]*fakeRows{},
		row:     map[string]fakeRow{},
		execErr: map[string]error{},
		tag:     1,
	}
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	db.queries = append(db.queries, execCall{sql: sql, args: args})
	for key, rows := range db.rows {
		if strings.Contains(sql, key) {
			return rows, nil
		}
	}
	return &fakeRows{}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	db.queries = append(db.queries, execCall{sql: sql, args: args})
	for key, row := range db.row {
		if strings.Contains(sql, key) {
			return row
		}
	}
	return fakeRow{err: ErrNoRows}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	db.execs = append(db.execs, execCall{sql: sql, args: args})
	for key, err := range db.execErr {
		if strings.Contains(sql, key) {
			return fakeTag(0), err
		}
	}
	return db.tag, nil
}

func (db *fakeDB) Begin(ctx context.Context) (Tx, error) { return &fakeTx{db: db}, nil }
func (db *fakeDB) Close()                                {}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.db.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error { return nil }

var fixedTime = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
