package domain

import (
	"context"
	"errors"
)

// fakeRowStore keeps the sheet in memory with the same positional
// semantics as the real adapter: row 1 is the header, deletes shift.
type fakeRowStore struct {
	rows [][]string
	err  error

	appended   [][]string
	updatedRow int
	updated    []string
	deletedRow int
}

func newFakeRowStore(tasks ...Task) *fakeRowStore {
	rows := [][]string{HeaderRow()}
	for _, t := range tasks {
		rows = append(rows, t.Row())
	}
	return &fakeRowStore{rows: rows}
}

func (f *fakeRowStore) ReadRows(ctx context.Context) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]string, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRowStore) AppendRow(ctx context.Context, row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeRowStore) UpdateRow(ctx context.Context, rowNum int, row []string) error {
	if f.err != nil {
		return f.err
	}
	if rowNum < 1 || rowNum > len(f.rows) {
		return errors.New("row out of range")
	}
	f.rows[rowNum-1] = row
	f.updatedRow = rowNum
	f.updated = row
	return nil
}

func (f *fakeRowStore) DeleteRow(ctx context.Context, rowNum int) error {
	if f.err != nil {
		return f.err
	}
	if rowNum < 1 || rowNum > len(f.rows) {
		return errors.New("row out of range")
	}
	f.rows = append(f.rows[:rowNum-1], f.rows[rowNum:]...)
	f.deletedRow = rowNum
	return nil
}
