package volumes

import (
	"fmt"
	"slices"
)

// Table is a header plus string rows, as reported by the host.
type Table struct {
	Name   string     `yaml:"name"`
	Header []string   `yaml:"header"`
	Rows   [][]string `yaml:"rows"`
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	out := &Table{
		Name:   t.Name,
		Header: slices.Clone(t.Header),
		Rows:   make([][]string, len(t.Rows)),
	}

	for i, row := range t.Rows {
		out.Rows[i] = slices.Clone(row)
	}

	return out
}

// ColumnIndex returns the index of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	return slices.Index(t.Header, name)
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}

	return values, nil
}

// RenameColumns replaces header names found in names; others are kept.
func (t *Table) RenameColumns(names func(string) (string, bool)) {
	for i, h := range t.Header {
		if renamed, ok := names(h); ok {
			t.Header[i] = renamed
		}
	}
}

// DropColumn removes the named column. It reports whether it existed.
func (t *Table) DropColumn(name string) bool {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return false
	}

	t.Header = slices.Delete(t.Header, idx, idx+1)

	for i, row := range t.Rows {
		if idx < len(row) {
			t.Rows[i] = slices.Delete(row, idx, idx+1)
		}
	}

	return true
}
