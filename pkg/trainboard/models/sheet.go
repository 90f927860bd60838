// Package models defines data structures for the training dashboard.
package models

// Header is the ordered list of column names taken from a sheet's first row.
type Header []string

// Index returns the position of the named column, or -1 if absent.
func (h Header) Index(name string) int {
	for i, col := range h {
		if col == name {
			return i
		}
	}
	return -1
}

// Name returns the name of column i, or an empty string when out of range.
func (h Header) Name(i int) string {
	if i < 0 || i >= len(h) {
		return ""
	}
	return h[i]
}

// Has reports whether the named column exists.
func (h Header) Has(name string) bool {
	return h.Index(name) >= 0
}

// Lookup returns the row's value for the named column.
// A missing column yields an empty string.
func (h Header) Lookup(row Row, name string) string {
	return row.Cell(h.Index(name))
}

// Row is one data row; cells are aligned with the sheet header.
type Row []string

// Cell returns the value at index i, or an empty string when out of range.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Clone returns a copy of the row that shares no storage with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Sheet represents one worksheet snapshot: a header and its data rows.
type Sheet struct {
	// Name is the worksheet title.
	Name string `json:"name"`
	// Header contains the column names from the first row.
	Header Header `json:"header"`
	// Rows contains data rows (header excluded), padded to the header width.
	Rows []Row `json:"rows,omitempty"`
}

// Empty reports whether the sheet has no data rows.
func (s Sheet) Empty() bool {
	return len(s.Rows) == 0
}

// WithRows returns a copy of the sheet carrying the given rows.
func (s Sheet) WithRows(rows []Row) Sheet {
	return Sheet{Name: s.Name, Header: s.Header, Rows: rows}
}

// Column returns all values of column i in row order.
func (s Sheet) Column(i int) []string {
	out := make([]string, len(s.Rows))
	for k, row := range s.Rows {
		out[k] = row.Cell(i)
	}
	return out
}
