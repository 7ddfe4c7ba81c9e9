// Package feed holds the in-memory, read-only view of a loaded GTFS feed:
// one Table per file, keyed by file name, plus each table's primary-key and
// secondary indices. Grounded on the teacher's GTFSIndex
// (gtfs/index.go) — generalized from a handful of hardcoded per-file maps
// into a schema-driven, uniform table representation any validator can
// query the same way regardless of which file it belongs to.
package feed

// Row is one immutable, already-typed data row. Values holds one entry per
// known schema column; a column absent from the map means the cell was
// null (missing) or failed to parse, exactly as the row parser left it.
type Row struct {
	Number int
	Values map[string]any
}

// Get returns the parsed value for column, or nil if it is null/invalid.
func (r Row) Get(column string) any {
	return r.Values[column]
}

// GetString returns the column's value as a string, and whether it was
// present. The loader stores GTFS text/id/url/... columns as plain string
// values; a value of any other type reports false.
func (r Row) GetString(column string) (string, bool) {
	v, ok := r.Values[column]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Table is one loaded GTFS file: an ordered sequence of rows plus the
// indices built once loading completes.
type Table struct {
	File      string
	Rows      []Row
	primary   map[string][]int       // joined PK value -> row indices sharing it (usually length 1)
	secondary map[string]map[string][]int // column -> value -> row indices
}

// NewTable creates an empty, writable table for the loader to populate.
func NewTable(file string) *Table {
	return &Table{
		File:      file,
		primary:   make(map[string][]int),
		secondary: make(map[string]map[string][]int),
	}
}

// Append adds row and returns its position in Rows.
func (t *Table) Append(row Row) int {
	t.Rows = append(t.Rows, row)
	return len(t.Rows) - 1
}

// IndexPrimaryKey records that key maps to the row at position. Returns the
// list of other positions that already shared this key, for duplicate
// detection by the caller (the loader, which alone knows how to report it).
func (t *Table) IndexPrimaryKey(key string, position int) (priorPositions []int) {
	prior := append([]int(nil), t.primary[key]...)
	t.primary[key] = append(t.primary[key], position)
	return prior
}

// IndexSecondary records an entry in the named secondary index, preserving
// insertion order for rows sharing the same value.
func (t *Table) IndexSecondary(column, value string, position int) {
	byValue := t.secondary[column]
	if byValue == nil {
		byValue = make(map[string][]int)
		t.secondary[column] = byValue
	}
	byValue[value] = append(byValue[value], position)
}

// RowsByPrimaryKey returns every row sharing key (more than one only in the
// presence of a duplicate-key violation, since the loader retains all
// versions).
func (t *Table) RowsByPrimaryKey(key string) []Row {
	positions := t.primary[key]
	out := make([]Row, 0, len(positions))
	for _, p := range positions {
		out = append(out, t.Rows[p])
	}
	return out
}

// RowByPrimaryKey returns the first row for key, which is the common case
// of a well-formed (non-duplicated) table.
func (t *Table) RowByPrimaryKey(key string) (Row, bool) {
	rows := t.RowsByPrimaryKey(key)
	if len(rows) == 0 {
		return Row{}, false
	}
	return rows[0], true
}

// RowsByIndex returns every row whose column value equals value, using the
// named secondary index.
func (t *Table) RowsByIndex(column, value string) []Row {
	positions := t.secondary[column][value]
	out := make([]Row, 0, len(positions))
	for _, p := range positions {
		out = append(out, t.Rows[p])
	}
	return out
}

// HasPrimaryKey reports whether key is present in the table's PK index.
func (t *Table) HasPrimaryKey(key string) bool {
	return len(t.primary[key]) > 0
}
