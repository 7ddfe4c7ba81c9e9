package feed

// Feed is the read-only, file-name-keyed view of every loaded table. It is
// built once by the loader and shared read-only across every validator.
type Feed struct {
	tables map[string]*Table
}

// New creates an empty Feed.
func New() *Feed {
	return &Feed{tables: make(map[string]*Table)}
}

// Put installs table under its own file name.
func (f *Feed) Put(table *Table) {
	f.tables[table.File] = table
}

// Get returns the table for file, or an empty table if it was never loaded
// (absent required files still get an empty table so validators never need
// a nil check).
func (f *Feed) Get(file string) *Table {
	if t, ok := f.tables[file]; ok {
		return t
	}
	return NewTable(file)
}

// Has reports whether file was actually present in the source feed (as
// opposed to synthesized empty by Get).
func (f *Feed) Has(file string) bool {
	_, ok := f.tables[file]
	return ok
}

// Files returns every loaded file name.
func (f *Feed) Files() []string {
	out := make([]string, 0, len(f.tables))
	for name := range f.tables {
		out = append(out, name)
	}
	return out
}
