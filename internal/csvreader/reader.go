// Package csvreader is the streaming row reader for a single GTFS table
// file: it turns RFC-4180 bytes into a sequence of trimmed, null-aware
// cell rows tagged with their 1-based CSV row number, grounded on the
// encoding/csv usage pattern in the teacher's gtfs/loader.go (consumeCSV),
// generalized from "read everything into memory" to a lazy per-row reader
// that the table loader drives one row at a time.
package csvreader

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/transitdata/gtfs-validator/internal/notice"
)

// MaxRowNumber bounds how many data rows a single file may contain. The
// largest real-world GTFS files have on the order of 100M rows; the cap
// exists to bound memory under pathological or adversarial input.
const MaxRowNumber = 1000000000

// Row is one data row: Number is the 1-based CSV row number (the header is
// row 1, so the first data row is row 2); Cells holds one entry per column,
// nil meaning the cell was empty (a "null" cell, distinct from "").
type Row struct {
	Number int
	Cells  []*string
}

// IsEmpty reports whether this row is the single-cell-null edge case that
// the reader already flagged with an empty-row notice; callers should skip
// further structural/typed validation of such a row.
func (r Row) IsEmpty() bool {
	return len(r.Cells) == 1 && r.Cells[0] == nil
}

// Reader lazily reads rows from a single GTFS table file.
type Reader struct {
	fileName string
	notices  *notice.Container
	csv      *csv.Reader
	rowNum   int
	stopped  bool
}

// New wraps src (the bytes of one table file) as a Reader. Structural
// notices for this file (empty-file, empty-row, too-many-rows) are appended
// to notices as they are discovered.
func New(src io.Reader, fileName string, notices *notice.Container) *Reader {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // row-length mismatches are reported by the caller, not silently rejected here
	cr.LazyQuotes = true
	return &Reader{fileName: fileName, notices: notices, csv: cr}
}

func cleanCell(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Header reads the first row as the column header. ok is false if the file
// has no rows at all, in which case an empty-file notice has been recorded.
func (r *Reader) Header() (header []string, ok bool) {
	rec, err := r.csv.Read()
	if err != nil {
		r.notices.AddValidationNotice(notice.New(notice.CodeEmptyFile, notice.SeverityError, r.fileName, 0, "", nil))
		return nil, false
	}
	r.rowNum = 1
	for _, cell := range rec {
		header = append(header, strings.TrimSpace(cell))
	}
	return header, true
}

// Next returns the next data row, or ok=false once the file is exhausted or
// the hard row cap has been hit.
func (r *Reader) Next() (row Row, ok bool) {
	if r.stopped {
		return Row{}, false
	}
	rec, err := r.csv.Read()
	if err == io.EOF {
		return Row{}, false
	}
	if err != nil {
		// A malformed quoted field etc: surface it as an empty row rather
		// than aborting the whole file, consistent with "never abort the
		// row" for parse failures elsewhere in the pipeline.
		r.rowNum++
		return Row{Number: r.rowNum, Cells: nil}, true
	}
	r.rowNum++
	if r.rowNum > MaxRowNumber {
		r.notices.AddValidationNotice(notice.New(notice.CodeTooManyRows, notice.SeverityError, r.fileName, r.rowNum, "", nil))
		r.stopped = true
		return Row{}, false
	}

	cells := make([]*string, len(rec))
	for i, c := range rec {
		cells[i] = cleanCell(c)
	}

	// Univocity-style edge case: the final line is all whitespace with no
	// terminator. encoding/csv yields it as a single empty field; treat it
	// as an empty row rather than a length mismatch.
	if len(cells) == 1 && cells[0] == nil {
		r.notices.AddValidationNotice(notice.New(notice.CodeEmptyRow, notice.SeverityWarning, r.fileName, r.rowNum, "", nil))
	}

	return Row{Number: r.rowNum, Cells: cells}, true
}
