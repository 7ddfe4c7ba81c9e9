// Package loader drives the CSV reader (csvreader) and row parser
// (rowparser) for every table named in the schema descriptor, builds each
// table's primary-key and secondary indices, and assembles the read-only
// Feed. Grounded on the teacher's consumeCSV loop in gtfs/loader.go,
// generalized from a handful of hardcoded switch cases over known GTFS-RT
// reference files into a schema-driven loop over every descriptor table,
// run one worker per file exactly as spec.md §4.5/§5 describes.
package loader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/transitdata/gtfs-validator/internal/csvreader"
	"github.com/transitdata/gtfs-validator/internal/feed"
	"github.com/transitdata/gtfs-validator/internal/feedsource"
	"github.com/transitdata/gtfs-validator/internal/notice"
	"github.com/transitdata/gtfs-validator/internal/rowparser"
	"github.com/transitdata/gtfs-validator/internal/schema"
)

// LoadFeed loads every file named in descriptor, plus flags every file
// present in source but unknown to descriptor, using up to numThreads
// workers in parallel (one per file). It never returns an error: any
// feed-level problem (missing required file, bad column, bad cell) is
// recorded as a notice in the returned container, per spec.md §7 — loading
// failures are validation notices, not exceptions.
func LoadFeed(source feedsource.Source, descriptor schema.Descriptor, numThreads int, country rowparser.CountryCode) (*feed.Feed, *notice.Container) {
	result := feed.New()
	global := notice.NewContainer()

	present := make(map[string]bool)
	for _, f := range source.Files() {
		present[f] = true
	}

	if numThreads <= 0 {
		numThreads = 1
	}
	sem := make(chan struct{}, numThreads)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, table := range descriptor.Tables {
		name, table := name, table
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			local := notice.NewContainer()
			if !present[name] {
				reportMissingFile(name, table.Level, local)
				mu.Lock()
				global.Merge(local)
				mu.Unlock()
				return
			}

			loaded := loadOneFile(source, name, table, local, country)
			mu.Lock()
			result.Put(loaded)
			global.Merge(local)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, name := range source.Files() {
		if _, ok := descriptor.Table(name); !ok {
			global.AddValidationNotice(notice.New(notice.CodeUnknownFile, notice.SeverityInfo, name, 0, "", nil))
		}
	}

	return result, global
}

func reportMissingFile(name string, level schema.Level, notices *notice.Container) {
	switch level {
	case schema.Required:
		notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredFile, notice.SeverityError, name, 0, "", nil))
	case schema.Recommended:
		notices.AddValidationNotice(notice.New(notice.CodeMissingRecommendedFile, notice.SeverityWarning, name, 0, "", nil))
	}
}

// loadOneFile opens name from source, cross-references its header against
// table's declared columns, and parses every data row. It always returns a
// usable (possibly empty) table so callers never need a nil check.
func loadOneFile(source feedsource.Source, name string, table schema.Table, notices *notice.Container, country rowparser.CountryCode) *feed.Table {
	rc, ok := source.Open(name)
	if !ok {
		return feed.NewTable(name)
	}
	defer rc.Close()

	reader := csvreader.New(rc, name, notices)
	header, ok := reader.Header()
	if !ok {
		return feed.NewTable(name)
	}

	colToColumn, pk, secondary := reconcileHeader(name, header, table, notices)

	parser := rowparser.New(name, header, country)
	out := feed.NewTable(name)

	for {
		row, ok := reader.Next()
		if !ok {
			break
		}
		if row.IsEmpty() {
			continue
		}
		binding := parser.Bind(row, notices)
		if !binding.CheckRowLength() {
			continue
		}

		values := make(map[string]any, len(colToColumn))
		for i, col := range colToColumn {
			if v := parseColumn(binding, col, i); v != nil {
				values[col.Name] = v
			}
		}
		rowEntity := feed.Row{Number: row.Number, Values: values}
		position := out.Append(rowEntity)

		indexPrimaryKey(out, rowEntity, position, name, pk, notices)
		for _, col := range secondary {
			if v, ok := rowEntity.GetString(col); ok {
				out.IndexSecondary(col, v, position)
			} else if raw := rowEntity.Get(col); raw != nil {
				out.IndexSecondary(col, fmt.Sprint(raw), position)
			}
		}
	}

	return out
}

// reconcileHeader cross-references header against table's declared columns:
// unknown header columns get an INFO, missing required/recommended columns
// get an ERROR/WARNING. It returns the CSV-index-to-schema-column mapping
// for known columns plus the table's primary-key and secondary-indexed
// column names.
func reconcileHeader(fileName string, header []string, table schema.Table, notices *notice.Container) (colToColumn map[int]schema.Column, pk []string, secondary []string) {
	colToColumn = make(map[int]schema.Column)
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		seen[name] = true
		if idx := table.ColumnIndex(name); idx >= 0 {
			colToColumn[i] = table.Columns[idx]
		} else {
			notices.AddValidationNotice(notice.New(notice.CodeUnknownColumn, notice.SeverityInfo, fileName, 1, name, nil))
		}
	}
	for _, col := range table.Columns {
		if seen[col.Name] {
			continue
		}
		switch col.Level {
		case schema.Required:
			notices.AddValidationNotice(notice.New(notice.CodeMissingRequiredColumn, notice.SeverityError, fileName, 1, col.Name, nil))
		case schema.Recommended:
			notices.AddValidationNotice(notice.New(notice.CodeMissingRecommendedColumn, notice.SeverityWarning, fileName, 1, col.Name, nil))
		}
	}
	pk = table.PrimaryKey()
	for _, col := range table.Columns {
		if col.Index {
			secondary = append(secondary, col.Name)
		}
	}
	return colToColumn, pk, secondary
}

// indexPrimaryKey records rowEntity in table's primary-key index if every
// PK column is present, emitting exactly one duplicate_key notice the first
// time a key transitions from unique to duplicate (spec.md §4.1 invariant
// 4: one notice per collision, however many rows eventually share the key).
func indexPrimaryKey(table *feed.Table, rowEntity feed.Row, position int, fileName string, pk []string, notices *notice.Container) {
	if len(pk) == 0 {
		return
	}
	key, ok := primaryKeyValue(rowEntity, pk)
	if !ok {
		return
	}
	prior := table.IndexPrimaryKey(key, position)
	if len(prior) == 1 {
		notices.AddValidationNotice(notice.New(notice.CodeDuplicateKey, notice.SeverityError, fileName, rowEntity.Number, strings.Join(pk, ","),
			map[string]any{"value": key}))
	}
}

func primaryKeyValue(row feed.Row, pk []string) (string, bool) {
	parts := make([]string, len(pk))
	for i, col := range pk {
		v := row.Get(col)
		if v == nil {
			return "", false
		}
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "\x1f"), true
}

// parseColumn dispatches to the right typed accessor for col.Type and
// unwraps the accessor's pointer return into a plain value (or nil),
// applying the mixed-case style check where the schema asks for it.
func parseColumn(b *rowparser.Binding, col schema.Column, columnIndex int) any {
	level := col.Level
	switch col.Type {
	case schema.ID:
		v := b.AsID(columnIndex, level)
		if col.MixedCase {
			b.CheckMixedCaseStyle(columnIndex, v)
		}
		return derefString(v)
	case schema.URL:
		return derefString(b.AsURL(columnIndex, level))
	case schema.Email:
		return derefString(b.AsEmail(columnIndex, level))
	case schema.Phone:
		return derefString(b.AsPhoneNumber(columnIndex, level))
	case schema.Language:
		return derefString(b.AsLanguageCode(columnIndex, level))
	case schema.Timezone:
		return derefString(b.AsTimezone(columnIndex, level))
	case schema.Currency:
		return derefString(b.AsCurrencyCode(columnIndex, level))
	case schema.Float:
		return derefFloat(b.AsFloat(columnIndex, level, col.Bounds))
	case schema.Integer:
		return derefInt(b.AsInteger(columnIndex, level, col.Bounds))
	case schema.Decimal:
		return derefFloat(b.AsDecimal(columnIndex, level, col.Bounds))
	case schema.Latitude:
		return derefFloat(b.AsLatitude(columnIndex, level))
	case schema.Longitude:
		return derefFloat(b.AsLongitude(columnIndex, level))
	case schema.Color:
		v := b.AsColor(columnIndex, level)
		if v == nil {
			return nil
		}
		return *v
	case schema.Time:
		v := b.AsTime(columnIndex, level)
		if v == nil {
			return nil
		}
		return *v
	case schema.Date:
		v := b.AsDate(columnIndex, level)
		if v == nil {
			return nil
		}
		return *v
	case schema.Enum:
		return derefInt(b.AsEnum(columnIndex, level, *col.Enum))
	default: // schema.Text and any future default
		v := b.AsText(columnIndex, level)
		if col.MixedCase {
			b.CheckMixedCaseStyle(columnIndex, v)
		}
		return derefString(v)
	}
}

func derefString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
